package dto

type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

type SetUserActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required" validate:"required"`
}
