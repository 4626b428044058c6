package services

import (
	"techmista_backend/internal/models"
	"techmista_backend/internal/repositories"
	"techmista_backend/internal/services/dto"
	"techmista_backend/pkg/apperrors"
)

// UserService exposes the admin user-management surface plus self lookup.
type UserService interface {
	Get(id uint) (*dto.UserResponse, error)
	List(role models.UserRole, page, pageSize int) (*dto.UserListResponse, error)
	SetActive(adminID, userID uint, active bool) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) Get(id uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFoundError(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) List(role models.UserRole, page, pageSize int) (*dto.UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	users, total, err := s.userRepo.FindAll(role, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.UserListResponse{
		Users:    make([]dto.UserResponse, 0, len(users)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range users {
		resp.Users = append(resp.Users, dto.NewUserResponse(&users[i]))
	}
	return resp, nil
}

func (s *UserServiceImpl) SetActive(adminID, userID uint, active bool) error {
	if adminID == userID {
		return apperrors.NewForbiddenError("Admins cannot change their own active status")
	}
	if err := s.userRepo.SetActive(userID, active); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NotFoundError(err, "user", "User not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
