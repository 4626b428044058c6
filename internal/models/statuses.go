package models

type UserRole string
type ApplicationStatus string
type VerificationStatus string
type ContactRequestStatus string
type ContactUrgency string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleProvider UserRole = "solution_provider"
	UserRoleSeeker   UserRole = "solution_seeker"
	UserRoleAgent    UserRole = "agent"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusApproved VerificationStatus = "approved"
	VerificationStatusRejected VerificationStatus = "rejected"

	ContactStatusPending   ContactRequestStatus = "pending"
	ContactStatusContacted ContactRequestStatus = "contacted"
	ContactStatusCompleted ContactRequestStatus = "completed"
	ContactStatusRejected  ContactRequestStatus = "rejected"

	ContactUrgencyLow    ContactUrgency = "low"
	ContactUrgencyMedium ContactUrgency = "medium"
	ContactUrgencyHigh   ContactUrgency = "high"
)

// ValidReviewStatus reports whether s is a status an admin may set during review.
func ValidReviewStatus(s ApplicationStatus) bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}
