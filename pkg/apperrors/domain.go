package apperrors

import (
	"fmt"
	"net/http"
)

// Factories and predefined values for common business errors.

// NotFoundError converts a repository miss (gorm.ErrRecordNotFound et al.)
// into a 404 AppError.
func NotFoundError(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

func AlreadyExistsError(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusConflict)
}

func InvalidOperationError(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func InvalidStatusError(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// PartialFailureError marks a sequence where an earlier write committed but a
// dependent side effect failed. The 502 distinguishes it from plain 500s in
// logs; the message must name both halves of the sequence.
func PartialFailureError(err error, domain, message string) *AppError {
	return Wrap(err, CodePartialFailure, domain, message, http.StatusBadGateway)
}

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidResetToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired reset token",
	http.StatusBadRequest,
)

var ErrAccountInactive = New(
	CodeForbidden,
	"auth",
	"Account is deactivated",
	http.StatusForbidden,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"user",
	"Email is already registered",
	http.StatusConflict,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password must be at least 8 characters long",
	http.StatusBadRequest,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ApplicationNotFound keeps the exact wording the admin UI shows when a
// review targets a missing application.
func ApplicationNotFound() *AppError {
	return New(CodeNotFound, "application", "Application not found", http.StatusNotFound)
}

// ApprovedButUserFailed is the documented partial-failure result of the
// approval sequence: the status write has already committed when account
// creation fails.
func ApprovedButUserFailed(err error) *AppError {
	return PartialFailureError(err, "application",
		fmt.Sprintf("Application approved but failed to create user: %v", err))
}
