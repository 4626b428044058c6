package validator

import (
	"log"

	"techmista_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the domain validation tags backed by the
// status enums in internal/models.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Startup misconfiguration; refusing to boot is correct here.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-review-status", validateReviewStatus)
	mustRegister("is-urgency", validateUrgency)
	mustRegister("is-contact-status", validateContactStatus)
}

// validateUserRole accepts only the self-service registration roles; admins
// and providers are never created through plain registration.
func validateUserRole(fl validator.FieldLevel) bool {
	switch models.UserRole(fl.Field().String()) {
	case models.UserRoleSeeker, models.UserRoleAgent:
		return true
	}
	return false
}

func validateReviewStatus(fl validator.FieldLevel) bool {
	return models.ValidReviewStatus(models.ApplicationStatus(fl.Field().String()))
}

func validateUrgency(fl validator.FieldLevel) bool {
	switch models.ContactUrgency(fl.Field().String()) {
	case models.ContactUrgencyLow, models.ContactUrgencyMedium, models.ContactUrgencyHigh:
		return true
	}
	return false
}

func validateContactStatus(fl validator.FieldLevel) bool {
	switch models.ContactRequestStatus(fl.Field().String()) {
	case models.ContactStatusPending, models.ContactStatusContacted,
		models.ContactStatusCompleted, models.ContactStatusRejected:
		return true
	}
	return false
}
