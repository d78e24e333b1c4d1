package utils

import (
	"regexp"
	"sehatnama-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	specialCharRegex = regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar)
	uppercaseRegex   = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
	clockRegex       = regexp.MustCompile(constvars.RegexClockHHMM)
	dayRegex         = regexp.MustCompile(constvars.RegexDateYYYYMMDD)
	patientIDRegex   = regexp.MustCompile(constvars.RegexPatientID)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("clock", validateClock)
	validate.RegisterValidation("day", validateDay)
	validate.RegisterValidation("staff_role", validateStaffRole)
	validate.RegisterValidation("patient_id", validatePatientID)
	validate.RegisterValidation("appointment_status", oneOf(
		constvars.AppointmentStatusScheduled,
		constvars.AppointmentStatusInProgress,
		constvars.AppointmentStatusCompleted,
		constvars.AppointmentStatusCancelled,
	))
	validate.RegisterValidation("prescription_status", oneOf(
		constvars.PrescriptionStatusActive,
		constvars.PrescriptionStatusCompleted,
		constvars.PrescriptionStatusCancelled,
	))
	validate.RegisterValidation("lab_report_status", oneOf(
		constvars.LabReportStatusPending,
		constvars.LabReportStatusInProgress,
		constvars.LabReportStatusCompleted,
		constvars.LabReportStatusCancelled,
	))
	validate.RegisterValidation("document_type", oneOf(
		constvars.DocumentTypePrescription,
		constvars.DocumentTypeLabReport,
		constvars.DocumentTypeDoctorNote,
		constvars.DocumentTypeOther,
	))
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := specialCharRegex.MatchString(password)
	hasUppercase := uppercaseRegex.MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateClock(fl validator.FieldLevel) bool {
	return clockRegex.MatchString(fl.Field().String())
}

func validateDay(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !dayRegex.MatchString(value) {
		return false
	}
	_, err := ParseDay(value)
	return err == nil
}

func validateStaffRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.RoleDoctor || value == constvars.RoleAdmin
}

func validatePatientID(fl validator.FieldLevel) bool {
	return patientIDRegex.MatchString(fl.Field().String())
}

func oneOf(allowed ...string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, candidate := range allowed {
			if value == candidate {
				return true
			}
		}
		return false
	}
}

func IsValidPatientID(value string) bool {
	return patientIDRegex.MatchString(value)
}
