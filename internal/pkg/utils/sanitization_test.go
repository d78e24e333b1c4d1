package utils

import (
	"sehatnama-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterPatientRequest(t *testing.T) {
	t.Run("Trims And Normalizes", func(t *testing.T) {
		request := &requests.RegisterPatient{
			Name:       "  Siti Rahma ",
			Email:      "  SITI@EXAMPLE.COM ",
			BloodGroup: " o+ ",
			Allergies:  []string{"  penicillin ", "", "  "},
		}

		SanitizeRegisterPatientRequest(request)

		assert.Equal(t, "Siti Rahma", request.Name)
		assert.Equal(t, "siti@example.com", request.Email)
		assert.Equal(t, "O+", request.BloodGroup)
		assert.Equal(t, []string{"penicillin"}, request.Allergies, "blank allergies should be dropped")
	})

	t.Run("Nil Allergies Become Empty", func(t *testing.T) {
		request := &requests.RegisterPatient{}

		SanitizeRegisterPatientRequest(request)

		assert.Equal(t, []string{}, request.Allergies)
	})
}

func TestSanitizeUpdatePatientRequest(t *testing.T) {
	t.Run("Untouched Fields Stay Nil", func(t *testing.T) {
		contact := "  0812  "
		request := &requests.UpdatePatient{Contact: &contact}

		SanitizeUpdatePatientRequest(request)

		assert.Nil(t, request.Name)
		assert.Nil(t, request.Allergies)
		if assert.NotNil(t, request.Contact) {
			assert.Equal(t, "0812", *request.Contact)
		}
	})

	t.Run("Blood Group Upper Cased", func(t *testing.T) {
		bloodGroup := " ab- "
		request := &requests.UpdatePatient{BloodGroup: &bloodGroup}

		SanitizeUpdatePatientRequest(request)

		assert.Equal(t, "AB-", *request.BloodGroup)
	})
}

func TestSanitizeCreateAppointmentRequest(t *testing.T) {
	request := &requests.CreateAppointment{
		PatientID: " p-1001 ",
		Purpose:   "  Checkup ",
		Time:      " 09:30 ",
	}

	SanitizeCreateAppointmentRequest(request)

	assert.Equal(t, "P-1001", request.PatientID)
	assert.Equal(t, "Checkup", request.Purpose)
	assert.Equal(t, "09:30", request.Time)
}

func TestSplitTags(t *testing.T) {
	t.Run("Comma Separated", func(t *testing.T) {
		assert.Equal(t, []string{"blood", "fasting"}, SplitTags([]string{"blood, fasting"}))
	})

	t.Run("Repeated Values", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c"}, SplitTags([]string{"a", " b ,c", ""}))
	})

	t.Run("Nothing Given", func(t *testing.T) {
		assert.Equal(t, []string{}, SplitTags(nil))
	})
}
