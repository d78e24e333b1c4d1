package utils

import (
	"sehatnama-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, 0, len(input))
	for _, v := range input {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			sanitizedArray = append(sanitizedArray, trimmed)
		}
	}
	return sanitizedArray
}

func trimPointer(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

func SanitizeCreateStaffRequest(input *requests.CreateStaff) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Role = strings.TrimSpace(strings.ToLower(input.Role))
}

func SanitizeRegisterPatientRequest(input *requests.RegisterPatient) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Gender = strings.TrimSpace(input.Gender)
	input.BloodGroup = strings.ToUpper(strings.TrimSpace(input.BloodGroup))
	input.Contact = strings.TrimSpace(input.Contact)
	input.Address = strings.TrimSpace(input.Address)
	input.EmergencyContact = strings.TrimSpace(input.EmergencyContact)
	input.Condition = strings.TrimSpace(input.Condition)
	input.Allergies = cleanWhiteSpaceFromEachStringOfAnArray(input.Allergies)
}

func SanitizeUpdatePatientRequest(input *requests.UpdatePatient) {
	input.Name = trimPointer(input.Name)
	input.Gender = trimPointer(input.Gender)
	input.BloodGroup = trimPointer(input.BloodGroup)
	if input.BloodGroup != nil {
		upper := strings.ToUpper(*input.BloodGroup)
		input.BloodGroup = &upper
	}
	input.Contact = trimPointer(input.Contact)
	input.Address = trimPointer(input.Address)
	input.EmergencyContact = trimPointer(input.EmergencyContact)
	input.Condition = trimPointer(input.Condition)
	if input.Allergies != nil {
		allergies := cleanWhiteSpaceFromEachStringOfAnArray(*input.Allergies)
		input.Allergies = &allergies
	}
}

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.PatientID = strings.ToUpper(strings.TrimSpace(input.PatientID))
	input.PatientName = strings.TrimSpace(input.PatientName)
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.DoctorName = strings.TrimSpace(input.DoctorName)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
	input.Purpose = strings.TrimSpace(input.Purpose)
	input.Notes = strings.TrimSpace(input.Notes)
	input.Status = strings.TrimSpace(input.Status)
}

func SanitizeCreatePrescriptionRequest(input *requests.CreatePrescription) {
	input.PatientID = strings.ToUpper(strings.TrimSpace(input.PatientID))
	input.PatientName = strings.TrimSpace(input.PatientName)
	input.Date = strings.TrimSpace(input.Date)
	input.Notes = strings.TrimSpace(input.Notes)
	input.Status = strings.TrimSpace(input.Status)
	for i := range input.Medications {
		input.Medications[i].Name = strings.TrimSpace(input.Medications[i].Name)
		input.Medications[i].Dosage = strings.TrimSpace(input.Medications[i].Dosage)
		input.Medications[i].Frequency = strings.TrimSpace(input.Medications[i].Frequency)
		input.Medications[i].Duration = strings.TrimSpace(input.Medications[i].Duration)
	}
}

func SanitizeCreateLabReportRequest(input *requests.CreateLabReport) {
	input.PatientID = strings.ToUpper(strings.TrimSpace(input.PatientID))
	input.PatientName = strings.TrimSpace(input.PatientName)
	input.TestType = strings.TrimSpace(input.TestType)
	input.LabName = strings.TrimSpace(input.LabName)
	input.Date = strings.TrimSpace(input.Date)
	input.Status = strings.TrimSpace(input.Status)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeUploadDocumentRequest(input *requests.UploadDocument) {
	input.Title = strings.TrimSpace(input.Title)
	input.Type = strings.TrimSpace(strings.ToLower(input.Type))
	input.Date = strings.TrimSpace(input.Date)
	input.Description = strings.TrimSpace(input.Description)
	input.Tags = cleanWhiteSpaceFromEachStringOfAnArray(input.Tags)
}

// SplitTags accepts tags sent either as repeated form values or as one comma separated value.
func SplitTags(values []string) []string {
	tags := make([]string, 0, len(values))
	for _, value := range values {
		tags = append(tags, strings.Split(value, ",")...)
	}
	return cleanWhiteSpaceFromEachStringOfAnArray(tags)
}

func SanitizeCreateMedicineRequest(input *requests.CreateMedicine) {
	input.Name = strings.TrimSpace(input.Name)
	input.GenericName = strings.TrimSpace(input.GenericName)
	input.Manufacturer = strings.TrimSpace(input.Manufacturer)
	input.Category = strings.TrimSpace(input.Category)
	input.Form = strings.TrimSpace(input.Form)
	input.Strength = strings.TrimSpace(input.Strength)
	input.Description = strings.TrimSpace(input.Description)
}

func SanitizeUpdateMedicineRequest(input *requests.UpdateMedicine) {
	input.Name = trimPointer(input.Name)
	input.GenericName = trimPointer(input.GenericName)
	input.Manufacturer = trimPointer(input.Manufacturer)
	input.Category = trimPointer(input.Category)
	input.Form = trimPointer(input.Form)
	input.Strength = trimPointer(input.Strength)
	input.Description = trimPointer(input.Description)
}

func SanitizeCreateHospitalRequest(input *requests.CreateHospital) {
	input.Name = strings.TrimSpace(input.Name)
	input.Address = strings.TrimSpace(input.Address)
	input.City = strings.TrimSpace(input.City)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Type = strings.TrimSpace(input.Type)
	input.Specialties = cleanWhiteSpaceFromEachStringOfAnArray(input.Specialties)
}

func SanitizeUpdateHospitalRequest(input *requests.UpdateHospital) {
	input.Name = trimPointer(input.Name)
	input.Address = trimPointer(input.Address)
	input.City = trimPointer(input.City)
	input.Phone = trimPointer(input.Phone)
	input.Email = trimPointer(input.Email)
	input.Type = trimPointer(input.Type)
	if input.Specialties != nil {
		specialties := cleanWhiteSpaceFromEachStringOfAnArray(*input.Specialties)
		input.Specialties = &specialties
	}
}
