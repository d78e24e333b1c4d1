package requests

type Medication struct {
	Name      string `json:"name" validate:"required,max=120"`
	Dosage    string `json:"dosage" validate:"omitempty,max=60"`
	Frequency string `json:"frequency" validate:"omitempty,max=60"`
	Duration  string `json:"duration" validate:"omitempty,max=60"`
}

type CreatePrescription struct {
	PatientID   string       `json:"patientId" validate:"required,patient_id"`
	PatientName string       `json:"patientName" validate:"omitempty,max=120"`
	Date        string       `json:"date" validate:"omitempty,day"`
	Medications []Medication `json:"medications" validate:"required,min=1,dive"`
	Notes       string       `json:"notes" validate:"omitempty,max=2000"`
	Status      string       `json:"status" validate:"omitempty,prescription_status"`
}

type UpdatePrescription struct {
	Date        *string       `json:"date" validate:"omitnil,day"`
	Medications *[]Medication `json:"medications" validate:"omitnil,min=1,dive"`
	Notes       *string       `json:"notes" validate:"omitempty,max=2000"`
	Status      *string       `json:"status" validate:"omitnil,prescription_status"`
}

func (r *UpdatePrescription) IsEmpty() bool {
	return r.Date == nil && r.Medications == nil && r.Notes == nil && r.Status == nil
}
