package requests

type LabResult struct {
	Test        string `json:"test" validate:"required,max=120"`
	Value       string `json:"value" validate:"omitempty,max=60"`
	Unit        string `json:"unit" validate:"omitempty,max=30"`
	NormalRange string `json:"normalRange" validate:"omitempty,max=60"`
	Status      string `json:"status" validate:"omitempty,max=30"`
}

type CreateLabReport struct {
	PatientID   string      `json:"patientId" validate:"required,patient_id"`
	PatientName string      `json:"patientName" validate:"omitempty,max=120"`
	TestType    string      `json:"testType" validate:"required,max=120"`
	LabName     string      `json:"labName" validate:"omitempty,max=120"`
	Date        string      `json:"date" validate:"omitempty,day"`
	Status      string      `json:"status" validate:"omitempty,lab_report_status"`
	Results     []LabResult `json:"results" validate:"omitempty,dive"`
	Notes       string      `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateLabReport struct {
	TestType *string      `json:"testType" validate:"omitnil,min=1,max=120"`
	LabName  *string      `json:"labName" validate:"omitempty,max=120"`
	Date     *string      `json:"date" validate:"omitnil,day"`
	Status   *string      `json:"status" validate:"omitnil,lab_report_status"`
	Results  *[]LabResult `json:"results" validate:"omitempty,dive"`
	Notes    *string      `json:"notes" validate:"omitempty,max=2000"`
}

func (r *UpdateLabReport) IsEmpty() bool {
	return r.TestType == nil && r.LabName == nil && r.Date == nil && r.Status == nil &&
		r.Results == nil && r.Notes == nil
}
