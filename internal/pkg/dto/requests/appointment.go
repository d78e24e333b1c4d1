package requests

type CreateAppointment struct {
	PatientID   string `json:"patientId" validate:"omitempty,patient_id"`
	PatientName string `json:"patientName" validate:"omitempty,max=120"`
	DoctorID    string `json:"doctorId" validate:"omitempty,max=64"`
	DoctorName  string `json:"doctorName" validate:"omitempty,max=120"`
	Date        string `json:"date" validate:"required,day"`
	Time        string `json:"time" validate:"required,clock"`
	Purpose     string `json:"purpose" validate:"required,max=200"`
	Notes       string `json:"notes" validate:"omitempty,max=2000"`
	Status      string `json:"status" validate:"omitempty,appointment_status"`
	ManualEntry bool   `json:"manualEntry"`
}

type UpdateAppointment struct {
	DoctorID   *string `json:"doctorId" validate:"omitempty,max=64"`
	DoctorName *string `json:"doctorName" validate:"omitempty,max=120"`
	Date       *string `json:"date" validate:"omitnil,day"`
	Time       *string `json:"time" validate:"omitnil,clock"`
	Purpose    *string `json:"purpose" validate:"omitnil,min=1,max=200"`
	Notes      *string `json:"notes" validate:"omitempty,max=2000"`
	Status     *string `json:"status" validate:"omitnil,appointment_status"`
}

func (r *UpdateAppointment) IsEmpty() bool {
	return r.DoctorID == nil && r.DoctorName == nil && r.Date == nil && r.Time == nil &&
		r.Purpose == nil && r.Notes == nil && r.Status == nil
}
