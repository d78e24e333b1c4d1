package requests

// RegisterPatient carries the demographic profile. Required demographics are
// checked by the patient usecase so every missing field can be reported at once.
type RegisterPatient struct {
	Name             string   `json:"name" validate:"omitempty,max=120"`
	Email            string   `json:"email" validate:"omitempty,email"`
	Password         string   `json:"password" validate:"omitempty,password"`
	Age              *int     `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender           string   `json:"gender" validate:"omitempty,max=20"`
	BloodGroup       string   `json:"bloodGroup" validate:"omitempty,max=5"`
	Contact          string   `json:"contact" validate:"omitempty,max=40"`
	Address          string   `json:"address" validate:"omitempty,max=300"`
	EmergencyContact string   `json:"emergencyContact" validate:"omitempty,max=120"`
	Condition        string   `json:"condition" validate:"omitempty,max=300"`
	Allergies        []string `json:"allergies" validate:"omitempty,dive,max=80"`
}

// UpdatePatient is a merge patch: nil fields are left untouched.
type UpdatePatient struct {
	Name             *string   `json:"name" validate:"omitnil,min=1,max=120"`
	Age              *int      `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender           *string   `json:"gender" validate:"omitnil,min=1,max=20"`
	BloodGroup       *string   `json:"bloodGroup" validate:"omitempty,max=5"`
	Contact          *string   `json:"contact" validate:"omitempty,max=40"`
	Address          *string   `json:"address" validate:"omitempty,max=300"`
	EmergencyContact *string   `json:"emergencyContact" validate:"omitempty,max=120"`
	Condition        *string   `json:"condition" validate:"omitempty,max=300"`
	Allergies        *[]string `json:"allergies" validate:"omitempty,dive,max=80"`
}

func (r *UpdatePatient) IsEmpty() bool {
	return r.Name == nil && r.Age == nil && r.Gender == nil && r.BloodGroup == nil &&
		r.Contact == nil && r.Address == nil && r.EmergencyContact == nil &&
		r.Condition == nil && r.Allergies == nil
}
