package requests

type CreateMedicine struct {
	Name         string  `json:"name" validate:"required,max=120"`
	GenericName  string  `json:"genericName" validate:"omitempty,max=120"`
	Manufacturer string  `json:"manufacturer" validate:"omitempty,max=120"`
	Category     string  `json:"category" validate:"omitempty,max=60"`
	Form         string  `json:"form" validate:"omitempty,max=40"`
	Strength     string  `json:"strength" validate:"omitempty,max=40"`
	Price        float64 `json:"price" validate:"gte=0"`
	Stock        int     `json:"stock" validate:"gte=0"`
	Description  string  `json:"description" validate:"omitempty,max=2000"`
}

type UpdateMedicine struct {
	Name         *string  `json:"name" validate:"omitnil,min=1,max=120"`
	GenericName  *string  `json:"genericName" validate:"omitempty,max=120"`
	Manufacturer *string  `json:"manufacturer" validate:"omitempty,max=120"`
	Category     *string  `json:"category" validate:"omitempty,max=60"`
	Form         *string  `json:"form" validate:"omitempty,max=40"`
	Strength     *string  `json:"strength" validate:"omitempty,max=40"`
	Price        *float64 `json:"price" validate:"omitempty,gte=0"`
	Stock        *int     `json:"stock" validate:"omitempty,gte=0"`
	Description  *string  `json:"description" validate:"omitempty,max=2000"`
}

type CreateHospital struct {
	Name        string   `json:"name" validate:"required,max=160"`
	Address     string   `json:"address" validate:"omitempty,max=300"`
	City        string   `json:"city" validate:"omitempty,max=80"`
	Phone       string   `json:"phone" validate:"omitempty,max=40"`
	Email       string   `json:"email" validate:"omitempty,email"`
	Type        string   `json:"type" validate:"omitempty,max=60"`
	Specialties []string `json:"specialties" validate:"omitempty,dive,max=80"`
	Beds        int      `json:"beds" validate:"gte=0"`
}

type UpdateHospital struct {
	Name        *string   `json:"name" validate:"omitnil,min=1,max=160"`
	Address     *string   `json:"address" validate:"omitempty,max=300"`
	City        *string   `json:"city" validate:"omitempty,max=80"`
	Phone       *string   `json:"phone" validate:"omitempty,max=40"`
	Email       *string   `json:"email" validate:"omitempty,email"`
	Type        *string   `json:"type" validate:"omitempty,max=60"`
	Specialties *[]string `json:"specialties" validate:"omitempty,dive,max=80"`
	Beds        *int      `json:"beds" validate:"omitempty,gte=0"`
}

func (r *UpdateMedicine) IsEmpty() bool {
	return r.Name == nil && r.GenericName == nil && r.Manufacturer == nil && r.Category == nil &&
		r.Form == nil && r.Strength == nil && r.Price == nil && r.Stock == nil && r.Description == nil
}

func (r *UpdateHospital) IsEmpty() bool {
	return r.Name == nil && r.Address == nil && r.City == nil && r.Phone == nil &&
		r.Email == nil && r.Type == nil && r.Specialties == nil && r.Beds == nil
}
