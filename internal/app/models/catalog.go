package models

import "sehatnama-service/internal/pkg/dto/responses"

type Medicine struct {
	ID           string  `bson:"_id"`
	Name         string  `bson:"name"`
	GenericName  string  `bson:"genericName,omitempty"`
	Manufacturer string  `bson:"manufacturer,omitempty"`
	Category     string  `bson:"category,omitempty"`
	Form         string  `bson:"form,omitempty"`
	Strength     string  `bson:"strength,omitempty"`
	Price        float64 `bson:"price"`
	Stock        int     `bson:"stock"`
	Description  string  `bson:"description,omitempty"`
	TimeModel    `bson:",inline"`
}

func (m Medicine) ConvertIntoResponse() responses.Medicine {
	return responses.Medicine{
		ID:           m.ID,
		Name:         m.Name,
		GenericName:  m.GenericName,
		Manufacturer: m.Manufacturer,
		Category:     m.Category,
		Form:         m.Form,
		Strength:     m.Strength,
		Price:        m.Price,
		Stock:        m.Stock,
		Description:  m.Description,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

type Hospital struct {
	ID          string   `bson:"_id"`
	Name        string   `bson:"name"`
	Address     string   `bson:"address,omitempty"`
	City        string   `bson:"city,omitempty"`
	Phone       string   `bson:"phone,omitempty"`
	Email       string   `bson:"email,omitempty"`
	Type        string   `bson:"type,omitempty"`
	Specialties []string `bson:"specialties"`
	Beds        int      `bson:"beds"`
	TimeModel   `bson:",inline"`
}

func (h Hospital) ConvertIntoResponse() responses.Hospital {
	specialties := h.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	return responses.Hospital{
		ID:          h.ID,
		Name:        h.Name,
		Address:     h.Address,
		City:        h.City,
		Phone:       h.Phone,
		Email:       h.Email,
		Type:        h.Type,
		Specialties: specialties,
		Beds:        h.Beds,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}
