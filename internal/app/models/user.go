package models

import "sehatnama-service/internal/pkg/dto/responses"

type User struct {
	ID        string `bson:"_id"`
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	Role      string `bson:"role"`
	PatientID string `bson:"patientId,omitempty"`
	TimeModel `bson:",inline"`
}

func (u User) ConvertIntoResponse() responses.UserProfile {
	return responses.UserProfile{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		PatientID: u.PatientID,
	}
}
