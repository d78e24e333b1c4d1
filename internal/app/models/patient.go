package models

import "sehatnama-service/internal/pkg/dto/responses"

// Patient is keyed by its display identifier (P-####), which is also the
// mongo _id so uniqueness is enforced by the primary index.
type Patient struct {
	ID               string   `bson:"_id"`
	UserID           string   `bson:"userId,omitempty"`
	Name             string   `bson:"name"`
	Email            string   `bson:"email,omitempty"`
	Age              int      `bson:"age"`
	Gender           string   `bson:"gender"`
	BloodGroup       string   `bson:"bloodGroup"`
	Contact          string   `bson:"contact"`
	Address          string   `bson:"address"`
	EmergencyContact string   `bson:"emergencyContact"`
	Condition        string   `bson:"condition,omitempty"`
	Allergies        []string `bson:"allergies"`
	TimeModel        `bson:",inline"`
}

func (p Patient) ConvertIntoResponse() responses.Patient {
	allergies := p.Allergies
	if allergies == nil {
		allergies = []string{}
	}
	return responses.Patient{
		ID:               p.ID,
		UserID:           p.UserID,
		Name:             p.Name,
		Email:            p.Email,
		Age:              p.Age,
		Gender:           p.Gender,
		BloodGroup:       p.BloodGroup,
		Contact:          p.Contact,
		Address:          p.Address,
		EmergencyContact: p.EmergencyContact,
		Condition:        p.Condition,
		Allergies:        allergies,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

type Counter struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}
