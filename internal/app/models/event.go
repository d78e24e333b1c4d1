package models

import "time"

type DomainEvent struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	OccurredAt time.Time              `json:"occurredAt"`
	ActorID    string                 `json:"actorId,omitempty"`
	PatientID  string                 `json:"patientId,omitempty"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
}
