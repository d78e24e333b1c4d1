package access

import "sehatnama-service/internal/pkg/constvars"

// CanAccess is the ownership rule for every per-record check. Doctors and
// admins see everything; a patient sees only what they own.
func CanAccess(actorRole, actorID, resourceOwnerID string) bool {
	switch actorRole {
	case constvars.RoleDoctor, constvars.RoleAdmin:
		return true
	case constvars.RolePatient:
		return actorID != "" && actorID == resourceOwnerID
	default:
		return false
	}
}

func IsStaff(role string) bool {
	return role == constvars.RoleDoctor || role == constvars.RoleAdmin
}

// CanManageIssued guards edits to doctor-issued records: admins always, a
// doctor only for records they issued.
func CanManageIssued(actorRole, actorID, issuerID string) bool {
	switch actorRole {
	case constvars.RoleAdmin:
		return true
	case constvars.RoleDoctor:
		return actorID != "" && actorID == issuerID
	default:
		return false
	}
}
