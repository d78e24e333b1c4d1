package responses

type UserProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	PatientID string `json:"patientId,omitempty"`
}

type LoginUser struct {
	AccessToken string      `json:"accessToken"`
	TokenType   string      `json:"tokenType"`
	ExpiresAt   int64       `json:"expiresAt"`
	User        UserProfile `json:"user"`
}
