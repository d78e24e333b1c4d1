package responses

type TimelineEvent struct {
	ID                   string `json:"id"`
	Category             string `json:"category"`
	Date                 string `json:"date"`
	DisplayTime          string `json:"displayTime"`
	Title                string `json:"title"`
	AttributedDoctorName string `json:"attributedDoctorName"`
	DetailText           string `json:"detailText"`
	Status               string `json:"status"`
}
