package responses

import "time"

type Document struct {
	ID           string     `json:"id"`
	PatientID    string     `json:"patientId"`
	Title        string     `json:"title"`
	Type         string     `json:"type"`
	Date         string     `json:"date"`
	Description  string     `json:"description,omitempty"`
	FileName     string     `json:"fileName"`
	FileType     string     `json:"fileType"`
	ContentType  string     `json:"contentType"`
	FileSize     int64      `json:"fileSize"`
	UploadedBy   string     `json:"uploadedBy"`
	UploaderName string     `json:"uploaderName"`
	Tags         []string   `json:"tags"`
	Processed    bool       `json:"processed"`
	ProcessedAt  *time.Time `json:"processedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// ProcessDocument reports the processed document and, at most, one record
// synthesized from it.
type ProcessDocument struct {
	Document            Document      `json:"document"`
	AlreadyProcessed    bool          `json:"alreadyProcessed"`
	ExtractionOutcome   string        `json:"extractionOutcome,omitempty"`
	CreatedPrescription *Prescription `json:"createdPrescription,omitempty"`
	CreatedLabReport    *LabReport    `json:"createdLabReport,omitempty"`
}

type DocumentFile struct {
	FileName    string
	ContentType string
	Content     []byte
}
