package models

import (
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/dto/responses"
	"time"
)

type Document struct {
	ID           string     `bson:"_id"`
	PatientID    string     `bson:"patientId"`
	Title        string     `bson:"title"`
	Type         string     `bson:"type"`
	Date         time.Time  `bson:"date"`
	Description  string     `bson:"description,omitempty"`
	FileName     string     `bson:"fileName"`
	FileType     string     `bson:"fileType"`
	ContentType  string     `bson:"contentType"`
	FileSize     int64      `bson:"fileSize"`
	UploadedBy   string     `bson:"uploadedBy"`
	UploaderName string     `bson:"uploaderName"`
	Tags         []string   `bson:"tags"`
	Processed    bool       `bson:"processed"`
	ProcessedAt  *time.Time `bson:"processedAt,omitempty"`
	Locator      string     `bson:"locator"`
	TimeModel    `bson:",inline"`
}

func (d Document) ConvertIntoResponse() responses.Document {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return responses.Document{
		ID:           d.ID,
		PatientID:    d.PatientID,
		Title:        d.Title,
		Type:         d.Type,
		Date:         d.Date.UTC().Format(constvars.DateLayout),
		Description:  d.Description,
		FileName:     d.FileName,
		FileType:     d.FileType,
		ContentType:  d.ContentType,
		FileSize:     d.FileSize,
		UploadedBy:   d.UploadedBy,
		UploaderName: d.UploaderName,
		Tags:         tags,
		Processed:    d.Processed,
		ProcessedAt:  d.ProcessedAt,
		CreatedAt:    d.CreatedAt,
	}
}
