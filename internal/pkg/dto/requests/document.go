package requests

type UploadDocument struct {
	Title       string   `json:"title" validate:"omitempty,max=200"`
	Type        string   `json:"type" validate:"omitempty,document_type"`
	Date        string   `json:"date" validate:"omitempty,day"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	Tags        []string `json:"tags" validate:"omitempty,dive,max=40"`

	// File is filled from the multipart part, never from client metadata.
	File UploadedFile `json:"-" validate:"-"`
}

type UploadedFile struct {
	FileName string
	Content  []byte
}
