package utils

import (
	"path/filepath"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/exceptions"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// allowedUploadTypes maps each accepted extension to the content types its
// bytes may sniff as.
var allowedUploadTypes = map[string][]string{
	".jpeg": {constvars.MIMEImageJPEG},
	".jpg":  {constvars.MIMEImageJPEG},
	".png":  {constvars.MIMEImagePNG},
	".gif":  {constvars.MIMEImageGIF},
	".pdf":  {constvars.MIMEApplicationPDF},
	".doc":  {constvars.MIMEApplicationMSWord, constvars.MIMEApplicationOLE},
	".docx": {constvars.MIMEApplicationDocx, constvars.MIMEApplicationZip},
}

type InspectedFile struct {
	Extension   string
	ContentType string
	Size        int64
}

// InspectUpload checks size, extension and that the content actually is what
// the extension claims.
func InspectUpload(fileName string, content []byte, maxSizeInBytes int64) (*InspectedFile, error) {
	size := int64(len(content))
	if size == 0 {
		return nil, exceptions.ErrEmptyFile(nil)
	}
	if size > maxSizeInBytes {
		return nil, exceptions.ErrFileTooLarge(nil, maxSizeInBytes>>20)
	}

	extension := strings.ToLower(filepath.Ext(fileName))
	accepted, ok := allowedUploadTypes[extension]
	if !ok {
		return nil, exceptions.ErrInvalidFileExtension(nil)
	}

	detected := mimetype.Detect(content)
	for mtype := detected; mtype != nil; mtype = mtype.Parent() {
		for _, candidate := range accepted {
			if mtype.Is(candidate) {
				return &InspectedFile{
					Extension:   strings.TrimPrefix(extension, "."),
					ContentType: accepted[0],
					Size:        size,
				}, nil
			}
		}
	}

	return nil, exceptions.ErrInvalidFileContent(nil)
}
