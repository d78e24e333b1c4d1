package utils

import (
	"errors"
	"mime"
	"net/http"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/dto/responses"
	"sehatnama-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// BuildPagination computes pages as ceil(total/limit).
func BuildPagination(total int64, page, limit int) *responses.Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &responses.Pagination{
		Total: int(total),
		Page:  page,
		Limit: limit,
		Pages: pages,
	}
}

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	writeJSON(w, code, responses.ResponseDTO{Success: true, Message: message, Data: data})
}

func BuildSuccessResponseWithPagination(w http.ResponseWriter, code int, message string, pagination *responses.Pagination, data interface{}) {
	writeJSON(w, code, responses.ResponseDTO{Success: true, Message: message, Data: data, Pagination: pagination})
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		log.Error(customErr.DevMessage,
			zap.Int(constvars.LoggingStatusCodeKey, code),
			zap.Any("locations", customErr.Locations),
			zap.NamedError("cause", errors.Unwrap(customErr)),
		)
	} else if err != nil {
		log.Error("unclassified error reached the response writer", zap.Error(err))
	}

	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}

	appEnvironment := GetEnvString("APP_ENV", "development")
	if customErr != nil && appEnvironment != "production" {
		response.DevMessage = customErr.DevMessage
		response.Locations = customErr.Locations
	}
	writeJSON(w, code, response)
}

// BuildFileResponse streams a stored blob back with its recorded content type.
func BuildFileResponse(w http.ResponseWriter, file *responses.DocumentFile) {
	w.Header().Set(constvars.HeaderContentType, file.ContentType)
	w.Header().Set(constvars.HeaderContentDisposition, mime.FormatMediaType("inline", map[string]string{"filename": file.FileName}))
	w.WriteHeader(constvars.StatusOK)
	w.Write(file.Content)
}
