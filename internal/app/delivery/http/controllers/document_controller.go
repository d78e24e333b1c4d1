package controllers

import (
	"errors"
	"io"
	"net/http"
	"sehatnama-service/internal/app/config"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/dto/requests"
	"sehatnama-service/internal/pkg/exceptions"
	"sehatnama-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	multipartOverheadInBytes = 1 << 20
	multipartMemoryInBytes   = 8 << 20
)

type DocumentController struct {
	Log             *zap.Logger
	DocumentUsecase contracts.DocumentUsecase
	InternalConfig  *config.InternalConfig
}

func NewDocumentController(logger *zap.Logger, documentUsecase contracts.DocumentUsecase, internalConfig *config.InternalConfig) *DocumentController {
	return &DocumentController{
		Log:             logger,
		DocumentUsecase: documentUsecase,
		InternalConfig:  internalConfig,
	}
}

// Upload accepts multipart/form-data with the binary under "file" and the
// metadata fields title, type, date, description and tags.
func (ctrl *DocumentController) Upload(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	maxSize := ctrl.maxUploadSizeInBytes()
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+multipartOverheadInBytes)
	err := r.ParseMultipartForm(multipartMemoryInBytes)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrFileTooLarge(err, maxSize>>20))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(constvars.DocumentFormFileKey)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrClientCustomMessage(err, "file is required"))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	// Bind form to request
	request := &requests.UploadDocument{
		Title:       r.FormValue("title"),
		Type:        r.FormValue("type"),
		Date:        r.FormValue("date"),
		Description: r.FormValue("description"),
		Tags:        utils.SplitTags(r.MultipartForm.Value["tags"]),
		File: requests.UploadedFile{
			FileName: header.Filename,
			Content:  content,
		},
	}
	// Sanitize request
	utils.SanitizeUploadDocumentRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.longRequestTimeout())
	defer cancel()

	response, err := ctrl.DocumentUsecase.Upload(ctx, actor, patientID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadDocumentSuccessMessage, response)
}

func (ctrl *DocumentController) FindByPatientID(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	query, err := utils.BuildListQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, pagination, err := ctrl.DocumentUsecase.FindByPatientID(ctx, actor, patientID, query)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListDocumentsSuccessMessage, pagination, response)
}

func (ctrl *DocumentController) FindByID(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())
	documentID := chi.URLParam(r, constvars.URLParamID)

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.DocumentUsecase.FindByID(ctx, actor, documentID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDocumentSuccessMessage, response)
}

func (ctrl *DocumentController) Download(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())
	documentID := chi.URLParam(r, constvars.URLParamID)

	ctx, cancel := requestContext(r, ctrl.longRequestTimeout())
	defer cancel()

	file, err := ctrl.DocumentUsecase.Download(ctx, actor, documentID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildFileResponse(w, file)
}

func (ctrl *DocumentController) Remove(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())
	documentID := chi.URLParam(r, constvars.URLParamID)

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	err := ctrl.DocumentUsecase.Remove(ctx, actor, documentID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteDocumentSuccessMessage, nil)
}

func (ctrl *DocumentController) Process(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())
	documentID := chi.URLParam(r, constvars.URLParamID)

	ctx, cancel := requestContext(r, ctrl.longRequestTimeout())
	defer cancel()

	response, err := ctrl.DocumentUsecase.Process(ctx, actor, documentID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProcessDocumentSuccessMessage, response)
}

func (ctrl *DocumentController) maxUploadSizeInBytes() int64 {
	if ctrl.InternalConfig != nil && ctrl.InternalConfig.Document.MaxUploadSizeInMB > 0 {
		return ctrl.InternalConfig.Document.MaxUploadSizeInMB << 20
	}
	return constvars.DocumentMaxUploadSizeInBytes
}

func (ctrl *DocumentController) longRequestTimeout() time.Duration {
	if ctrl.InternalConfig != nil && ctrl.InternalConfig.Document.RequestTimeoutInSeconds > 0 {
		return time.Duration(ctrl.InternalConfig.Document.RequestTimeoutInSeconds) * time.Second
	}
	return 30 * time.Second
}
