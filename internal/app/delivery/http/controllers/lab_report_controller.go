package controllers

import (
	"net/http"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/dto/requests"
	"sehatnama-service/internal/pkg/exceptions"
	"sehatnama-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type LabReportController struct {
	Log              *zap.Logger
	LabReportUsecase contracts.LabReportUsecase
}

func NewLabReportController(logger *zap.Logger, labReportUsecase contracts.LabReportUsecase) *LabReportController {
	return &LabReportController{
		Log:              logger,
		LabReportUsecase: labReportUsecase,
	}
}

func (ctrl *LabReportController) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())

	// Bind body to request
	request := new(requests.CreateLabReport)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeCreateLabReportRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.LabReportUsecase.Create(ctx, actor, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateLabReportSuccessMessage, response)
}

func (ctrl *LabReportController) FindAll(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())

	query, err := utils.BuildListQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, pagination, err := ctrl.LabReportUsecase.FindAll(ctx, actor, query)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListLabReportsSuccessMessage, pagination, response)
}

func (ctrl *LabReportController) FindByPatientID(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	query, err := utils.BuildListQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, pagination, err := ctrl.LabReportUsecase.FindByPatientID(ctx, actor, patientID, query)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListLabReportsSuccessMessage, pagination, response)
}

func (ctrl *LabReportController) FindByID(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())
	labReportID := chi.URLParam(r, constvars.URLParamID)

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.LabReportUsecase.FindByID(ctx, actor, labReportID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLabReportSuccessMessage, response)
}

func (ctrl *LabReportController) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())
	labReportID := chi.URLParam(r, constvars.URLParamID)

	// Bind body to request
	request := new(requests.UpdateLabReport)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.LabReportUsecase.Update(ctx, actor, labReportID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateLabReportSuccessMessage, response)
}

func (ctrl *LabReportController) Delete(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())
	labReportID := chi.URLParam(r, constvars.URLParamID)

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	err := ctrl.LabReportUsecase.Delete(ctx, actor, labReportID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteLabReportSuccessMessage, nil)
}
