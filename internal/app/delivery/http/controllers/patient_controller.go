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

type PatientController struct {
	Log             *zap.Logger
	PatientUsecase  contracts.PatientUsecase
	TimelineUsecase contracts.TimelineUsecase
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, timelineUsecase contracts.TimelineUsecase) *PatientController {
	return &PatientController{
		Log:             logger,
		PatientUsecase:  patientUsecase,
		TimelineUsecase: timelineUsecase,
	}
}

func (ctrl *PatientController) Register(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())

	// Bind body to request
	request := new(requests.RegisterPatient)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeRegisterPatientRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.PatientUsecase.Register(ctx, actor, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterPatientSuccessMessage, response)
}

func (ctrl *PatientController) FindAll(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())

	query, err := utils.BuildListQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, pagination, err := ctrl.PatientUsecase.FindAll(ctx, actor, query)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListPatientsSuccessMessage, pagination, response)
}

func (ctrl *PatientController) FindByID(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.PatientUsecase.FindByID(ctx, actor, patientID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientSuccessMessage, response)
}

func (ctrl *PatientController) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	// Bind body to request
	request := new(requests.UpdatePatient)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeUpdatePatientRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.PatientUsecase.Update(ctx, actor, patientID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePatientSuccessMessage, response)
}

func (ctrl *PatientController) Delete(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.PatientUsecase.Delete(ctx, actor, patientID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletePatientSuccessMessage, response)
}

func (ctrl *PatientController) History(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.TimelineUsecase.BuildHistory(ctx, actor, patientID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHistorySuccessMessage, response)
}
