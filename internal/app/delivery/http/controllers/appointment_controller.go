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

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())

	// Bind body to request
	request := new(requests.CreateAppointment)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeCreateAppointmentRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.Create(ctx, actor, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())

	query, err := utils.BuildListQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, pagination, err := ctrl.AppointmentUsecase.FindAll(ctx, actor, query)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListAppointmentsSuccessMessage, pagination, response)
}

func (ctrl *AppointmentController) FindByPatientID(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	query, err := utils.BuildListQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, pagination, err := ctrl.AppointmentUsecase.FindByPatientID(ctx, actor, patientID, query)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListAppointmentsSuccessMessage, pagination, response)
}

// FindToday lists the current calendar day, scoped to the caller's own
// appointments for patients.
func (ctrl *AppointmentController) FindToday(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.FindToday(ctx, actor)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListAppointmentsSuccessMessage, response)
}

func (ctrl *AppointmentController) FindByID(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())
	appointmentID := chi.URLParam(r, constvars.URLParamID)

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.FindByID(ctx, actor, appointmentID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())
	appointmentID := chi.URLParam(r, constvars.URLParamID)

	// Bind body to request
	request := new(requests.UpdateAppointment)
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

	response, err := ctrl.AppointmentUsecase.Update(ctx, actor, appointmentID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) Delete(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())
	appointmentID := chi.URLParam(r, constvars.URLParamID)

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	err := ctrl.AppointmentUsecase.Delete(ctx, actor, appointmentID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAppointmentSuccessMessage, nil)
}
