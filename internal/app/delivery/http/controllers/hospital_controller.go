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

type HospitalController struct {
	Log             *zap.Logger
	HospitalUsecase contracts.HospitalUsecase
}

func NewHospitalController(logger *zap.Logger, hospitalUsecase contracts.HospitalUsecase) *HospitalController {
	return &HospitalController{
		Log:             logger,
		HospitalUsecase: hospitalUsecase,
	}
}

func (ctrl *HospitalController) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())

	// Bind body to request
	request := new(requests.CreateHospital)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeCreateHospitalRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.HospitalUsecase.Create(ctx, actor, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateHospitalSuccessMessage, response)
}

func (ctrl *HospitalController) FindAll(w http.ResponseWriter, r *http.Request) {
	query, err := utils.BuildListQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, pagination, err := ctrl.HospitalUsecase.FindAll(ctx, query)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListHospitalsSuccessMessage, pagination, response)
}

func (ctrl *HospitalController) FindByID(w http.ResponseWriter, r *http.Request) {
	hospitalID := chi.URLParam(r, constvars.URLParamID)

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.HospitalUsecase.FindByID(ctx, hospitalID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHospitalSuccessMessage, response)
}

func (ctrl *HospitalController) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())
	hospitalID := chi.URLParam(r, constvars.URLParamID)

	// Bind body to request
	request := new(requests.UpdateHospital)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeUpdateHospitalRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.HospitalUsecase.Update(ctx, actor, hospitalID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateHospitalSuccessMessage, response)
}

func (ctrl *HospitalController) Delete(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())
	hospitalID := chi.URLParam(r, constvars.URLParamID)

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	err := ctrl.HospitalUsecase.Delete(ctx, actor, hospitalID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteHospitalSuccessMessage, nil)
}
