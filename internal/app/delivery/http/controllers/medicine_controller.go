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

type MedicineController struct {
	Log             *zap.Logger
	MedicineUsecase contracts.MedicineUsecase
}

func NewMedicineController(logger *zap.Logger, medicineUsecase contracts.MedicineUsecase) *MedicineController {
	return &MedicineController{
		Log:             logger,
		MedicineUsecase: medicineUsecase,
	}
}

func (ctrl *MedicineController) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())

	// Bind body to request
	request := new(requests.CreateMedicine)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeCreateMedicineRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.MedicineUsecase.Create(ctx, actor, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateMedicineSuccessMessage, response)
}

func (ctrl *MedicineController) FindAll(w http.ResponseWriter, r *http.Request) {
	query, err := utils.BuildListQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, pagination, err := ctrl.MedicineUsecase.FindAll(ctx, query)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListMedicinesSuccessMessage, pagination, response)
}

func (ctrl *MedicineController) FindByID(w http.ResponseWriter, r *http.Request) {
	medicineID := chi.URLParam(r, constvars.URLParamID)

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.MedicineUsecase.FindByID(ctx, medicineID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicineSuccessMessage, response)
}

func (ctrl *MedicineController) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())
	medicineID := chi.URLParam(r, constvars.URLParamID)

	// Bind body to request
	request := new(requests.UpdateMedicine)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeUpdateMedicineRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.MedicineUsecase.Update(ctx, actor, medicineID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateMedicineSuccessMessage, response)
}

func (ctrl *MedicineController) Delete(w http.ResponseWriter, r *http.Request) {
	actor, _ := utils.GetActor(r.Context())
	medicineID := chi.URLParam(r, constvars.URLParamID)

	ctx, cancel := requestContext(r, defaultRequestTimeout)
	defer cancel()

	err := ctrl.MedicineUsecase.Delete(ctx, actor, medicineID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteMedicineSuccessMessage, nil)
}
