package hospitals

import (
	"context"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/app/services/shared/access"
	"sehatnama-service/internal/app/services/shared/cache"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/dto/requests"
	"sehatnama-service/internal/pkg/dto/responses"
	"sehatnama-service/internal/pkg/exceptions"
	"sehatnama-service/internal/pkg/utils"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type hospitalUsecase struct {
	HospitalRepository contracts.HospitalRepository
	CatalogCache       contracts.CatalogCache
	PermissionChecker  contracts.PermissionChecker
	Log                *zap.Logger
}

var (
	hospitalUsecaseInstance contracts.HospitalUsecase
	onceHospitalUsecase     sync.Once
)

func NewHospitalUsecase(
	hospitalRepository contracts.HospitalRepository,
	catalogCache contracts.CatalogCache,
	permissionChecker contracts.PermissionChecker,
	logger *zap.Logger,
) contracts.HospitalUsecase {
	onceHospitalUsecase.Do(func() {
		hospitalUsecaseInstance = &hospitalUsecase{
			HospitalRepository: hospitalRepository,
			CatalogCache:       catalogCache,
			PermissionChecker:  permissionChecker,
			Log:                logger,
		}
	})
	return hospitalUsecaseInstance
}

func (uc *hospitalUsecase) Create(ctx context.Context, actor *models.Actor, request *requests.CreateHospital) (*responses.Hospital, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("hospitalUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := access.EnsureAllowed(uc.PermissionChecker, actor, constvars.ResourceHospitals, constvars.ActionWrite); err != nil {
		return nil, err
	}

	hospital := &models.Hospital{
		Name:        strings.TrimSpace(request.Name),
		Address:     request.Address,
		City:        request.City,
		Phone:       request.Phone,
		Email:       request.Email,
		Type:        request.Type,
		Specialties: request.Specialties,
		Beds:        request.Beds,
	}
	if err := uc.HospitalRepository.CreateHospital(ctx, hospital); err != nil {
		uc.Log.Error("hospitalUsecase.Create error creating hospital",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.invalidate(ctx)

	response := hospital.ConvertIntoResponse()
	uc.Log.Info("hospitalUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, hospital.ID),
	)
	return &response, nil
}

func (uc *hospitalUsecase) FindByID(ctx context.Context, hospitalID string) (*responses.Hospital, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("hospitalUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, hospitalID),
	)

	hospital, err := uc.HospitalRepository.FindByID(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, exceptions.ErrNotFound(nil, "hospital")
	}

	response := hospital.ConvertIntoResponse()
	return &response, nil
}

// FindAll serves pages from the catalog cache. A cache outage degrades to a
// direct read.
func (uc *hospitalUsecase) FindAll(ctx context.Context, query *requests.ListQuery) ([]responses.Hospital, *responses.Pagination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("hospitalUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, query),
	)

	pageKey := cache.PageKey(query.Page, query.Limit, query.Search)
	var cached responses.CatalogPage[responses.Hospital]
	hit, err := uc.CatalogCache.Get(ctx, constvars.CatalogHospitals, pageKey, &cached)
	if err != nil {
		uc.Log.Warn("hospitalUsecase.FindAll cache unavailable, reading from database",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if hit {
		return cached.Items, cached.Pagination, nil
	}

	hospitals, total, err := uc.HospitalRepository.FindAll(ctx, query)
	if err != nil {
		uc.Log.Error("hospitalUsecase.FindAll error fetching hospitals",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	page := responses.CatalogPage[responses.Hospital]{
		Items:      make([]responses.Hospital, len(hospitals)),
		Pagination: utils.BuildPagination(total, query.Page, query.Limit),
	}
	for i, hospital := range hospitals {
		page.Items[i] = hospital.ConvertIntoResponse()
	}

	if err := uc.CatalogCache.Set(ctx, constvars.CatalogHospitals, pageKey, page); err != nil {
		uc.Log.Warn("hospitalUsecase.FindAll error caching page",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("hospitalUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(page.Items)),
	)
	return page.Items, page.Pagination, nil
}

func (uc *hospitalUsecase) Update(ctx context.Context, actor *models.Actor, hospitalID string, request *requests.UpdateHospital) (*responses.Hospital, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("hospitalUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, hospitalID),
	)

	if err := access.EnsureAllowed(uc.PermissionChecker, actor, constvars.ResourceHospitals, constvars.ActionWrite); err != nil {
		return nil, err
	}
	if request.IsEmpty() {
		return nil, exceptions.ErrNothingToUpdate(nil)
	}

	hospital, err := uc.HospitalRepository.Update(ctx, hospitalID, buildHospitalPatch(request))
	if err != nil {
		uc.Log.Error("hospitalUsecase.Update error updating hospital",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if hospital == nil {
		return nil, exceptions.ErrNotFound(nil, "hospital")
	}
	uc.invalidate(ctx)

	response := hospital.ConvertIntoResponse()
	uc.Log.Info("hospitalUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, hospitalID),
	)
	return &response, nil
}

func (uc *hospitalUsecase) Delete(ctx context.Context, actor *models.Actor, hospitalID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("hospitalUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, hospitalID),
	)

	if err := access.EnsureAllowed(uc.PermissionChecker, actor, constvars.ResourceHospitals, constvars.ActionWrite); err != nil {
		return err
	}

	hospital, err := uc.HospitalRepository.FindByID(ctx, hospitalID)
	if err != nil {
		return err
	}
	if hospital == nil {
		return exceptions.ErrNotFound(nil, "hospital")
	}

	if err := uc.HospitalRepository.DeleteByID(ctx, hospitalID); err != nil {
		uc.Log.Error("hospitalUsecase.Delete error deleting hospital",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	uc.invalidate(ctx)

	uc.Log.Info("hospitalUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, hospitalID),
	)
	return nil
}

func (uc *hospitalUsecase) invalidate(ctx context.Context) {
	if err := uc.CatalogCache.Invalidate(ctx, constvars.CatalogHospitals); err != nil {
		uc.Log.Warn("hospitalUsecase.invalidate error bumping catalog version",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}

func buildHospitalPatch(request *requests.UpdateHospital) map[string]interface{} {
	fields := make(map[string]interface{})
	if request.Name != nil {
		fields["name"] = strings.TrimSpace(*request.Name)
	}
	if request.Address != nil {
		fields["address"] = *request.Address
	}
	if request.City != nil {
		fields["city"] = *request.City
	}
	if request.Phone != nil {
		fields["phone"] = *request.Phone
	}
	if request.Email != nil {
		fields["email"] = *request.Email
	}
	if request.Type != nil {
		fields["type"] = *request.Type
	}
	if request.Specialties != nil {
		fields["specialties"] = *request.Specialties
	}
	if request.Beds != nil {
		fields["beds"] = *request.Beds
	}
	return fields
}
