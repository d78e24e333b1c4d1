package medicines

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

type medicineUsecase struct {
	MedicineRepository contracts.MedicineRepository
	CatalogCache       contracts.CatalogCache
	PermissionChecker  contracts.PermissionChecker
	Log                *zap.Logger
}

var (
	medicineUsecaseInstance contracts.MedicineUsecase
	onceMedicineUsecase     sync.Once
)

func NewMedicineUsecase(
	medicineRepository contracts.MedicineRepository,
	catalogCache contracts.CatalogCache,
	permissionChecker contracts.PermissionChecker,
	logger *zap.Logger,
) contracts.MedicineUsecase {
	onceMedicineUsecase.Do(func() {
		medicineUsecaseInstance = &medicineUsecase{
			MedicineRepository: medicineRepository,
			CatalogCache:       catalogCache,
			PermissionChecker:  permissionChecker,
			Log:                logger,
		}
	})
	return medicineUsecaseInstance
}

func (uc *medicineUsecase) Create(ctx context.Context, actor *models.Actor, request *requests.CreateMedicine) (*responses.Medicine, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicineUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := access.EnsureAllowed(uc.PermissionChecker, actor, constvars.ResourceMedicines, constvars.ActionWrite); err != nil {
		return nil, err
	}

	medicine := &models.Medicine{
		Name:         strings.TrimSpace(request.Name),
		GenericName:  request.GenericName,
		Manufacturer: request.Manufacturer,
		Category:     request.Category,
		Form:         request.Form,
		Strength:     request.Strength,
		Price:        request.Price,
		Stock:        request.Stock,
		Description:  request.Description,
	}
	if err := uc.MedicineRepository.CreateMedicine(ctx, medicine); err != nil {
		uc.Log.Error("medicineUsecase.Create error creating medicine",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.invalidate(ctx)

	response := medicine.ConvertIntoResponse()
	uc.Log.Info("medicineUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, medicine.ID),
	)
	return &response, nil
}

func (uc *medicineUsecase) FindByID(ctx context.Context, medicineID string) (*responses.Medicine, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicineUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, medicineID),
	)

	medicine, err := uc.MedicineRepository.FindByID(ctx, medicineID)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, exceptions.ErrNotFound(nil, "medicine")
	}

	response := medicine.ConvertIntoResponse()
	return &response, nil
}

// FindAll serves pages from the catalog cache. A cache outage degrades to a
// direct read.
func (uc *medicineUsecase) FindAll(ctx context.Context, query *requests.ListQuery) ([]responses.Medicine, *responses.Pagination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicineUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, query),
	)

	pageKey := cache.PageKey(query.Page, query.Limit, query.Search)
	var cached responses.CatalogPage[responses.Medicine]
	hit, err := uc.CatalogCache.Get(ctx, constvars.CatalogMedicines, pageKey, &cached)
	if err != nil {
		uc.Log.Warn("medicineUsecase.FindAll cache unavailable, reading from database",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if hit {
		return cached.Items, cached.Pagination, nil
	}

	medicines, total, err := uc.MedicineRepository.FindAll(ctx, query)
	if err != nil {
		uc.Log.Error("medicineUsecase.FindAll error fetching medicines",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	page := responses.CatalogPage[responses.Medicine]{
		Items:      make([]responses.Medicine, len(medicines)),
		Pagination: utils.BuildPagination(total, query.Page, query.Limit),
	}
	for i, medicine := range medicines {
		page.Items[i] = medicine.ConvertIntoResponse()
	}

	if err := uc.CatalogCache.Set(ctx, constvars.CatalogMedicines, pageKey, page); err != nil {
		uc.Log.Warn("medicineUsecase.FindAll error caching page",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("medicineUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(page.Items)),
	)
	return page.Items, page.Pagination, nil
}

func (uc *medicineUsecase) Update(ctx context.Context, actor *models.Actor, medicineID string, request *requests.UpdateMedicine) (*responses.Medicine, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicineUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, medicineID),
	)

	if err := access.EnsureAllowed(uc.PermissionChecker, actor, constvars.ResourceMedicines, constvars.ActionWrite); err != nil {
		return nil, err
	}
	if request.IsEmpty() {
		return nil, exceptions.ErrNothingToUpdate(nil)
	}

	medicine, err := uc.MedicineRepository.Update(ctx, medicineID, buildMedicinePatch(request))
	if err != nil {
		uc.Log.Error("medicineUsecase.Update error updating medicine",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if medicine == nil {
		return nil, exceptions.ErrNotFound(nil, "medicine")
	}
	uc.invalidate(ctx)

	response := medicine.ConvertIntoResponse()
	uc.Log.Info("medicineUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, medicineID),
	)
	return &response, nil
}

func (uc *medicineUsecase) Delete(ctx context.Context, actor *models.Actor, medicineID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicineUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, medicineID),
	)

	if err := access.EnsureAllowed(uc.PermissionChecker, actor, constvars.ResourceMedicines, constvars.ActionWrite); err != nil {
		return err
	}

	medicine, err := uc.MedicineRepository.FindByID(ctx, medicineID)
	if err != nil {
		return err
	}
	if medicine == nil {
		return exceptions.ErrNotFound(nil, "medicine")
	}

	if err := uc.MedicineRepository.DeleteByID(ctx, medicineID); err != nil {
		uc.Log.Error("medicineUsecase.Delete error deleting medicine",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	uc.invalidate(ctx)

	uc.Log.Info("medicineUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, medicineID),
	)
	return nil
}

func (uc *medicineUsecase) invalidate(ctx context.Context) {
	if err := uc.CatalogCache.Invalidate(ctx, constvars.CatalogMedicines); err != nil {
		uc.Log.Warn("medicineUsecase.invalidate error bumping catalog version",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}

func buildMedicinePatch(request *requests.UpdateMedicine) map[string]interface{} {
	fields := make(map[string]interface{})
	if request.Name != nil {
		fields["name"] = strings.TrimSpace(*request.Name)
	}
	if request.GenericName != nil {
		fields["genericName"] = *request.GenericName
	}
	if request.Manufacturer != nil {
		fields["manufacturer"] = *request.Manufacturer
	}
	if request.Category != nil {
		fields["category"] = *request.Category
	}
	if request.Form != nil {
		fields["form"] = *request.Form
	}
	if request.Strength != nil {
		fields["strength"] = *request.Strength
	}
	if request.Price != nil {
		fields["price"] = *request.Price
	}
	if request.Stock != nil {
		fields["stock"] = *request.Stock
	}
	if request.Description != nil {
		fields["description"] = *request.Description
	}
	return fields
}
