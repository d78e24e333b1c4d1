package medicines

import (
	"context"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/dto/requests"
	"sehatnama-service/internal/pkg/exceptions"
	"sehatnama-service/internal/pkg/utils"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	medicineMongoRepositoryInstance contracts.MedicineRepository
	onceMedicineMongoRepository     sync.Once
)

type MedicineMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicineMongoRepository(db *mongo.Database) contracts.MedicineRepository {
	onceMedicineMongoRepository.Do(func() {
		medicineMongoRepositoryInstance = &MedicineMongoRepository{
			Collection: db.Collection(constvars.MongoCollectionMedicines),
		}
	})
	return medicineMongoRepositoryInstance
}

var medicineListSort = bson.D{{Key: "name", Value: 1}}

func (r *MedicineMongoRepository) CreateMedicine(ctx context.Context, medicineModel *models.Medicine) error {
	if medicineModel.ID == "" {
		medicineModel.ID = utils.GenerateRecordID()
	}
	medicineModel.SetCreatedAtUpdatedAt()
	_, err := r.Collection.InsertOne(ctx, medicineModel)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrCatalogNameExists(err, constvars.ResourceMedicines)
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *MedicineMongoRepository) FindByID(ctx context.Context, medicineID string) (*models.Medicine, error) {
	var medicine models.Medicine
	err := r.Collection.FindOne(ctx, bson.M{"_id": medicineID}).Decode(&medicine)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &medicine, nil
}

func (r *MedicineMongoRepository) FindAll(ctx context.Context, query *requests.ListQuery) ([]models.Medicine, int64, error) {
	filter := buildMedicineFilter(query)

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	cursor, err := r.Collection.Find(ctx, filter, utils.BuildPageOptions(query, medicineListSort))
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	medicines := make([]models.Medicine, 0)
	if err := cursor.All(ctx, &medicines); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return medicines, total, nil
}

func (r *MedicineMongoRepository) Update(ctx context.Context, medicineID string, fields map[string]interface{}) (*models.Medicine, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for key, value := range fields {
		set[key] = value
	}

	var medicine models.Medicine
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": medicineID}, bson.M{"$set": set}, opts).Decode(&medicine)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrCatalogNameExists(err, constvars.ResourceMedicines)
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &medicine, nil
}

func (r *MedicineMongoRepository) DeleteByID(ctx context.Context, medicineID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": medicineID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

// UpsertByName keeps the seed command idempotent: an existing entry with the
// same name is refreshed and keeps its identifier.
func (r *MedicineMongoRepository) UpsertByName(ctx context.Context, medicineModel *models.Medicine) error {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"genericName":  medicineModel.GenericName,
			"manufacturer": medicineModel.Manufacturer,
			"category":     medicineModel.Category,
			"form":         medicineModel.Form,
			"strength":     medicineModel.Strength,
			"price":        medicineModel.Price,
			"stock":        medicineModel.Stock,
			"description":  medicineModel.Description,
			"updatedAt":    now,
		},
		"$setOnInsert": bson.M{
			"_id":       utils.GenerateRecordID(),
			"createdAt": now,
		},
	}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"name": medicineModel.Name}, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func buildMedicineFilter(query *requests.ListQuery) bson.M {
	return utils.MergeFilters(
		utils.BuildSearchFilter(query.Search, "name", "genericName", "manufacturer", "category"),
	)
}
