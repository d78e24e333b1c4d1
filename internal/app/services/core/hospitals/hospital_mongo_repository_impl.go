package hospitals

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
	hospitalMongoRepositoryInstance contracts.HospitalRepository
	onceHospitalMongoRepository     sync.Once
)

type HospitalMongoRepository struct {
	Collection *mongo.Collection
}

func NewHospitalMongoRepository(db *mongo.Database) contracts.HospitalRepository {
	onceHospitalMongoRepository.Do(func() {
		hospitalMongoRepositoryInstance = &HospitalMongoRepository{
			Collection: db.Collection(constvars.MongoCollectionHospitals),
		}
	})
	return hospitalMongoRepositoryInstance
}

var hospitalListSort = bson.D{{Key: "name", Value: 1}}

func (r *HospitalMongoRepository) CreateHospital(ctx context.Context, hospitalModel *models.Hospital) error {
	if hospitalModel.ID == "" {
		hospitalModel.ID = utils.GenerateRecordID()
	}
	hospitalModel.SetCreatedAtUpdatedAt()
	_, err := r.Collection.InsertOne(ctx, hospitalModel)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrCatalogNameExists(err, constvars.ResourceHospitals)
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *HospitalMongoRepository) FindByID(ctx context.Context, hospitalID string) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.Collection.FindOne(ctx, bson.M{"_id": hospitalID}).Decode(&hospital)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &hospital, nil
}

func (r *HospitalMongoRepository) FindAll(ctx context.Context, query *requests.ListQuery) ([]models.Hospital, int64, error) {
	filter := buildHospitalFilter(query)

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	cursor, err := r.Collection.Find(ctx, filter, utils.BuildPageOptions(query, hospitalListSort))
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	hospitals := make([]models.Hospital, 0)
	if err := cursor.All(ctx, &hospitals); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return hospitals, total, nil
}

func (r *HospitalMongoRepository) Update(ctx context.Context, hospitalID string, fields map[string]interface{}) (*models.Hospital, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for key, value := range fields {
		set[key] = value
	}

	var hospital models.Hospital
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": hospitalID}, bson.M{"$set": set}, opts).Decode(&hospital)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrCatalogNameExists(err, constvars.ResourceHospitals)
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &hospital, nil
}

func (r *HospitalMongoRepository) DeleteByID(ctx context.Context, hospitalID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": hospitalID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

// UpsertByName keeps the seed command idempotent: an existing entry with the
// same name is refreshed and keeps its identifier.
func (r *HospitalMongoRepository) UpsertByName(ctx context.Context, hospitalModel *models.Hospital) error {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"address":     hospitalModel.Address,
			"city":        hospitalModel.City,
			"phone":       hospitalModel.Phone,
			"email":       hospitalModel.Email,
			"type":        hospitalModel.Type,
			"specialties": hospitalModel.Specialties,
			"beds":        hospitalModel.Beds,
			"updatedAt":   now,
		},
		"$setOnInsert": bson.M{
			"_id":       utils.GenerateRecordID(),
			"createdAt": now,
		},
	}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"name": hospitalModel.Name}, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func buildHospitalFilter(query *requests.ListQuery) bson.M {
	return utils.MergeFilters(
		utils.BuildSearchFilter(query.Search, "name", "city", "type", "specialties"),
	)
}
