package patients

import (
	"context"
	"fmt"
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
	patientMongoRepositoryInstance contracts.PatientRepository
	oncePatientMongoRepository     sync.Once
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Database) contracts.PatientRepository {
	oncePatientMongoRepository.Do(func() {
		patientMongoRepositoryInstance = &PatientMongoRepository{
			Collection: db.Collection(constvars.MongoCollectionPatients),
		}
	})
	return patientMongoRepositoryInstance
}

func (r *PatientMongoRepository) CreatePatient(ctx context.Context, patientModel *models.Patient) error {
	patientModel.SetCreatedAtUpdatedAt()
	_, err := r.Collection.InsertOne(ctx, patientModel)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrMongoDBDuplicateKey(fmt.Errorf("%w: %v", contracts.ErrDuplicatePatientID, err))
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *PatientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	var patient models.Patient
	err := r.Collection.FindOne(ctx, bson.M{"_id": patientID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) FindAll(ctx context.Context, query *requests.ListQuery) ([]models.Patient, int64, error) {
	filter := utils.MergeFilters(
		utils.BuildSearchFilter(query.Search, "name", "_id", "contact", "condition"),
	)

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	cursor, err := r.Collection.Find(ctx, filter, utils.BuildPageOptions(query, bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	patients := make([]models.Patient, 0)
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, total, nil
}

func (r *PatientMongoRepository) Update(ctx context.Context, patientID string, fields map[string]interface{}) (*models.Patient, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for key, value := range fields {
		set[key] = value
	}

	var patient models.Patient
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": patientID}, bson.M{"$set": set}, opts).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) DeleteByID(ctx context.Context, patientID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": patientID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

// FindHighestSequence returns the largest numeric part among P-#### identifiers,
// or zero when there are none.
func (r *PatientMongoRepository) FindHighestSequence(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": bson.M{"$regex": constvars.RegexPatientID}}}},
		{{Key: "$project", Value: bson.M{
			"seq": bson.M{"$toLong": bson.M{"$substrCP": bson.A{
				"$_id",
				len(constvars.PatientIDPrefix),
				bson.M{"$subtract": bson.A{bson.M{"$strLenCP": "$_id"}, len(constvars.PatientIDPrefix)}},
			}}},
		}}},
		{{Key: "$sort", Value: bson.M{"seq": -1}}},
		{{Key: "$limit", Value: 1}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var result []struct {
		Seq int64 `bson:"seq"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	if len(result) == 0 {
		return 0, nil
	}
	return result[0].Seq, nil
}
