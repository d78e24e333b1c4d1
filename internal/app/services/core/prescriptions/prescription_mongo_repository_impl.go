package prescriptions

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
	prescriptionMongoRepositoryInstance contracts.PrescriptionRepository
	oncePrescriptionMongoRepository     sync.Once
)

type PrescriptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewPrescriptionMongoRepository(db *mongo.Database) contracts.PrescriptionRepository {
	oncePrescriptionMongoRepository.Do(func() {
		prescriptionMongoRepositoryInstance = &PrescriptionMongoRepository{
			Collection: db.Collection(constvars.MongoCollectionPrescriptions),
		}
	})
	return prescriptionMongoRepositoryInstance
}

var prescriptionListSort = bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}}

func (r *PrescriptionMongoRepository) CreatePrescription(ctx context.Context, prescriptionModel *models.Prescription) error {
	if prescriptionModel.ID == "" {
		prescriptionModel.ID = utils.GenerateRecordID()
	}
	prescriptionModel.SetCreatedAtUpdatedAt()
	_, err := r.Collection.InsertOne(ctx, prescriptionModel)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) && prescriptionModel.SourceDocumentID != "" {
			return exceptions.ErrMongoDBDuplicateKey(fmt.Errorf("%w: %v", contracts.ErrDuplicateSourceDocument, err))
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *PrescriptionMongoRepository) FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error) {
	var prescription models.Prescription
	err := r.Collection.FindOne(ctx, bson.M{"_id": prescriptionID}).Decode(&prescription)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &prescription, nil
}

func (r *PrescriptionMongoRepository) FindBySourceDocumentID(ctx context.Context, documentID string) (*models.Prescription, error) {
	var prescription models.Prescription
	err := r.Collection.FindOne(ctx, bson.M{"sourceDocumentId": documentID}).Decode(&prescription)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &prescription, nil
}

func (r *PrescriptionMongoRepository) FindAll(ctx context.Context, query *requests.ListQuery) ([]models.Prescription, int64, error) {
	filter := buildPrescriptionFilter(query)

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	prescriptions, err := r.find(ctx, filter, utils.BuildPageOptions(query, prescriptionListSort))
	if err != nil {
		return nil, 0, err
	}
	return prescriptions, total, nil
}

func (r *PrescriptionMongoRepository) FindAllByPatientID(ctx context.Context, patientID string) ([]models.Prescription, error) {
	return r.find(ctx, bson.M{"patientId": patientID}, options.Find().SetSort(prescriptionListSort))
}

func (r *PrescriptionMongoRepository) Update(ctx context.Context, prescriptionID string, fields map[string]interface{}) (*models.Prescription, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for key, value := range fields {
		set[key] = value
	}

	var prescription models.Prescription
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": prescriptionID}, bson.M{"$set": set}, opts).Decode(&prescription)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &prescription, nil
}

func (r *PrescriptionMongoRepository) DeleteByID(ctx context.Context, prescriptionID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": prescriptionID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *PrescriptionMongoRepository) DeleteByPatientID(ctx context.Context, patientID string) (int64, error) {
	result, err := r.Collection.DeleteMany(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}

func (r *PrescriptionMongoRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Prescription, error) {
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	prescriptions := make([]models.Prescription, 0)
	if err := cursor.All(ctx, &prescriptions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return prescriptions, nil
}

func buildPrescriptionFilter(query *requests.ListQuery) bson.M {
	filter := bson.M{}
	if query.Status != "" {
		filter["status"] = query.Status
	}
	if query.PatientID != "" {
		filter["patientId"] = query.PatientID
	}
	utils.ApplyDayRange(filter, "date", query)

	return utils.MergeFilters(
		filter,
		utils.BuildSearchFilter(query.Search, "patientName", "doctorName", "medications.name"),
	)
}
