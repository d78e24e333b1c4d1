package labReports

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
	labReportMongoRepositoryInstance contracts.LabReportRepository
	onceLabReportMongoRepository     sync.Once
)

type LabReportMongoRepository struct {
	Collection *mongo.Collection
}

func NewLabReportMongoRepository(db *mongo.Database) contracts.LabReportRepository {
	onceLabReportMongoRepository.Do(func() {
		labReportMongoRepositoryInstance = &LabReportMongoRepository{
			Collection: db.Collection(constvars.MongoCollectionLabReports),
		}
	})
	return labReportMongoRepositoryInstance
}

var labReportListSort = bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}}

func (r *LabReportMongoRepository) CreateLabReport(ctx context.Context, labReportModel *models.LabReport) error {
	if labReportModel.ID == "" {
		labReportModel.ID = utils.GenerateRecordID()
	}
	labReportModel.SetCreatedAtUpdatedAt()
	_, err := r.Collection.InsertOne(ctx, labReportModel)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) && labReportModel.SourceDocumentID != "" {
			return exceptions.ErrMongoDBDuplicateKey(fmt.Errorf("%w: %v", contracts.ErrDuplicateSourceDocument, err))
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *LabReportMongoRepository) FindByID(ctx context.Context, labReportID string) (*models.LabReport, error) {
	var labReport models.LabReport
	err := r.Collection.FindOne(ctx, bson.M{"_id": labReportID}).Decode(&labReport)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &labReport, nil
}

func (r *LabReportMongoRepository) FindBySourceDocumentID(ctx context.Context, documentID string) (*models.LabReport, error) {
	var labReport models.LabReport
	err := r.Collection.FindOne(ctx, bson.M{"sourceDocumentId": documentID}).Decode(&labReport)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &labReport, nil
}

func (r *LabReportMongoRepository) FindAll(ctx context.Context, query *requests.ListQuery) ([]models.LabReport, int64, error) {
	filter := buildLabReportFilter(query)

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	labReports, err := r.find(ctx, filter, utils.BuildPageOptions(query, labReportListSort))
	if err != nil {
		return nil, 0, err
	}
	return labReports, total, nil
}

func (r *LabReportMongoRepository) FindAllByPatientID(ctx context.Context, patientID string) ([]models.LabReport, error) {
	return r.find(ctx, bson.M{"patientId": patientID}, options.Find().SetSort(labReportListSort))
}

func (r *LabReportMongoRepository) Update(ctx context.Context, labReportID string, fields map[string]interface{}) (*models.LabReport, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for key, value := range fields {
		set[key] = value
	}

	var labReport models.LabReport
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": labReportID}, bson.M{"$set": set}, opts).Decode(&labReport)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &labReport, nil
}

func (r *LabReportMongoRepository) DeleteByID(ctx context.Context, labReportID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": labReportID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *LabReportMongoRepository) DeleteByPatientID(ctx context.Context, patientID string) (int64, error) {
	result, err := r.Collection.DeleteMany(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}

func (r *LabReportMongoRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.LabReport, error) {
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	labReports := make([]models.LabReport, 0)
	if err := cursor.All(ctx, &labReports); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return labReports, nil
}

func buildLabReportFilter(query *requests.ListQuery) bson.M {
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
		utils.BuildSearchFilter(query.Search, "testType", "labName", "patientName", "doctorName"),
	)
}
