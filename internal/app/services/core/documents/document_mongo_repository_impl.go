package documents

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
	documentMongoRepositoryInstance contracts.DocumentRepository
	onceDocumentMongoRepository     sync.Once
)

type DocumentMongoRepository struct {
	Collection *mongo.Collection
}

func NewDocumentMongoRepository(db *mongo.Database) contracts.DocumentRepository {
	onceDocumentMongoRepository.Do(func() {
		documentMongoRepositoryInstance = &DocumentMongoRepository{
			Collection: db.Collection(constvars.MongoCollectionDocuments),
		}
	})
	return documentMongoRepositoryInstance
}

var documentListSort = bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}}

func (r *DocumentMongoRepository) CreateDocument(ctx context.Context, documentModel *models.Document) error {
	if documentModel.ID == "" {
		documentModel.ID = utils.GenerateRecordID()
	}
	documentModel.SetCreatedAtUpdatedAt()
	_, err := r.Collection.InsertOne(ctx, documentModel)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *DocumentMongoRepository) FindByID(ctx context.Context, documentID string) (*models.Document, error) {
	var document models.Document
	err := r.Collection.FindOne(ctx, bson.M{"_id": documentID}).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &document, nil
}

func (r *DocumentMongoRepository) FindByPatientID(ctx context.Context, patientID string, query *requests.ListQuery) ([]models.Document, int64, error) {
	filter := bson.M{"patientId": patientID}
	if query.Type != "" {
		filter["type"] = query.Type
	}
	utils.ApplyDayRange(filter, "date", query)
	filter = utils.MergeFilters(filter, utils.BuildSearchFilter(query.Search, "title", "description", "tags", "fileName"))

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	documents, err := r.find(ctx, filter, utils.BuildPageOptions(query, documentListSort))
	if err != nil {
		return nil, 0, err
	}
	return documents, total, nil
}

func (r *DocumentMongoRepository) FindAllByPatientID(ctx context.Context, patientID string) ([]models.Document, error) {
	return r.find(ctx, bson.M{"patientId": patientID}, options.Find().SetSort(documentListSort))
}

func (r *DocumentMongoRepository) FindAllByPatientIDAndType(ctx context.Context, patientID, documentType string) ([]models.Document, error) {
	return r.find(ctx, bson.M{"patientId": patientID, "type": documentType}, options.Find().SetSort(documentListSort))
}

func (r *DocumentMongoRepository) MarkProcessed(ctx context.Context, documentID string, processedAt time.Time) (bool, error) {
	result, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": documentID, "processed": false},
		bson.M{"$set": bson.M{"processed": true, "processedAt": processedAt, "updatedAt": processedAt}},
	)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount == 1, nil
}

func (r *DocumentMongoRepository) DeleteByID(ctx context.Context, documentID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": documentID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *DocumentMongoRepository) DeleteByPatientID(ctx context.Context, patientID string) (int64, error) {
	result, err := r.Collection.DeleteMany(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}

func (r *DocumentMongoRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Document, error) {
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	documents := make([]models.Document, 0)
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return documents, nil
}
