package identifier

import (
	"context"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/app/models"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/exceptions"
	"sehatnama-service/internal/pkg/utils"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

var (
	patientIDGeneratorInstance contracts.PatientIDGenerator
	oncePatientIDGenerator     sync.Once
)

// patientIDGenerator hands out P-#### identifiers from a monotonic counter
// document. The stored sequence is an offset from PatientCounterBase, so the
// first identifier is P-1001.
type patientIDGenerator struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewPatientIDGenerator(db *mongo.Database, logger *zap.Logger) contracts.PatientIDGenerator {
	oncePatientIDGenerator.Do(func() {
		patientIDGeneratorInstance = &patientIDGenerator{
			Collection: db.Collection(constvars.MongoCollectionCounters),
			Log:        logger,
		}
	})
	return patientIDGeneratorInstance
}

func (g *patientIDGenerator) Next(ctx context.Context) (string, error) {
	requestID := utils.GetRequestID(ctx)

	filter := bson.M{"_id": constvars.PatientCounterName}
	update := bson.M{"$inc": bson.M{"seq": 1}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter models.Counter
	err := g.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter)
	if err != nil {
		g.Log.Error("patientIDGenerator.Next error advancing counter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMongoDBUpdateDocument(err)
	}

	return utils.FormatPatientID(constvars.PatientCounterBase + counter.Seq), nil
}

func (g *patientIDGenerator) SyncTo(ctx context.Context, seq int64) error {
	requestID := utils.GetRequestID(ctx)
	g.Log.Info("patientIDGenerator.SyncTo called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCountKey, seq),
	)

	offset := seq - constvars.PatientCounterBase
	if offset < 0 {
		offset = 0
	}

	filter := bson.M{"_id": constvars.PatientCounterName}
	update := bson.M{"$max": bson.M{"seq": offset}}
	_, err := g.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		g.Log.Error("patientIDGenerator.SyncTo error updating counter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
