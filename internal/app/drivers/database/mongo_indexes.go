package database

import (
	"context"
	"sehatnama-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionIndexes lists the secondary indexes each collection relies on.
// Patient identifiers live in _id and need no extra index.
var CollectionIndexes = map[string][]mongo.IndexModel{
	constvars.MongoCollectionUsers: {
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	constvars.MongoCollectionPatients: {
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true).SetSparse(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	},
	constvars.MongoCollectionAppointments: {
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "status", Value: 1}}},
	},
	constvars.MongoCollectionPrescriptions: {
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "date", Value: -1}}},
		sourceDocumentIndex(),
	},
	constvars.MongoCollectionLabReports: {
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "date", Value: -1}}},
		sourceDocumentIndex(),
	},
	constvars.MongoCollectionDocuments: {
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "type", Value: 1}}},
	},
	constvars.MongoCollectionMedicines: {
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	constvars.MongoCollectionHospitals: {
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
}

// sourceDocumentIndex allows at most one derived record per processed document.
// Manually created records carry no sourceDocumentId and are not indexed.
func sourceDocumentIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys: bson.D{{Key: "sourceDocumentId", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"sourceDocumentId": bson.M{"$exists": true}}),
	}
}

// EnsureIndexes creates missing indexes. It is idempotent and returns the
// names mongo reports per collection.
func EnsureIndexes(ctx context.Context, db *mongo.Database) (map[string][]string, error) {
	created := make(map[string][]string, len(CollectionIndexes))
	for collection, indexes := range CollectionIndexes {
		names, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes)
		if err != nil {
			return created, err
		}
		created[collection] = names
	}
	return created, nil
}
