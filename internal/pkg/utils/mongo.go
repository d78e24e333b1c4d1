package utils

import (
	"sehatnama-service/internal/pkg/dto/requests"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BuildPageOptions applies the query's page window on top of sort.
func BuildPageOptions(query *requests.ListQuery, sort bson.D) *options.FindOptions {
	return options.Find().
		SetSort(sort).
		SetSkip(query.Skip()).
		SetLimit(int64(query.Limit))
}

// ApplyDayRange restricts field to [from, to] with both ends inclusive at day granularity.
func ApplyDayRange(filter bson.M, field string, query *requests.ListQuery) {
	if query.From == nil && query.To == nil {
		return
	}
	condition := bson.M{}
	if query.From != nil {
		condition["$gte"] = *query.From
	}
	if query.To != nil {
		condition["$lt"] = EndOfDay(*query.To)
	}
	filter[field] = condition
}

// MergeFilters ANDs the non-empty filters together.
func MergeFilters(filters ...bson.M) bson.M {
	nonEmpty := make(bson.A, 0, len(filters))
	for _, filter := range filters {
		if len(filter) > 0 {
			nonEmpty = append(nonEmpty, filter)
		}
	}
	switch len(nonEmpty) {
	case 0:
		return bson.M{}
	case 1:
		return nonEmpty[0].(bson.M)
	default:
		return bson.M{"$and": nonEmpty}
	}
}
