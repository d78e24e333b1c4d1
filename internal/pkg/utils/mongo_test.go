package utils

import (
	"sehatnama-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestApplyDayRange(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	filter := bson.M{}
	ApplyDayRange(filter, "date", &requests.ListQuery{From: &from, To: &to})

	assert.Equal(t, bson.M{"date": bson.M{
		"$gte": from,
		"$lt":  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}}, filter)

	untouched := bson.M{}
	ApplyDayRange(untouched, "date", &requests.ListQuery{})
	assert.Empty(t, untouched)
}

func TestMergeFilters(t *testing.T) {
	assert.Equal(t, bson.M{}, MergeFilters(nil, bson.M{}))
	assert.Equal(t, bson.M{"status": "Pending"}, MergeFilters(bson.M{"status": "Pending"}, nil))
	assert.Equal(t,
		bson.M{"$and": bson.A{bson.M{"status": "Pending"}, bson.M{"patientId": "P-1001"}}},
		MergeFilters(bson.M{"status": "Pending"}, bson.M{"patientId": "P-1001"}),
	)
}
