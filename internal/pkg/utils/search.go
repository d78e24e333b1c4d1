package utils

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BuildSearchFilter matches search as a case-insensitive substring of any field.
func BuildSearchFilter(search string, fields ...string) bson.M {
	search = strings.TrimSpace(search)
	if search == "" || len(fields) == 0 {
		return nil
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	conditions := make(bson.A, 0, len(fields))
	for _, field := range fields {
		conditions = append(conditions, bson.M{field: pattern})
	}
	return bson.M{"$or": conditions}
}
