package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contains matches term anywhere in the field, ignoring case. The term is
// matched literally.
func Contains(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

// Equals matches the whole field value, ignoring case.
func Equals(term string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(term) + "$", Options: "i"}
}
