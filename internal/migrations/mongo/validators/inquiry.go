package validators

import "go.mongodb.org/mongo-driver/bson"

var InquirySchema = bson.M{
	"bsonType":             "object",
	"title":                "Inquiry",
	"required":             []string{"name", "email", "message", "created_at"},
	"additionalProperties": true,
	"properties": bson.M{
		"_id":                  bson.M{"bsonType": "objectId"},
		"name":                 bson.M{"bsonType": "string"},
		"email":                bson.M{"bsonType": "string", "pattern": "^[^@\\s]+@[^@\\s]+$"},
		"trek_id":              bson.M{"bsonType": bson.A{"string", "null"}, "description": "Optional trek id of interest"},
		"subject":              bson.M{"bsonType": bson.A{"string", "null"}},
		"message":              bson.M{"bsonType": "string"},
		"preferred_start_date": bson.M{"bsonType": bson.A{"date", "null"}},
		"travelers":            bson.M{"bsonType": bson.A{"int", "long", "null"}, "minimum": 1},
		"created_at":           bson.M{"bsonType": "date"},
	},
}
