package validators

import "go.mongodb.org/mongo-driver/bson"

var AdminUserSchema = bson.M{
	"bsonType":             "object",
	"title":                "AdminUser",
	"required":             []string{"email", "password_hash", "password_salt", "role", "created_at"},
	"additionalProperties": true,
	"properties": bson.M{
		"_id":           bson.M{"bsonType": "objectId"},
		"email":         bson.M{"bsonType": "string"},
		"password_hash": bson.M{"bsonType": "string", "minLength": 64, "maxLength": 64},
		"password_salt": bson.M{"bsonType": "string"},
		"full_name":     bson.M{"bsonType": bson.A{"string", "null"}},
		"role":          bson.M{"bsonType": "string"},
		"created_at":    bson.M{"bsonType": "date"},
	},
}
