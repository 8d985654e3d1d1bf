package validators

import "go.mongodb.org/mongo-driver/bson"

var BlogPostSchema = bson.M{
	"bsonType":             "object",
	"title":                "BlogPost",
	"required":             []string{"title", "content", "created_at"},
	"additionalProperties": true,
	"properties": bson.M{
		"_id":          bson.M{"bsonType": "objectId"},
		"title":        bson.M{"bsonType": "string"},
		"slug":         bson.M{"bsonType": bson.A{"string", "null"}},
		"excerpt":      bson.M{"bsonType": bson.A{"string", "null"}},
		"content":      bson.M{"bsonType": "string"},
		"cover_image":  bson.M{"bsonType": bson.A{"string", "null"}},
		"tags":         stringArray(""),
		"published":    bson.M{"bsonType": "bool"},
		"published_on": bson.M{"bsonType": bson.A{"date", "null"}, "description": "Calendar date, stored at UTC midnight"},
		"created_at":   bson.M{"bsonType": "date"},
		"updated_at":   bson.M{"bsonType": "date"},
	},
}
