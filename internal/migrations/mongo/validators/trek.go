package validators

import "go.mongodb.org/mongo-driver/bson"

var TrekSchema = bson.M{
	"bsonType":             "object",
	"title":                "Trek",
	"required":             []string{"title", "region", "difficulty", "duration_days", "price_usd", "overview", "created_at"},
	"additionalProperties": true,
	"properties": bson.M{
		"_id":            bson.M{"bsonType": "objectId"},
		"title":          bson.M{"bsonType": "string", "description": "Trek title"},
		"slug":           bson.M{"bsonType": bson.A{"string", "null"}, "description": "URL-friendly slug"},
		"region":         bson.M{"bsonType": "string", "description": "Geographic region"},
		"difficulty":     bson.M{"bsonType": "string", "description": "Difficulty level: Easy/Moderate/Challenging"},
		"duration_days":  bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 1, "description": "Total duration in days"},
		"price_usd":      bson.M{"bsonType": bson.A{"double", "int", "long"}, "minimum": 0, "description": "Starting price in USD"},
		"max_altitude_m": bson.M{"bsonType": bson.A{"int", "long", "null"}, "minimum": 0, "description": "Maximum altitude in meters"},
		"highlights":     stringArray("Key highlights bullets"),
		"overview":       bson.M{"bsonType": "string", "description": "Short overview"},
		"itinerary":      stringArray("Day-wise itinerary"),
		"inclusions":     stringArray(""),
		"exclusions":     stringArray(""),
		"images":         stringArray("Image URLs"),
		"is_featured":    bson.M{"bsonType": "bool", "description": "Show on homepage"},
		"created_at":     bson.M{"bsonType": "date"},
		"updated_at":     bson.M{"bsonType": "date"},
	},
}

func stringArray(description string) bson.M {
	m := bson.M{
		"bsonType": "array",
		"items":    bson.M{"bsonType": "string"},
	}
	if description != "" {
		m["description"] = description
	}
	return m
}
