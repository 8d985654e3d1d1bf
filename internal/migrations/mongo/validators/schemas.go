package validators

import "go.mongodb.org/mongo-driver/bson"

// Schemas maps each collection name to its $jsonSchema document. The same
// definitions back the collection validators and the /schema endpoint.
func Schemas() map[string]bson.M {
	return map[string]bson.M{
		"trek":      TrekSchema,
		"blogpost":  BlogPostSchema,
		"inquiry":   InquirySchema,
		"adminuser": AdminUserSchema,
	}
}

// Validator wraps a schema for use as a collection validator.
func Validator(schema bson.M) bson.M {
	return bson.M{"$jsonSchema": schema}
}
