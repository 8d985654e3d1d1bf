package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Gateway is the only component that talks to the document store. It owns no
// domain logic: callers bring the collection, the filter and the document.
type Gateway interface {
	Insert(ctx context.Context, coll Collection, doc any) (string, error)
	Find(ctx context.Context, coll Collection, filter bson.M, out any) error
	FindOne(ctx context.Context, coll Collection, id string, out any) error
	FindOneBy(ctx context.Context, coll Collection, filter bson.M, out any) error
	Update(ctx context.Context, coll Collection, id string, fields bson.M) (int64, error)
	Delete(ctx context.Context, coll Collection, id string) (int64, error)

	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
	DatabaseName() string
}

type Timeouts struct {
	Read  time.Duration
	Write time.Duration
}

type mongoGateway struct {
	db       *mongo.Database
	timeouts Timeouts
}

func NewMongoGateway(db *mongo.Database, timeouts Timeouts) Gateway {
	return &mongoGateway{db: db, timeouts: timeouts}
}

// ObjectID parses the 24-character hex wire format.
func ObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}
	return oid, nil
}

// IsValidID reports whether id has the wire format, without touching the store.
func IsValidID(id string) bool {
	_, err := ObjectID(id)
	return err == nil
}

// withTimeout bounds ctx by timeout unless the caller's deadline is sooner.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func (g *mongoGateway) collection(coll Collection) *mongo.Collection {
	return g.db.Collection(coll.String())
}

func (g *mongoGateway) Insert(ctx context.Context, coll Collection, doc any) (string, error) {
	ctx, cancel := withTimeout(ctx, g.timeouts.Write)
	defer cancel()

	result, err := g.collection(coll).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", fmt.Errorf("%w: %s", ErrDuplicate, coll)
		}
		return "", fmt.Errorf("failed to insert into %s: %w", coll, err)
	}

	switch id := result.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	case string:
		return id, nil
	default:
		return fmt.Sprint(id), nil
	}
}

func (g *mongoGateway) Find(ctx context.Context, coll Collection, filter bson.M, out any) error {
	ctx, cancel := withTimeout(ctx, g.timeouts.Read)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})

	cursor, err := g.collection(coll).Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", coll, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", coll, err)
	}
	return nil
}

func (g *mongoGateway) FindOne(ctx context.Context, coll Collection, id string, out any) error {
	oid, err := ObjectID(id)
	if err != nil {
		return err
	}
	return g.findOne(ctx, coll, bson.M{"_id": oid}, out)
}

func (g *mongoGateway) FindOneBy(ctx context.Context, coll Collection, filter bson.M, out any) error {
	return g.findOne(ctx, coll, filter, out)
}

func (g *mongoGateway) findOne(ctx context.Context, coll Collection, filter bson.M, out any) error {
	ctx, cancel := withTimeout(ctx, g.timeouts.Read)
	defer cancel()

	err := g.collection(coll).FindOne(ctx, filter).Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("%w: %s", ErrNotFound, coll)
		}
		return fmt.Errorf("failed to find in %s: %w", coll, err)
	}
	return nil
}

func (g *mongoGateway) Update(ctx context.Context, coll Collection, id string, fields bson.M) (int64, error) {
	oid, err := ObjectID(id)
	if err != nil {
		return 0, err
	}

	ctx, cancel := withTimeout(ctx, g.timeouts.Write)
	defer cancel()

	result, err := g.collection(coll).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, fmt.Errorf("%w: %s", ErrDuplicate, coll)
		}
		return 0, fmt.Errorf("failed to update %s: %w", coll, err)
	}
	return result.MatchedCount, nil
}

func (g *mongoGateway) Delete(ctx context.Context, coll Collection, id string) (int64, error) {
	oid, err := ObjectID(id)
	if err != nil {
		return 0, err
	}

	ctx, cancel := withTimeout(ctx, g.timeouts.Write)
	defer cancel()

	result, err := g.collection(coll).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("failed to delete from %s: %w", coll, err)
	}
	return result.DeletedCount, nil
}

func (g *mongoGateway) Ping(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, g.timeouts.Read)
	defer cancel()
	return g.db.Client().Ping(ctx, nil)
}

func (g *mongoGateway) CollectionNames(ctx context.Context) ([]string, error) {
	ctx, cancel := withTimeout(ctx, g.timeouts.Read)
	defer cancel()
	return g.db.ListCollectionNames(ctx, bson.D{})
}

func (g *mongoGateway) DatabaseName() string {
	return g.db.Name()
}
