package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jumatrek/internal/migrations/mongo/validators"
	"jumatrek/internal/store"
	"jumatrek/pkg/logger"
)

var (
	TrekIndexes = []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "region", Value: 1},
			{Key: "difficulty", Value: 1},
			{Key: "duration_days", Value: 1},
		}},
		{Keys: bson.D{{Key: "is_featured", Value: 1}}},
		{Keys: bson.D{{Key: "slug", Value: 1}}},
	}

	BlogPostIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "tags", Value: 1}}},
		{Keys: bson.D{{Key: "slug", Value: 1}}},
	}

	InquiryIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}

	AdminUserIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("email_unique"),
		},
	}
)

type collectionDef struct {
	Name      store.Collection
	Indexes   []mongo.IndexModel
	Validator bson.M
}

func definitions() []collectionDef {
	return []collectionDef{
		{Name: store.Treks, Indexes: TrekIndexes, Validator: validators.Validator(validators.TrekSchema)},
		{Name: store.BlogPosts, Indexes: BlogPostIndexes, Validator: validators.Validator(validators.BlogPostSchema)},
		{Name: store.Inquiries, Indexes: InquiryIndexes, Validator: validators.Validator(validators.InquirySchema)},
		{Name: store.AdminUsers, Indexes: AdminUserIndexes, Validator: validators.Validator(validators.AdminUserSchema)},
	}
}

// RunMigration creates every collection with its validator and indexes. It is
// safe to run repeatedly.
func RunMigration(ctx context.Context, db *mongo.Database, log *logger.Logger) error {
	log.Info("Running Mongo migrations", "database", db.Name())

	for _, def := range definitions() {
		if err := ensureCollection(ctx, db, def.Name.String(), def.Validator, log); err != nil {
			return fmt.Errorf("failed to ensure collection %s: %w", def.Name, err)
		}
		if err := ensureIndexes(ctx, db, def.Name.String(), def.Indexes, log); err != nil {
			return fmt.Errorf("failed to ensure indexes for %s: %w", def.Name, err)
		}
	}

	log.Info("All migrations applied successfully")
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M, log *logger.Logger) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		log.Info("Creating collection", "collection", name)
		opts := options.CreateCollection().SetValidator(validator)
		if err := db.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("failed creating %s: %w", name, err)
		}
		return nil
	}

	command := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
	}
	if err := db.RunCommand(ctx, command).Err(); err != nil {
		log.Warn("Failed updating collection validator", "collection", name, "error", err)
	}
	return nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database, name string, models []mongo.IndexModel, log *logger.Logger) error {
	if len(models) == 0 {
		return nil
	}
	if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
		return err
	}
	log.Debug("Ensured indexes", "collection", name, "count", len(models))
	return nil
}
