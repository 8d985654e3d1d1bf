package repository

import (
	"context"
	"time"

	"jumatrek/internal/store"
	"jumatrek/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
)

type TrekRepository interface {
	Create(ctx context.Context, trek *model.Trek) (string, error)
	FindByID(ctx context.Context, id string) (*model.Trek, error)
	Find(ctx context.Context, filter model.TrekFilter) ([]*model.Trek, error)
	Update(ctx context.Context, id string, trek *model.Trek) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type trekRepository struct {
	gw store.Gateway
}

func NewTrekRepository(gw store.Gateway) TrekRepository {
	return &trekRepository{gw: gw}
}

func (r *trekRepository) Create(ctx context.Context, trek *model.Trek) (string, error) {
	trek.ID = ""
	trek.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	trek.UpdatedAt = nil

	id, err := r.gw.Insert(ctx, store.Treks, trek)
	if err != nil {
		return "", err
	}
	trek.ID = id
	return id, nil
}

func (r *trekRepository) FindByID(ctx context.Context, id string) (*model.Trek, error) {
	var trek model.Trek
	if err := r.gw.FindOne(ctx, store.Treks, id, &trek); err != nil {
		return nil, err
	}
	return &trek, nil
}

func (r *trekRepository) Find(ctx context.Context, filter model.TrekFilter) ([]*model.Trek, error) {
	treks := []*model.Trek{}
	if err := r.gw.Find(ctx, store.Treks, BuildFilter(filter), &treks); err != nil {
		return nil, err
	}
	return treks, nil
}

// Update replaces every user-editable field and stamps updated_at. created_at
// is left as stored.
func (r *trekRepository) Update(ctx context.Context, id string, trek *model.Trek) (int64, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return r.gw.Update(ctx, store.Treks, id, bson.M{
		"title":          trek.Title,
		"slug":           trek.Slug,
		"region":         trek.Region,
		"difficulty":     trek.Difficulty,
		"duration_days":  trek.DurationDays,
		"price_usd":      trek.PriceUSD,
		"max_altitude_m": trek.MaxAltitudeM,
		"highlights":     trek.Highlights,
		"overview":       trek.Overview,
		"itinerary":      trek.Itinerary,
		"inclusions":     trek.Inclusions,
		"exclusions":     trek.Exclusions,
		"images":         trek.Images,
		"is_featured":    trek.IsFeatured,
		"updated_at":     now,
	})
}

func (r *trekRepository) Delete(ctx context.Context, id string) (int64, error) {
	return r.gw.Delete(ctx, store.Treks, id)
}

// BuildFilter turns the list query into a Mongo filter. Nil fields add no
// constraint.
func BuildFilter(f model.TrekFilter) bson.M {
	filter := bson.M{}

	if f.Region != nil {
		filter["region"] = store.Contains(*f.Region)
	}
	if f.Difficulty != nil {
		filter["difficulty"] = store.Equals(*f.Difficulty)
	}

	days := bson.M{}
	if f.MinDays != nil {
		days["$gte"] = *f.MinDays
	}
	if f.MaxDays != nil {
		days["$lte"] = *f.MaxDays
	}
	if len(days) > 0 {
		filter["duration_days"] = days
	}

	if f.Search != nil {
		term := store.Contains(*f.Search)
		filter["$or"] = bson.A{
			bson.M{"title": term},
			bson.M{"overview": term},
			bson.M{"highlights": bson.M{"$elemMatch": bson.M{"$regex": term}}},
		}
	}

	if f.Featured != nil {
		filter["is_featured"] = *f.Featured
	}

	return filter
}
