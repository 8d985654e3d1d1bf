package store

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Runs against a live server only when MONGO_TEST_URI is set.
func newIntegrationGateway(t *testing.T) Gateway {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	db := client.Database("jumatrek_test_" + time.Now().UTC().Format("20060102150405"))
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	return NewMongoGateway(db, Timeouts{Read: 5 * time.Second, Write: 5 * time.Second})
}

type testDoc struct {
	ID    string `bson:"_id,omitempty"`
	Title string `bson:"title"`
	Days  int    `bson:"duration_days"`
}

func TestMongoGateway_Lifecycle(t *testing.T) {
	g := newIntegrationGateway(t)
	ctx := context.Background()

	id, err := g.Insert(ctx, Treks, testDoc{Title: "Island Peak", Days: 18})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if !IsValidID(id) {
		t.Fatalf("insert returned malformed id %q", id)
	}

	var got testDoc
	if err := g.FindOne(ctx, Treks, id, &got); err != nil {
		t.Fatalf("find one: %v", err)
	}
	if got.ID != id || got.Title != "Island Peak" {
		t.Errorf("unexpected document %+v", got)
	}

	matched, err := g.Update(ctx, Treks, id, bson.M{"duration_days": 19})
	if err != nil || matched != 1 {
		t.Fatalf("update: matched=%d err=%v", matched, err)
	}

	var list []testDoc
	if err := g.Find(ctx, Treks, bson.M{"title": Contains("island")}, &list); err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(list) != 1 || list[0].Days != 19 {
		t.Errorf("unexpected list %+v", list)
	}

	deleted, err := g.Delete(ctx, Treks, id)
	if err != nil || deleted != 1 {
		t.Fatalf("delete: deleted=%d err=%v", deleted, err)
	}
	deleted, err = g.Delete(ctx, Treks, id)
	if err != nil || deleted != 0 {
		t.Errorf("second delete: deleted=%d err=%v", deleted, err)
	}

	if err := g.FindOne(ctx, Treks, id, &got); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := g.Ping(ctx); err != nil {
		t.Errorf("ping: %v", err)
	}
}
