package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"jumatrek/pkg/client"
)

const DefaultHealthCheckTimeout = 30 * time.Second

// TestEnv describes a running API. The suite is skipped unless TEST_SERVER_URL
// is set; Mongo assertions additionally need TEST_MONGO_URI.
type TestEnv struct {
	ServerURL    string
	AdminKey     string
	MongoURI     string
	DatabaseName string
}

func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	serverURL := os.Getenv("TEST_SERVER_URL")
	if serverURL == "" {
		t.Skip("TEST_SERVER_URL not set; skipping end-to-end tests")
	}

	return &TestEnv{
		ServerURL:    serverURL,
		AdminKey:     os.Getenv("TEST_ADMIN_KEY"),
		MongoURI:     os.Getenv("TEST_MONGO_URI"),
		DatabaseName: getEnv("TEST_DB_NAME", DefaultDatabaseName),
	}
}

// Setup waits for the API and returns a public client, an admin client and
// the Mongo helper (nil without TEST_MONGO_URI).
func (e *TestEnv) Setup(t *testing.T) (public, admin *client.APIClient, mongo *MongoHelper) {
	t.Helper()

	public = client.NewAPIClient(e.ServerURL)
	if err := public.HTTP().WaitForHealthy(context.Background(), DefaultHealthCheckTimeout); err != nil {
		t.Fatalf("API not healthy: %v", err)
	}

	admin = client.NewAPIClient(e.ServerURL)
	if e.AdminKey != "" {
		admin.UseAdminKey(e.AdminKey)
	}

	if e.MongoURI != "" {
		mongo = NewMongoHelper(t, e.MongoURI, e.DatabaseName)
		t.Cleanup(func() { mongo.Close(t) })
	}
	return public, admin, mongo
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
