package repositories_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogs-api/db"
	"blogs-api/repositories"
)

// The same conformance suite runs against the real backends when their
// stores are reachable. Set BLOGS_API_TEST_MONGO_URI and/or
// BLOGS_API_TEST_POSTGRES_DSN to enable; otherwise these tests skip.

var mongoTestSeq int

func TestMongoBackendConformance(t *testing.T) {
	uri := os.Getenv("BLOGS_API_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("BLOGS_API_TEST_MONGO_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	runPostsConformance(t, func(t *testing.T) backend {
		t.Helper()
		mongoTestSeq++
		name := fmt.Sprintf("blogs_api_test_%d_%d", time.Now().UnixNano(), mongoTestSeq)
		database := client.Database(name)
		require.NoError(t, db.EnsureMongoIndexes(context.Background(), database))
		t.Cleanup(func() { _ = database.Drop(context.Background()) })
		return backend{
			posts: repositories.NewMongoPostsRepository(database),
			blogs: repositories.NewMongoBlogsRepository(database),
		}
	})
}

func TestSQLBackendConformance(t *testing.T) {
	dsn := os.Getenv("BLOGS_API_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("BLOGS_API_TEST_POSTGRES_DSN not set")
	}

	sqlDB, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.EnsurePostgresSchema(sqlDB))

	runPostsConformance(t, func(t *testing.T) backend {
		t.Helper()
		_, err := sqlDB.Exec(`TRUNCATE post_reactions, comment_reactions, comments, posts, blogs, users`)
		require.NoError(t, err)
		return backend{
			posts: repositories.NewSQLPostsRepository(sqlDB),
			blogs: repositories.NewSQLBlogsRepository(sqlDB),
		}
	})
}
