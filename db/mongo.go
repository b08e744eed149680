package db

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"blogs-api/config"
	"blogs-api/logger"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	database   *mongo.Database
)

// InitMongo initializes the global Mongo client and database using config
// values.
func InitMongo(ctx context.Context) error {
	var initErr error
	clientOnce.Do(func() {
		cfg := config.GetConfig()
		uri := cfg.Mongo.URI
		if uri == "" {
			// Fallback for local docker-compose default
			uri = "mongodb://localhost:27017"
		}
		dbName := cfg.Mongo.Database
		if dbName == "" {
			dbName = "blogsapi"
		}

		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		cl, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			initErr = err
			return
		}
		// Ping to verify connection
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			initErr = err
			return
		}
		client = cl
		database = client.Database(dbName)

		if err := EnsureMongoIndexes(ctx, database); err != nil {
			initErr = err
			return
		}
		logger.Log.Info("MongoDB connected and indexes ensured")
	})
	return initErr
}

func MongoClient() *mongo.Client { return client }

func MongoDatabase() *mongo.Database { return database }

// PingMongo verifies the connection for health checks.
func PingMongo(ctx context.Context) error {
	return database.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// EnsureMongoIndexes creates the indexes every collection relies on. The
// unique id indexes back entity identity; per-user reaction uniqueness
// inside a document is kept by the atomic replace in the reaction update.
func EnsureMongoIndexes(ctx context.Context, d *mongo.Database) error {
	for _, col := range []string{"posts", "blogs", "users", "comments"} {
		mi := mongo.IndexModel{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetName("uniq_id").SetUnique(true),
		}
		if _, err := d.Collection(col).Indexes().CreateOne(ctx, mi); err != nil {
			return err
		}
	}

	// posts: title desc backs the default listing order
	if _, err := d.Collection("posts").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: -1}},
		Options: options.Index().SetName("idx_title_desc"),
	}); err != nil {
		return err
	}
	// posts: blog filter
	if _, err := d.Collection("posts").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "blog_id", Value: 1}},
		Options: options.Index().SetName("idx_blog_id"),
	}); err != nil {
		return err
	}
	// comments: post filter
	if _, err := d.Collection("comments").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "post_id", Value: 1}},
		Options: options.Index().SetName("idx_post_id"),
	}); err != nil {
		return err
	}
	return nil
}
