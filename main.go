package main

import (
	"context"
	"net/http"

	"github.com/rs/cors"

	"blogs-api/api/router"
	"blogs-api/config"
	"blogs-api/db"
	"blogs-api/eventbus"
	"blogs-api/logger"
	"blogs-api/repositories"
	"blogs-api/services"
)

// @title           Blogs API
// @version         1.0
// @description     Blogging API with post reactions and likes aggregation
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	var (
		posts    repositories.PostsRepository
		blogs    repositories.BlogsRepository
		users    repositories.UsersRepository
		comments repositories.CommentsRepository
		ping     func(ctx context.Context) error
	)
	switch cfg.Storage.Backend {
	case "sql":
		if err := db.InitPostgres(); err != nil {
			logger.Log.Errorf("failed to initialize Postgres: %v", err)
			return
		}
		conn := db.Postgres()
		posts = repositories.NewSQLPostsRepository(conn)
		blogs = repositories.NewSQLBlogsRepository(conn)
		users = repositories.NewSQLUsersRepository(conn)
		comments = repositories.NewSQLCommentsRepository(conn)
		ping = conn.PingContext
	default:
		if err := db.InitMongo(context.Background()); err != nil {
			logger.Log.Errorf("failed to initialize MongoDB: %v", err)
			return
		}
		database := db.MongoDatabase()
		posts = repositories.NewMongoPostsRepository(database)
		blogs = repositories.NewMongoBlogsRepository(database)
		users = repositories.NewMongoUsersRepository(database)
		comments = repositories.NewMongoCommentsRepository(database)
		ping = db.PingMongo
	}

	var bus eventbus.EventBus = eventbus.NewNoopEventBus()
	if cfg.Kafka.Brokers != "" {
		kb, err := eventbus.NewKafkaEventBus(cfg.Kafka.Brokers)
		if err != nil {
			logger.Log.Errorf("failed to initialize Kafka producer: %v", err)
			return
		}
		bus = kb
	}
	defer bus.Close()

	deps := router.Deps{
		Posts:    services.NewPostsService(posts, bus),
		Blogs:    services.NewBlogsService(blogs),
		Comments: services.NewCommentsService(comments, posts, users),
		Likes:    services.NewLikesService(posts, comments, users, bus),
		Ping:     ping,
	}
	r := router.New(deps)

	addr := cfg.Server.Addr
	if addr == "" {
		addr = ":8080"
	}
	handler := cors.Default().Handler(r)
	logger.Log.Infof("listening on %s (backend=%s)", addr, cfg.Storage.Backend)
	if err := http.ListenAndServe(addr, handler); err != nil && err != http.ErrServerClosed {
		logger.Log.Errorf("server stopped: %v", err)
	}
}
