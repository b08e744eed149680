package repositories

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogs-api/apperr"
	"blogs-api/likes"
	"blogs-api/models"
	"blogs-api/pagination"
)

// MongoBlogsRepository stores blogs one per document.
type MongoBlogsRepository struct {
	col *mongo.Collection
}

func NewMongoBlogsRepository(db *mongo.Database) *MongoBlogsRepository {
	return &MongoBlogsRepository{col: db.Collection("blogs")}
}

func (r *MongoBlogsRepository) ListBlogs(ctx context.Context, params pagination.Params) (pagination.Page[models.Blog], error) {
	params = params.Normalize()
	filter := bson.M{}
	if params.SearchNameTerm != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(params.SearchNameTerm), Options: "i"}
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return pagination.Page[models.Blog]{}, fmt.Errorf("count blogs: %w", err)
	}

	findOpts := options.Find().
		SetSkip(int64(params.Skip())).
		SetLimit(int64(params.PageSize)).
		SetSort(bson.D{{Key: "name", Value: -1}, {Key: "id", Value: -1}})
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return pagination.Page[models.Blog]{}, fmt.Errorf("find blogs: %w", err)
	}
	defer cur.Close(ctx)

	var items []models.Blog
	if err := cur.All(ctx, &items); err != nil {
		return pagination.Page[models.Blog]{}, fmt.Errorf("decode blogs: %w", err)
	}
	return pagination.NewPage(params, int(total), items), nil
}

func (r *MongoBlogsRepository) GetBlogByID(ctx context.Context, id string) (*models.Blog, error) {
	var b models.Blog
	if err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("blog")
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}
	return &b, nil
}

func (r *MongoBlogsRepository) CreateBlog(ctx context.Context, blog models.Blog) error {
	if _, err := r.col.InsertOne(ctx, blog); err != nil {
		return fmt.Errorf("insert blog: %w", err)
	}
	return nil
}

// MongoUsersRepository backs the user lookup boundary.
type MongoUsersRepository struct {
	col *mongo.Collection
}

func NewMongoUsersRepository(db *mongo.Database) *MongoUsersRepository {
	return &MongoUsersRepository{col: db.Collection("users")}
}

func (r *MongoUsersRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("user")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (r *MongoUsersRepository) CreateUser(ctx context.Context, user models.User) error {
	if _, err := r.col.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// MongoCommentsRepository embeds comment reactions the same way posts do.
type MongoCommentsRepository struct {
	col *mongo.Collection
}

func NewMongoCommentsRepository(db *mongo.Database) *MongoCommentsRepository {
	return &MongoCommentsRepository{col: db.Collection("comments")}
}

type commentDoc struct {
	models.Comment `bson:",inline"`
	Reactions      []models.Reaction `bson:"reactions"`
}

func (r *MongoCommentsRepository) GetCommentByID(ctx context.Context, id, userID string) (*models.CommentWithLikes, error) {
	var d commentDoc
	if err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("comment")
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	return &models.CommentWithLikes{
		Comment:   d.Comment,
		LikesInfo: likes.AggregateStatus(d.Reactions, userID),
	}, nil
}

func (r *MongoCommentsRepository) CreateComment(ctx context.Context, comment models.Comment) error {
	doc := commentDoc{Comment: comment, Reactions: []models.Reaction{}}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

func (r *MongoCommentsRepository) SetCommentReaction(ctx context.Context, action models.LikeAction, userID, login, commentID string, addedAt time.Time) error {
	if action == models.ActionNone {
		if _, err := r.col.UpdateOne(ctx, bson.M{"id": commentID}, bson.M{
			"$pull": bson.M{"reactions": bson.M{"user_id": userID}},
		}); err != nil {
			return fmt.Errorf("clear reaction: %w", err)
		}
		return nil
	}

	reaction := models.Reaction{
		PostID:  commentID,
		UserID:  userID,
		Action:  action,
		Login:   login,
		AddedAt: addedAt,
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"id": commentID}, replaceReactionPipeline(userID, reaction))
	if err != nil {
		return fmt.Errorf("record reaction: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperr.BadRequest("comment does not exist")
	}
	return nil
}
