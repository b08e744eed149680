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

// MongoPostsRepository stores each post as one document with its reactions
// embedded, so a reaction write is a single-document update pair and a read
// aggregates in process.
type MongoPostsRepository struct {
	posts *mongo.Collection
	blogs *mongo.Collection
}

func NewMongoPostsRepository(db *mongo.Database) *MongoPostsRepository {
	return &MongoPostsRepository{
		posts: db.Collection("posts"),
		blogs: db.Collection("blogs"),
	}
}

type postDoc struct {
	models.Post `bson:",inline"`
	Reactions   []models.Reaction `bson:"reactions"`
}

func (r *MongoPostsRepository) ListPosts(ctx context.Context, params pagination.Params, blogID, userID string) (pagination.Page[models.PostWithLikes], error) {
	params = params.Normalize()

	filter := bson.M{}
	if params.SearchNameTerm != "" {
		filter["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(params.SearchNameTerm), Options: "i"}
	}
	if blogID != "" {
		filter["blog_id"] = blogID
	}

	total, err := r.posts.CountDocuments(ctx, filter)
	if err != nil {
		return pagination.Page[models.PostWithLikes]{}, fmt.Errorf("count posts: %w", err)
	}

	findOpts := options.Find().
		SetSkip(int64(params.Skip())).
		SetLimit(int64(params.PageSize)).
		SetSort(bson.D{{Key: "title", Value: -1}, {Key: "id", Value: -1}})
	cur, err := r.posts.Find(ctx, filter, findOpts)
	if err != nil {
		return pagination.Page[models.PostWithLikes]{}, fmt.Errorf("find posts: %w", err)
	}
	defer cur.Close(ctx)

	var docs []postDoc
	if err := cur.All(ctx, &docs); err != nil {
		return pagination.Page[models.PostWithLikes]{}, fmt.Errorf("decode posts: %w", err)
	}

	names, err := r.blogNames(ctx, docs)
	if err != nil {
		return pagination.Page[models.PostWithLikes]{}, err
	}

	items := make([]models.PostWithLikes, 0, len(docs))
	for _, d := range docs {
		if name, ok := names[d.BlogID]; ok {
			d.BlogName = name
		}
		items = append(items, models.PostWithLikes{
			Post:              d.Post,
			ExtendedLikesInfo: likes.Aggregate(d.Reactions, userID),
		})
	}
	return pagination.NewPage(params, int(total), items), nil
}

// blogNames resolves current blog names for a page of posts in one query.
func (r *MongoPostsRepository) blogNames(ctx context.Context, docs []postDoc) (map[string]string, error) {
	ids := make([]string, 0, len(docs))
	seen := make(map[string]bool, len(docs))
	for _, d := range docs {
		if !seen[d.BlogID] {
			seen[d.BlogID] = true
			ids = append(ids, d.BlogID)
		}
	}
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	cur, err := r.blogs.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find blogs: %w", err)
	}
	defer cur.Close(ctx)
	var bs []models.Blog
	if err := cur.All(ctx, &bs); err != nil {
		return nil, fmt.Errorf("decode blogs: %w", err)
	}
	for _, b := range bs {
		names[b.ID] = b.Name
	}
	return names, nil
}

func (r *MongoPostsRepository) GetPostByID(ctx context.Context, id, userID string) (*models.PostWithLikes, error) {
	var d postDoc
	if err := r.posts.FindOne(ctx, bson.M{"id": id}).Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("post")
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	var b models.Blog
	if err := r.blogs.FindOne(ctx, bson.M{"id": d.BlogID}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("blog")
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}
	d.BlogName = b.Name

	return &models.PostWithLikes{
		Post:              d.Post,
		ExtendedLikesInfo: likes.Aggregate(d.Reactions, userID),
	}, nil
}

func (r *MongoPostsRepository) CreatePost(ctx context.Context, post models.Post) (*models.PostWithLikes, error) {
	var b models.Blog
	if err := r.blogs.FindOne(ctx, bson.M{"id": post.BlogID}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("blog")
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}
	post.BlogName = b.Name

	doc := postDoc{Post: post, Reactions: []models.Reaction{}}
	if _, err := r.posts.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return r.GetPostByID(ctx, post.ID, "")
}

func (r *MongoPostsRepository) UpdatePostByID(ctx context.Context, id string, upd models.PostUpdate) error {
	res, err := r.posts.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{
			"title":             upd.Title,
			"short_description": upd.ShortDescription,
			"content":           upd.Content,
		},
	})
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("post")
	}
	return nil
}

func (r *MongoPostsRepository) DeletePostByID(ctx context.Context, id string) error {
	res, err := r.posts.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("post")
	}
	return nil
}

func (r *MongoPostsRepository) SetPostReaction(ctx context.Context, action models.LikeAction, userID, login, postID string, addedAt time.Time) error {
	if action == models.ActionNone {
		// Clearing on a missing post is a no-op.
		if _, err := r.posts.UpdateOne(ctx, bson.M{"id": postID}, bson.M{
			"$pull": bson.M{"reactions": bson.M{"user_id": userID}},
		}); err != nil {
			return fmt.Errorf("clear reaction: %w", err)
		}
		return nil
	}

	// Filter out the user's old reaction and append the new one in a single
	// document write. A user holds at most one reaction per post even when
	// their requests race.
	reaction := models.Reaction{
		PostID:  postID,
		UserID:  userID,
		Action:  action,
		Login:   login,
		AddedAt: addedAt,
	}
	res, err := r.posts.UpdateOne(ctx, bson.M{"id": postID}, replaceReactionPipeline(userID, reaction))
	if err != nil {
		return fmt.Errorf("record reaction: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperr.BadRequest("post does not exist")
	}
	return nil
}

// replaceReactionPipeline builds an aggregation-pipeline update that removes
// the user's existing reaction and appends the new one atomically.
func replaceReactionPipeline(userID string, reaction models.Reaction) bson.A {
	return bson.A{bson.M{
		"$set": bson.M{"reactions": bson.M{"$concatArrays": bson.A{
			bson.M{"$filter": bson.M{
				"input": bson.M{"$ifNull": bson.A{"$reactions", bson.A{}}},
				"as":    "r",
				"cond":  bson.M{"$ne": bson.A{"$$r.user_id", userID}},
			}},
			bson.A{bson.M{"$literal": reaction}},
		}}},
	}}
}
