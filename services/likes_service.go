package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blogs-api/apperr"
	"blogs-api/eventbus"
	"blogs-api/events"
	"blogs-api/logger"
	"blogs-api/models"
	"blogs-api/repositories"
)

// LikesService is the reaction write path: it validates the action, checks
// the acting user still exists, and delegates the replace-or-clear write to
// the repository. Aggregation happens on the next read; nothing is cached.
type LikesService struct {
	posts    repositories.PostsRepository
	comments repositories.CommentsRepository
	users    repositories.UsersRepository
	bus      eventbus.EventBus
	now      func() time.Time
}

func NewLikesService(
	posts repositories.PostsRepository,
	comments repositories.CommentsRepository,
	users repositories.UsersRepository,
	bus eventbus.EventBus,
) *LikesService {
	return &LikesService{
		posts:    posts,
		comments: comments,
		users:    users,
		bus:      bus,
		now:      time.Now,
	}
}

// SetPostReaction applies a raw likeStatus value for (userID, postID).
// The user lookup happens only when a reaction will be recorded; clearing
// needs no identity beyond the id.
func (s *LikesService) SetPostReaction(ctx context.Context, likeStatus, userID, postID string) error {
	action, err := models.ParseLikeAction(likeStatus)
	if err != nil {
		return err
	}

	login, err := s.actingLogin(ctx, action, userID)
	if err != nil {
		return err
	}

	addedAt := s.now()
	if err := s.posts.SetPostReaction(ctx, action, userID, login, postID, addedAt); err != nil {
		return err
	}

	s.publish(ctx, eventbus.TopicReactionEvents, events.PostReactionSet, events.PostReactionSetEvent{
		PostID:  postID,
		UserID:  userID,
		Action:  action,
		AddedAt: addedAt,
	})
	return nil
}

// SetCommentReaction is the comment variant of SetPostReaction.
func (s *LikesService) SetCommentReaction(ctx context.Context, likeStatus, userID, commentID string) error {
	action, err := models.ParseLikeAction(likeStatus)
	if err != nil {
		return err
	}

	login, err := s.actingLogin(ctx, action, userID)
	if err != nil {
		return err
	}

	addedAt := s.now()
	if err := s.comments.SetCommentReaction(ctx, action, userID, login, commentID, addedAt); err != nil {
		return err
	}

	s.publish(ctx, eventbus.TopicReactionEvents, events.CommentReactionSet, events.CommentReactionSetEvent{
		CommentID: commentID,
		UserID:    userID,
		Action:    action,
		AddedAt:   addedAt,
	})
	return nil
}

// actingLogin resolves the acting user's login snapshot for a reaction that
// will be stored.
func (s *LikesService) actingLogin(ctx context.Context, action models.LikeAction, userID string) (string, error) {
	if action == models.ActionNone {
		return "", nil
	}
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", fmt.Errorf("user from credential not found: %w", apperr.ErrNotFound)
		}
		return "", err
	}
	return user.Login, nil
}

func (s *LikesService) publish(ctx context.Context, topic eventbus.Topic, eventType string, payload any) {
	ev, err := eventbus.NewEvent(eventType, payload)
	if err != nil {
		logger.Log.Errorf("build %s event: %v", eventType, err)
		return
	}
	if err := s.bus.Publish(ctx, topic, ev); err != nil {
		logger.Log.Errorf("publish %s event: %v", eventType, err)
	}
}
