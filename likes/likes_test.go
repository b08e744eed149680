package likes_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogs-api/likes"
	"blogs-api/models"
)

func reaction(userID, login string, action models.LikeAction, at time.Time) models.Reaction {
	return models.Reaction{PostID: "p1", UserID: userID, Login: login, Action: action, AddedAt: at}
}

func TestAggregateEmpty(t *testing.T) {
	info := likes.Aggregate(nil, "userA")
	assert.Equal(t, 0, info.LikesCount)
	assert.Equal(t, 0, info.DislikesCount)
	assert.Equal(t, models.ActionNone, info.MyStatus)
	assert.NotNil(t, info.NewestLikes)
	assert.Empty(t, info.NewestLikes)
}

func TestAggregateCountsAndMyStatus(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	reactions := []models.Reaction{
		reaction("userA", "alice", models.ActionLike, base),
		reaction("userB", "bob", models.ActionDislike, base.Add(time.Minute)),
		reaction("userC", "carol", models.ActionLike, base.Add(2*time.Minute)),
	}

	tests := []struct {
		name   string
		viewer string
		want   models.LikeAction
	}{
		{"liker sees own like", "userA", models.ActionLike},
		{"disliker sees own dislike", "userB", models.ActionDislike},
		{"non-reactor sees none", "userZ", models.ActionNone},
		{"anonymous sees none", "", models.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := likes.Aggregate(reactions, tt.viewer)
			assert.Equal(t, 2, info.LikesCount)
			assert.Equal(t, 1, info.DislikesCount)
			assert.Equal(t, tt.want, info.MyStatus)
		})
	}
}

func TestNewestLikesOrderAndBound(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	reactions := []models.Reaction{
		reaction("userA", "alice", models.ActionLike, base),
		reaction("userB", "bob", models.ActionLike, base.Add(time.Minute)),
		reaction("userX", "xavier", models.ActionDislike, base.Add(90*time.Second)),
		reaction("userC", "carol", models.ActionLike, base.Add(2*time.Minute)),
		reaction("userD", "dave", models.ActionLike, base.Add(3*time.Minute)),
	}

	info := likes.Aggregate(reactions, "")
	require.Len(t, info.NewestLikes, 3)
	assert.Equal(t, "dave", info.NewestLikes[0].Login)
	assert.Equal(t, "carol", info.NewestLikes[1].Login)
	assert.Equal(t, "bob", info.NewestLikes[2].Login)
	// dislikes never appear in the newest list
	for _, nl := range info.NewestLikes {
		assert.NotEqual(t, "xavier", nl.Login)
	}
}

func TestNewestLikesTimestampTies(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	reactions := []models.Reaction{
		reaction("userA", "alice", models.ActionLike, at),
		reaction("userB", "bob", models.ActionLike, at),
		reaction("userC", "carol", models.ActionLike, at),
	}

	// identical timestamps resolve to the later-recorded reaction first
	info := likes.Aggregate(reactions, "")
	require.Len(t, info.NewestLikes, 3)
	assert.Equal(t, "carol", info.NewestLikes[0].Login)
	assert.Equal(t, "bob", info.NewestLikes[1].Login)
	assert.Equal(t, "alice", info.NewestLikes[2].Login)
}

func TestNewestLikesProjection(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	info := likes.Aggregate([]models.Reaction{
		reaction("userA", "alice", models.ActionLike, at),
	}, "")
	require.Len(t, info.NewestLikes, 1)
	assert.Equal(t, models.NewestLike{AddedAt: at, UserID: "userA", Login: "alice"}, info.NewestLikes[0])
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	reactions := []models.Reaction{
		reaction("userA", "alice", models.ActionLike, base.Add(time.Minute)),
		reaction("userB", "bob", models.ActionLike, base),
	}
	likes.Aggregate(reactions, "userA")
	assert.Equal(t, "userA", reactions[0].UserID)
	assert.Equal(t, "userB", reactions[1].UserID)
}

func TestAggregateStatus(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	reactions := []models.Reaction{
		reaction("userA", "alice", models.ActionLike, base),
		reaction("userB", "bob", models.ActionDislike, base),
	}

	info := likes.AggregateStatus(reactions, "userB")
	assert.Equal(t, 1, info.LikesCount)
	assert.Equal(t, 1, info.DislikesCount)
	assert.Equal(t, models.ActionDislike, info.MyStatus)

	anon := likes.AggregateStatus(reactions, "")
	assert.Equal(t, models.ActionNone, anon.MyStatus)
}

func TestZero(t *testing.T) {
	z := likes.Zero()
	assert.Equal(t, models.ActionNone, z.MyStatus)
	assert.NotNil(t, z.NewestLikes)
	assert.Empty(t, z.NewestLikes)

	zs := likes.ZeroStatus()
	assert.Equal(t, models.ActionNone, zs.MyStatus)
}
