// Package likes computes the derived likes view of posts and comments from
// stored reactions. All functions are pure: they read a reaction slice and
// never touch a store, so both storage backends share one aggregation path.
package likes

import (
	"sort"

	"blogs-api/models"
)

// NewestLikesLimit bounds the newestLikes projection.
const NewestLikesLimit = 3

// Zero returns the empty likes view for a post with no reactions.
func Zero() models.ExtendedLikesInfo {
	return models.ExtendedLikesInfo{
		MyStatus:    models.ActionNone,
		NewestLikes: []models.NewestLike{},
	}
}

// ZeroStatus returns the empty likes view for a comment.
func ZeroStatus() models.LikesInfo {
	return models.LikesInfo{MyStatus: models.ActionNone}
}

// Aggregate computes the extended likes view for one post from its
// reactions. userID is the requesting user; empty means anonymous and
// yields myStatus None. The input slice is expected to hold at most one
// reaction per user in insertion order; it is not modified.
func Aggregate(reactions []models.Reaction, userID string) models.ExtendedLikesInfo {
	info := Zero()
	for _, r := range reactions {
		switch r.Action {
		case models.ActionLike:
			info.LikesCount++
		case models.ActionDislike:
			info.DislikesCount++
		}
		if userID != "" && r.UserID == userID {
			info.MyStatus = r.Action
		}
	}
	info.NewestLikes = newestLikes(reactions)
	return info
}

// AggregateStatus is the comment variant: counts and own status only.
func AggregateStatus(reactions []models.Reaction, userID string) models.LikesInfo {
	info := ZeroStatus()
	for _, r := range reactions {
		switch r.Action {
		case models.ActionLike:
			info.LikesCount++
		case models.ActionDislike:
			info.DislikesCount++
		}
		if userID != "" && r.UserID == userID {
			info.MyStatus = r.Action
		}
	}
	return info
}

// newestLikes picks the most recent Like reactions, newest first, capped at
// NewestLikesLimit. Timestamp ties resolve to the later-recorded reaction
// first, so rapid writes still order deterministically.
func newestLikes(reactions []models.Reaction) []models.NewestLike {
	recent := make([]models.Reaction, 0, len(reactions))
	for i := len(reactions) - 1; i >= 0; i-- {
		if reactions[i].Action == models.ActionLike {
			recent = append(recent, reactions[i])
		}
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].AddedAt.After(recent[j].AddedAt)
	})
	if len(recent) > NewestLikesLimit {
		recent = recent[:NewestLikesLimit]
	}
	out := make([]models.NewestLike, 0, len(recent))
	for _, r := range recent {
		out = append(out, models.NewestLike{AddedAt: r.AddedAt, UserID: r.UserID, Login: r.Login})
	}
	return out
}
