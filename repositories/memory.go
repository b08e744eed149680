package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"blogs-api/apperr"
	"blogs-api/likes"
	"blogs-api/models"
	"blogs-api/pagination"
)

// Memory is an in-process backend implementing every repository contract.
// It keeps reactions per post in insertion order, the same shape the mongo
// backend embeds and the sql backend reconstructs, and is what the shared
// conformance suite runs against by default.
type Memory struct {
	mu        sync.Mutex
	posts     map[string]*memPost
	blogs     map[string]models.Blog
	users     map[string]models.User
	comments  map[string]*memComment
	postSeq   []string
	commentID []string
}

type memPost struct {
	post      models.Post
	reactions []models.Reaction
}

type memComment struct {
	comment   models.Comment
	reactions []models.Reaction
}

func NewMemory() *Memory {
	return &Memory{
		posts:    make(map[string]*memPost),
		blogs:    make(map[string]models.Blog),
		users:    make(map[string]models.User),
		comments: make(map[string]*memComment),
	}
}

func (m *Memory) ListPosts(ctx context.Context, params pagination.Params, blogID, userID string) (pagination.Page[models.PostWithLikes], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	params = params.Normalize()

	matched := make([]*memPost, 0, len(m.posts))
	for _, id := range m.postSeq {
		p, ok := m.posts[id]
		if !ok {
			continue
		}
		if !pagination.MatchesTerm(p.post.Title, params.SearchNameTerm) {
			continue
		}
		if blogID != "" && p.post.BlogID != blogID {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].post.Title != matched[j].post.Title {
			return matched[i].post.Title > matched[j].post.Title
		}
		return matched[i].post.ID > matched[j].post.ID
	})

	total := len(matched)
	lo := params.Skip()
	if lo > total {
		lo = total
	}
	hi := lo + params.PageSize
	if hi > total {
		hi = total
	}

	items := make([]models.PostWithLikes, 0, hi-lo)
	for _, p := range matched[lo:hi] {
		items = append(items, m.postView(p, userID))
	}
	return pagination.NewPage(params, total, items), nil
}

func (m *Memory) postView(p *memPost, userID string) models.PostWithLikes {
	post := p.post
	if b, ok := m.blogs[post.BlogID]; ok {
		post.BlogName = b.Name
	}
	return models.PostWithLikes{
		Post:              post,
		ExtendedLikesInfo: likes.Aggregate(p.reactions, userID),
	}
}

func (m *Memory) GetPostByID(ctx context.Context, id, userID string) (*models.PostWithLikes, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[id]
	if !ok {
		return nil, apperr.NotFound("post")
	}
	if _, ok := m.blogs[p.post.BlogID]; !ok {
		return nil, apperr.NotFound("blog")
	}
	v := m.postView(p, userID)
	return &v, nil
}

func (m *Memory) CreatePost(ctx context.Context, post models.Post) (*models.PostWithLikes, error) {
	m.mu.Lock()
	b, ok := m.blogs[post.BlogID]
	if !ok {
		m.mu.Unlock()
		return nil, apperr.NotFound("blog")
	}
	post.BlogName = b.Name
	m.posts[post.ID] = &memPost{post: post, reactions: []models.Reaction{}}
	m.postSeq = append(m.postSeq, post.ID)
	m.mu.Unlock()
	return m.GetPostByID(ctx, post.ID, "")
}

func (m *Memory) UpdatePostByID(ctx context.Context, id string, upd models.PostUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[id]
	if !ok {
		return apperr.NotFound("post")
	}
	p.post.Title = upd.Title
	p.post.ShortDescription = upd.ShortDescription
	p.post.Content = upd.Content
	return nil
}

func (m *Memory) DeletePostByID(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.posts[id]; !ok {
		return apperr.NotFound("post")
	}
	delete(m.posts, id)
	return nil
}

func (m *Memory) SetPostReaction(ctx context.Context, action models.LikeAction, userID, login, postID string, addedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[postID]
	if ok {
		p.reactions = removeUserReaction(p.reactions, userID)
	}
	if action == models.ActionNone {
		return nil
	}
	if !ok {
		return apperr.BadRequest("post does not exist")
	}
	p.reactions = append(p.reactions, models.Reaction{
		PostID:  postID,
		UserID:  userID,
		Action:  action,
		Login:   login,
		AddedAt: addedAt,
	})
	return nil
}

func removeUserReaction(reactions []models.Reaction, userID string) []models.Reaction {
	out := reactions[:0]
	for _, r := range reactions {
		if r.UserID != userID {
			out = append(out, r)
		}
	}
	return out
}

func (m *Memory) ListBlogs(ctx context.Context, params pagination.Params) (pagination.Page[models.Blog], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	params = params.Normalize()

	matched := make([]models.Blog, 0, len(m.blogs))
	for _, b := range m.blogs {
		if pagination.MatchesTerm(b.Name, params.SearchNameTerm) {
			matched = append(matched, b)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Name != matched[j].Name {
			return matched[i].Name > matched[j].Name
		}
		return matched[i].ID > matched[j].ID
	})

	total := len(matched)
	lo := params.Skip()
	if lo > total {
		lo = total
	}
	hi := lo + params.PageSize
	if hi > total {
		hi = total
	}
	return pagination.NewPage(params, total, matched[lo:hi]), nil
}

func (m *Memory) GetBlogByID(ctx context.Context, id string) (*models.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.blogs[id]
	if !ok {
		return nil, apperr.NotFound("blog")
	}
	return &b, nil
}

func (m *Memory) CreateBlog(ctx context.Context, blog models.Blog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blogs[blog.ID] = blog
	return nil
}

func (m *Memory) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, apperr.NotFound("user")
	}
	return &u, nil
}

func (m *Memory) CreateUser(ctx context.Context, user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	return nil
}

func (m *Memory) GetCommentByID(ctx context.Context, id, userID string) (*models.CommentWithLikes, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.comments[id]
	if !ok {
		return nil, apperr.NotFound("comment")
	}
	return &models.CommentWithLikes{
		Comment:   c.comment,
		LikesInfo: likes.AggregateStatus(c.reactions, userID),
	}, nil
}

func (m *Memory) CreateComment(ctx context.Context, comment models.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.comments[comment.ID] = &memComment{comment: comment, reactions: []models.Reaction{}}
	m.commentID = append(m.commentID, comment.ID)
	return nil
}

func (m *Memory) SetCommentReaction(ctx context.Context, action models.LikeAction, userID, login, commentID string, addedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.comments[commentID]
	if ok {
		c.reactions = removeUserReaction(c.reactions, userID)
	}
	if action == models.ActionNone {
		return nil
	}
	if !ok {
		return apperr.BadRequest("comment does not exist")
	}
	c.reactions = append(c.reactions, models.Reaction{
		PostID:  commentID,
		UserID:  userID,
		Action:  action,
		Login:   login,
		AddedAt: addedAt,
	})
	return nil
}
