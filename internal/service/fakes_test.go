package service

import (
	"context"
	"sort"
	"time"

	"blogger/internal/apperrors"
	"blogger/internal/model"
)

// memStore is an in-memory stand-in for the postgres repository,
// implementing all three repository interfaces.
type memStore struct {
	users    map[int64]*model.User
	posts    map[int64]*model.Post
	comments map[int64]*model.Comment

	userSeq    int64
	postSeq    int64
	commentSeq int64

	clock time.Time
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[int64]*model.User{},
		posts:    map[int64]*model.Post{},
		comments: map[int64]*model.Comment{},
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memStore) username(id int64) string {
	if u, ok := m.users[id]; ok {
		return u.Username
	}
	return ""
}

func (m *memStore) CreateUser(_ context.Context, username, email, passwordHash string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email || u.Username == username {
			return nil, apperrors.New(apperrors.CodeConflict, "duplicate value")
		}
	}
	m.userSeq++
	user := &model.User{
		ID:           m.userSeq,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    m.tick(),
	}
	m.users[user.ID] = user
	copied := *user
	return &copied, nil
}

func (m *memStore) UserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.New(apperrors.CodeNotFound, "user not found")
}

func (m *memStore) UserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.New(apperrors.CodeNotFound, "user not found")
}

func (m *memStore) UserByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, "user not found")
	}
	copied := *u
	return &copied, nil
}

func (m *memStore) CreatePost(_ context.Context, userID int64, title, content string) (*model.Post, error) {
	m.postSeq++
	now := m.tick()
	post := &model.Post{
		ID:        m.postSeq,
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.posts[post.ID] = post
	copied := *post
	return &copied, nil
}

func (m *memStore) Posts(_ context.Context) ([]model.Post, error) {
	posts := []model.Post{}
	for _, p := range m.posts {
		copied := *p
		copied.Author = m.username(p.UserID)
		posts = append(posts, copied)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

func (m *memStore) PostByID(_ context.Context, id int64) (*model.Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, "post not found")
	}
	copied := *p
	copied.Author = m.username(p.UserID)
	return &copied, nil
}

func (m *memStore) UpdatePost(_ context.Context, id int64, title, content string) (*model.Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, "post not found")
	}
	p.Title = title
	p.Content = content
	p.UpdatedAt = m.tick()
	copied := *p
	return &copied, nil
}

func (m *memStore) DeletePost(_ context.Context, id int64) error {
	if _, ok := m.posts[id]; !ok {
		return apperrors.New(apperrors.CodeNotFound, "post not found")
	}
	for cid, c := range m.comments {
		if c.PostID == id {
			delete(m.comments, cid)
		}
	}
	delete(m.posts, id)
	return nil
}

func (m *memStore) CreateComment(_ context.Context, postID, userID int64, content string) (*model.Comment, error) {
	m.commentSeq++
	now := m.tick()
	comment := &model.Comment{
		ID:        m.commentSeq,
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.comments[comment.ID] = comment
	copied := *comment
	return &copied, nil
}

func (m *memStore) CommentsByPost(_ context.Context, postID int64) ([]model.Comment, error) {
	comments := []model.Comment{}
	for _, c := range m.comments {
		if c.PostID == postID {
			copied := *c
			copied.Author = m.username(c.UserID)
			comments = append(comments, copied)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}

func (m *memStore) CommentByID(_ context.Context, id int64) (*model.Comment, error) {
	c, ok := m.comments[id]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, "comment not found")
	}
	copied := *c
	copied.Author = m.username(c.UserID)
	return &copied, nil
}

func (m *memStore) UpdateComment(_ context.Context, id int64, content string) (*model.Comment, error) {
	c, ok := m.comments[id]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, "comment not found")
	}
	c.Content = content
	c.UpdatedAt = m.tick()
	copied := *c
	return &copied, nil
}

func (m *memStore) DeleteComment(_ context.Context, id int64) error {
	if _, ok := m.comments[id]; !ok {
		return apperrors.New(apperrors.CodeNotFound, "comment not found")
	}
	delete(m.comments, id)
	return nil
}

// memRevoker records revocations in memory.
type memRevoker struct {
	revoked map[string]bool
}

func newMemRevoker() *memRevoker {
	return &memRevoker{revoked: map[string]bool{}}
}

func (r *memRevoker) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	r.revoked[tokenID] = true
	return nil
}

func (r *memRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return r.revoked[tokenID], nil
}
