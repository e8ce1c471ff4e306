package repository

import (
	"context"

	"blogger/internal/model"
)

// Users is the credential store: user lookup and creation. Uniqueness of
// username and email is guaranteed at the storage layer.
type Users interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (*model.User, error)
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	UserByUsername(ctx context.Context, username string) (*model.User, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
}

// Posts owns the Post entity and its association to User.
type Posts interface {
	CreatePost(ctx context.Context, userID int64, title, content string) (*model.Post, error)
	Posts(ctx context.Context) ([]model.Post, error)
	PostByID(ctx context.Context, id int64) (*model.Post, error)
	UpdatePost(ctx context.Context, id int64, title, content string) (*model.Post, error)
	// DeletePost removes the post and every comment referencing it in a
	// single transaction.
	DeletePost(ctx context.Context, id int64) error
}

// Comments owns the Comment entity and its associations to Post and User.
type Comments interface {
	CreateComment(ctx context.Context, postID, userID int64, content string) (*model.Comment, error)
	CommentsByPost(ctx context.Context, postID int64) ([]model.Comment, error)
	CommentByID(ctx context.Context, id int64) (*model.Comment, error)
	UpdateComment(ctx context.Context, id int64, content string) (*model.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}
