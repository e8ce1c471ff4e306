package service

import (
	"context"

	"blogger/internal/apperrors"
	"blogger/internal/model"
	"blogger/internal/repository"
)

// Content owns posts and comments, their ownership rules and the
// post-to-comment cascade.
type Content struct {
	posts    repository.Posts
	comments repository.Comments
}

func NewContent(posts repository.Posts, comments repository.Comments) *Content {
	return &Content{
		posts:    posts,
		comments: comments,
	}
}

// authorizeOwner gates every mutation of an owned resource. Any mismatch
// between the resource owner and the acting user is a hard deny.
func authorizeOwner(ownerID int64, actor *model.User) error {
	if actor == nil || actor.ID != ownerID {
		return apperrors.New(apperrors.CodeForbidden, "access denied")
	}
	return nil
}

// CreatePost persists a post owned by the acting user. The owner is taken
// from the authenticated actor, never from the request body.
func (s *Content) CreatePost(ctx context.Context, actor *model.User, title, content string) (*model.Post, error) {
	if err := requireFields(
		field{"title", title},
		field{"content", content},
	); err != nil {
		return nil, err
	}
	post, err := s.posts.CreatePost(ctx, actor.ID, title, content)
	if err != nil {
		return nil, err
	}
	post.Author = actor.Username
	return post, nil
}

func (s *Content) ListPosts(ctx context.Context) ([]model.Post, error) {
	return s.posts.Posts(ctx)
}

// GetPost returns the post together with its comments, oldest first.
func (s *Content) GetPost(ctx context.Context, id int64) (*model.Post, error) {
	post, err := s.posts.PostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.CommentsByPost(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Comments = comments
	return post, nil
}

func (s *Content) UpdatePost(ctx context.Context, actor *model.User, id int64, title, content string) (*model.Post, error) {
	post, err := s.posts.PostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(post.UserID, actor); err != nil {
		return nil, err
	}
	if err := requireFields(
		field{"title", title},
		field{"content", content},
	); err != nil {
		return nil, err
	}
	updated, err := s.posts.UpdatePost(ctx, id, title, content)
	if err != nil {
		return nil, err
	}
	updated.Author = post.Author
	return updated, nil
}

// DeletePost removes the post and all of its comments. The repository
// performs both deletes in one transaction so no comment can outlive its
// post.
func (s *Content) DeletePost(ctx context.Context, actor *model.User, id int64) error {
	post, err := s.posts.PostByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeOwner(post.UserID, actor); err != nil {
		return err
	}
	return s.posts.DeletePost(ctx, id)
}

// CreateComment persists a comment against an existing post.
func (s *Content) CreateComment(ctx context.Context, actor *model.User, postID int64, content string) (*model.Comment, error) {
	if _, err := s.posts.PostByID(ctx, postID); err != nil {
		return nil, err
	}
	if err := requireFields(field{"content", content}); err != nil {
		return nil, err
	}
	comment, err := s.comments.CreateComment(ctx, postID, actor.ID, content)
	if err != nil {
		return nil, err
	}
	comment.Author = actor.Username
	return comment, nil
}

func (s *Content) CommentsForPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	if _, err := s.posts.PostByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.comments.CommentsByPost(ctx, postID)
}

// GetComment resolves a comment within its post; a comment id that exists
// under a different post is reported as absent.
func (s *Content) GetComment(ctx context.Context, postID, id int64) (*model.Comment, error) {
	if _, err := s.posts.PostByID(ctx, postID); err != nil {
		return nil, err
	}
	comment, err := s.comments.CommentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.PostID != postID {
		return nil, apperrors.New(apperrors.CodeNotFound, "comment not found")
	}
	return comment, nil
}

func (s *Content) UpdateComment(ctx context.Context, actor *model.User, postID, id int64, content string) (*model.Comment, error) {
	comment, err := s.GetComment(ctx, postID, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(comment.UserID, actor); err != nil {
		return nil, err
	}
	if err := requireFields(field{"content", content}); err != nil {
		return nil, err
	}
	updated, err := s.comments.UpdateComment(ctx, id, content)
	if err != nil {
		return nil, err
	}
	updated.Author = comment.Author
	return updated, nil
}

func (s *Content) DeleteComment(ctx context.Context, actor *model.User, postID, id int64) error {
	comment, err := s.GetComment(ctx, postID, id)
	if err != nil {
		return err
	}
	if err := authorizeOwner(comment.UserID, actor); err != nil {
		return err
	}
	return s.comments.DeleteComment(ctx, id)
}
