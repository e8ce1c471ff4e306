package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogger/internal/apperrors"
)

type postRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func pathID(c *gin.Context, name, entity string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.New(apperrors.CodeNotFound, entity+" not found")
	}
	return id, nil
}

func (h *Handler) listPosts(c *gin.Context) {
	posts, err := h.content.ListPosts(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *Handler) createPost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderError(c, apperrors.Wrap(apperrors.CodeValidation, "invalid request body", err))
		return
	}

	post, err := h.content.CreatePost(c.Request.Context(), currentUser(c), req.Title, req.Content)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Post created",
		"post":    post,
	})
}

func (h *Handler) getPost(c *gin.Context) {
	id, err := pathID(c, "id", "post")
	if err != nil {
		renderError(c, err)
		return
	}

	post, err := h.content.GetPost(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

func (h *Handler) updatePost(c *gin.Context) {
	id, err := pathID(c, "id", "post")
	if err != nil {
		renderError(c, err)
		return
	}

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderError(c, apperrors.Wrap(apperrors.CodeValidation, "invalid request body", err))
		return
	}

	post, err := h.content.UpdatePost(c.Request.Context(), currentUser(c), id, req.Title, req.Content)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Post updated",
		"post":    post,
	})
}

func (h *Handler) deletePost(c *gin.Context) {
	id, err := pathID(c, "id", "post")
	if err != nil {
		renderError(c, err)
		return
	}

	if err := h.content.DeletePost(c.Request.Context(), currentUser(c), id); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post and associated comments deleted"})
}
