package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogger/internal/apperrors"
)

type commentRequest struct {
	Content string `json:"content"`
}

func (h *Handler) listComments(c *gin.Context) {
	postID, err := pathID(c, "id", "post")
	if err != nil {
		renderError(c, err)
		return
	}

	comments, err := h.content.CommentsForPost(c.Request.Context(), postID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (h *Handler) createComment(c *gin.Context) {
	postID, err := pathID(c, "id", "post")
	if err != nil {
		renderError(c, err)
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderError(c, apperrors.Wrap(apperrors.CodeValidation, "invalid request body", err))
		return
	}

	comment, err := h.content.CreateComment(c.Request.Context(), currentUser(c), postID, req.Content)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment created",
		"comment": comment,
	})
}

func (h *Handler) getComment(c *gin.Context) {
	postID, err := pathID(c, "id", "post")
	if err != nil {
		renderError(c, err)
		return
	}
	commentID, err := pathID(c, "cid", "comment")
	if err != nil {
		renderError(c, err)
		return
	}

	comment, err := h.content.GetComment(c.Request.Context(), postID, commentID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

func (h *Handler) updateComment(c *gin.Context) {
	postID, err := pathID(c, "id", "post")
	if err != nil {
		renderError(c, err)
		return
	}
	commentID, err := pathID(c, "cid", "comment")
	if err != nil {
		renderError(c, err)
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderError(c, apperrors.Wrap(apperrors.CodeValidation, "invalid request body", err))
		return
	}

	comment, err := h.content.UpdateComment(c.Request.Context(), currentUser(c), postID, commentID, req.Content)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Comment updated",
		"comment": comment,
	})
}

func (h *Handler) deleteComment(c *gin.Context) {
	postID, err := pathID(c, "id", "post")
	if err != nil {
		renderError(c, err)
		return
	}
	commentID, err := pathID(c, "cid", "comment")
	if err != nil {
		renderError(c, err)
		return
	}

	if err := h.content.DeleteComment(c.Request.Context(), currentUser(c), postID, commentID); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
