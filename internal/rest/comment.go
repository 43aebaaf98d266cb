package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/natylliB/forum-api/domain"
	"github.com/natylliB/forum-api/internal/rest/request"
)

// CommentHandler  represent the httphandler for comment
type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

// Store will store the comment under the thread of the route
func (h *CommentHandler) Store(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}

	threadID := c.Param("threadId")
	added, err := h.Service.Store(c.Request.Context(), threadID, req.ToPayload(userID.(string), time.Now()))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: translateError(err)})
		return
	}

	c.JSON(http.StatusCreated, added)
}

// Delete will soft-delete the comment of the route
func (h *CommentHandler) Delete(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}

	threadID := c.Param("threadId")
	commentID := c.Param("commentId")
	if err := h.Service.Delete(c.Request.Context(), threadID, commentID, userID.(string)); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: translateError(err)})
		return
	}

	c.Status(http.StatusNoContent)
}
