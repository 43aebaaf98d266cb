package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/natylliB/forum-api/domain"
)

// LikeHandler  represent the httphandler for comment likes
type LikeHandler struct {
	Service domain.CommentLikeUsecase
}

func NewLikeHandler(svc domain.CommentLikeUsecase) *LikeHandler {
	return &LikeHandler{
		Service: svc,
	}
}

// Toggle likes the comment of the route for the caller, or unlikes it
// when the caller already liked it
func (h *LikeHandler) Toggle(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}

	err := h.Service.Toggle(c.Request.Context(), domain.CommentLikePayload{
		ThreadID:  c.Param("threadId"),
		CommentID: c.Param("commentId"),
		UserID:    userID,
	})
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: translateError(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
