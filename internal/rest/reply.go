package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/natylliB/forum-api/domain"
	"github.com/natylliB/forum-api/internal/rest/request"
)

// ReplyHandler  represent the httphandler for reply
type ReplyHandler struct {
	Service domain.ReplyUsecase
}

func NewReplyHandler(svc domain.ReplyUsecase) *ReplyHandler {
	return &ReplyHandler{
		Service: svc,
	}
}

// Store will store the reply under the comment of the route
func (h *ReplyHandler) Store(c *gin.Context) {
	var req request.Reply
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
	commentID := c.Param("commentId")
	added, err := h.Service.Store(c.Request.Context(), threadID, commentID, req.ToPayload(userID.(string), time.Now()))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: translateError(err)})
		return
	}

	c.JSON(http.StatusCreated, added)
}

// Delete will soft-delete the reply of the route
func (h *ReplyHandler) Delete(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}

	threadID := c.Param("threadId")
	commentID := c.Param("commentId")
	replyID := c.Param("replyId")
	if err := h.Service.Delete(c.Request.Context(), threadID, commentID, replyID, userID.(string)); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: translateError(err)})
		return
	}

	c.Status(http.StatusNoContent)
}
