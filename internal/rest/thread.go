package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/natylliB/forum-api/domain"
	"github.com/natylliB/forum-api/internal/rest/request"
	"github.com/natylliB/forum-api/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// ThreadHandler  represent the httphandler for thread
type ThreadHandler struct {
	Service domain.ThreadUsecase
}

func NewThreadHandler(svc domain.ThreadUsecase) *ThreadHandler {
	return &ThreadHandler{
		Service: svc,
	}
}

// Store will store the thread by given request body
func (h *ThreadHandler) Store(c *gin.Context) {
	var req request.Thread
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "User not authenticated"})
		return
	}

	added, err := h.Service.Store(c.Request.Context(), req.ToPayload(userID.(string), time.Now()))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: translateError(err)})
		return
	}

	c.JSON(http.StatusCreated, added)
}

// GetByID will get the thread detail by given id
func (h *ThreadHandler) GetByID(c *gin.Context) {
	threadID := c.Param("threadId")

	thread, err := h.Service.GetDetail(c.Request.Context(), threadID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: translateError(err)})
		return
	}

	c.JSON(http.StatusOK, response.NewThreadFromDomain(&thread))
}
