package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validator "github.com/go-playground/validator/v10"

	"github.com/natylliB/forum-api/domain"
	"github.com/natylliB/forum-api/internal/rest/request"
)

// UserHandler  represent the httphandler for user accounts
type UserHandler struct {
	Service domain.UserUsecase
}

func NewUserHandler(svc domain.UserUsecase) *UserHandler {
	return &UserHandler{
		Service: svc,
	}
}

func isRequestValid(m any) (bool, error) {
	validate := validator.New()
	err := validate.Struct(m)
	if err != nil {
		return false, err
	}
	return true, nil
}

// Register will create a new user account by given request body
func (h *UserHandler) Register(c *gin.Context) {
	var req request.Register
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: err.Error()})
		return
	}
	if ok, err := isRequestValid(&req); !ok {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	id, err := h.Service.Register(c.Request.Context(), req.Username, req.Fullname, req.Password)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: translateError(err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       id,
		"username": req.Username,
		"fullname": req.Fullname,
	})
}

// Login will verify credentials and hand out a token
func (h *UserHandler) Login(c *gin.Context) {
	var req request.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: err.Error()})
		return
	}
	if ok, err := isRequestValid(&req); !ok {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	token, err := h.Service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: translateError(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}
