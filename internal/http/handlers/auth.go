package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/blogbridge-backend/internal/http/response"
	"github.com/yungbote/blogbridge-backend/internal/platform/messages"
	"github.com/yungbote/blogbridge-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (ah *AuthHandler) Signup(c *gin.Context) {
	var req struct {
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required"`
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, response.BindError(err))
		return
	}
	user, err := ah.authService.Signup(requestDBC(c), services.SignupInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, http.StatusCreated, messages.RecordCreated, user.Public())
}

func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, response.BindError(err))
		return
	}
	pair, err := ah.authService.Login(requestDBC(c), req.Email, req.Password)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, http.StatusOK, messages.LoginSuccess, pair)
}

func (ah *AuthHandler) Logout(c *gin.Context) {
	if err := ah.authService.Logout(requestDBC(c), currentToken(c)); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, http.StatusOK, messages.LogoutSuccess, nil)
}

func (ah *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `form:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, response.BindError(err))
		return
	}
	pair, err := ah.authService.Refresh(requestDBC(c), currentUser(c), currentToken(c), req.RefreshToken)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, http.StatusOK, messages.TokenRefreshed, pair)
}
