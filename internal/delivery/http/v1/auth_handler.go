package v1

import (
	"net/http"

	"go-candidate-backend/internal/delivery/http/response"
	"go-candidate-backend/internal/domain"
	"go-candidate-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	public.POST("/token", handler.Token)

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
	}
}

// TokenRequest is the OAuth2 password-grant form body.
type TokenRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Token godoc
// @Summary      Issue access token
// @Description  Exchange email and password for a bearer token
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "User email"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  TokenResponse
// @Failure      401  {object}  response.Response
// @Router       /token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	token, err := h.authUC.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Header("WWW-Authenticate", "Bearer")
		c.Error(err)
		return
	}

	// Raw OAuth2-style body, not the response envelope
	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me godoc
// @Summary      Current user
// @Description  Return the account resolved from the bearer token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	email := c.GetString(string(domain.KeyUserEmail))

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), email)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Current user", user)
}
