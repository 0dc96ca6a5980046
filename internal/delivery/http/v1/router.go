package v1

import (
	"net/http"

	"go-candidate-backend/config"
	"go-candidate-backend/internal/delivery/http/middleware"
	"go-candidate-backend/internal/delivery/http/response"
	"go-candidate-backend/internal/domain"
	"go-candidate-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	UserUC       domain.UserUsecase
	CandidateUC  domain.CandidateUsecase
	TokenManager *auth.TokenManager
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	public := r.Group("")

	// Health Check
	public.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "App is running!", nil)
	})

	// Swagger
	public.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenManager, deps.AuthUC))
	{
		NewAuthHandler(public, protected, deps.AuthUC)
		NewUserHandler(public, deps.UserUC)
		NewCandidateHandler(protected, deps.CandidateUC)
	}

	return r
}
