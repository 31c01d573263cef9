package endpoints

import (
	"freightflow"
	"freightflow/internal/api/handler/mapper"
	"freightflow/internal/api/handler/middleware"
	"freightflow/internal/api/handler/request"
	"freightflow/internal/api/handler/response"
	"freightflow/internal/api/models"
	"freightflow/internal/api/service"
	"freightflow/pkg"
	"net/http"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type authHandler struct {
	userService *service.UserService
	logger      zerolog.Logger
	config      freightflow.AppConfig
}

func newAuthHandler() *authHandler {
	return &authHandler{
		userService: service.NewUserService(),
		logger:      freightflow.Logger,
		config:      freightflow.GetConfig(),
	}
}

func AuthHandler(router *graceful.Graceful) {
	h := newAuthHandler()

	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/login", h.login)
	}

	protected := router.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware(h.config))
	{
		protected.GET("/me", h.getMe)
	}

	users := router.Group("/api/v1/users")
	users.Use(middleware.AuthMiddleware(h.config))
	users.Use(middleware.RequireRole(models.RoleAdmin))
	{
		users.GET("", h.listUsers)
		users.POST("", h.createUser)
		users.DELETE("/:id", h.deleteUser)
	}
}

func (slf *authHandler) login(c *gin.Context) {
	var loginDTO request.LoginDTO
	err := pkg.ParseAndValidate(c, &loginDTO)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error parsing and validating login DTO")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	user, token, err := slf.userService.Login(loginDTO.Username, loginDTO.Password)
	if err != nil {
		slf.logger.Warn().Err(err).Str("username", loginDTO.Username).Msg("Login failed")
		c.JSON(http.StatusUnauthorized, response.APIError{Message: "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, response.AuthResponse{
		Token: token,
		User:  mapper.ToUserResponse(*user),
	})
}

func (slf *authHandler) getMe(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	user, err := slf.userService.GetByID(userID)
	if err != nil {
		slf.logger.Error().Err(err).Uint("userId", userID).Msg("Error getting user")
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserResponse(*user))
}

func (slf *authHandler) listUsers(c *gin.Context) {
	users, err := slf.userService.GetAll()
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error listing users")
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToUserResponses(users))
}

func (slf *authHandler) createUser(c *gin.Context) {
	var dto request.CreateUserDTO
	if err := pkg.ParseAndValidate(c, &dto); err != nil {
		slf.logger.Error().Err(err).Msg("Error parsing and validating create user DTO")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	user, err := slf.userService.Create(dto.Username, dto.Password, dto.Designation, dto.Email, dto.Role)
	if err != nil {
		slf.logger.Error().Err(err).Str("username", dto.Username).Msg("Error creating user")
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToUserResponse(*user))
}

func (slf *authHandler) deleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := slf.userService.Delete(id); err != nil {
		slf.logger.Error().Err(err).Uint("userId", id).Msg("Error deleting user")
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "deleted": true})
}
