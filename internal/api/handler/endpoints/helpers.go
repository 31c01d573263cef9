package endpoints

import (
	"errors"
	"net/http"
	"strconv"

	"freightflow/internal/api/handler/response"
	"freightflow/internal/api/models"
	"freightflow/internal/api/repo"
	"freightflow/internal/api/service"
	"freightflow/pkg"

	"github.com/gin-gonic/gin"
)

// currentUser loads the authenticated user's record so handlers act on the
// role stored in the database, not the one baked into the token.
func currentUser(c *gin.Context) (models.User, bool) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return models.User{}, false
	}
	user, err := repo.NewUserRepository().FindByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.APIError{Message: "User not found"})
		return models.User{}, false
	}
	return user, true
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}

// writeServiceError translates the service error taxonomy to HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, response.APIError{Message: err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, response.APIError{Message: err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, response.APIError{Message: err.Error()})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Internal server error"})
	}
}
