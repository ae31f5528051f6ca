package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classhub/classhub-backend/internal/repository"
	"github.com/classhub/classhub-backend/internal/response"
	"github.com/classhub/classhub-backend/internal/service"
)

// failDomain translates core errors into typed API failures. Anything not
// in the domain taxonomy is treated as a store/dependency outage so that no
// failure is silently absorbed.
func failDomain(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, repository.ErrAlreadyExists):
		response.Fail(c, http.StatusConflict, response.ErrAlreadyExists)
	case errors.Is(err, repository.ErrAlreadyMarked):
		response.Fail(c, http.StatusConflict, response.ErrAlreadyMarked)
	case errors.Is(err, service.ErrInvalidInput):
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
	case errors.Is(err, service.ErrForbidden):
		response.Fail(c, http.StatusForbidden, response.ErrForbidden)
	case errors.Is(err, service.ErrNoLinkedChild):
		response.Fail(c, http.StatusNotFound, response.ErrNoLinkedChild)
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
	default:
		response.Fail(c, http.StatusServiceUnavailable, response.ErrDependencyUnavailable)
	}
}
