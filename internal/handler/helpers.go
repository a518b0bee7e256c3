package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Xvidddd/AI-Travel-Planner/internal/llm"
	"github.com/Xvidddd/AI-Travel-Planner/internal/repository"
	"github.com/Xvidddd/AI-Travel-Planner/internal/service"
)

// bindJSON binds JSON request body to a struct
func bindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return fmt.Errorf("invalid JSON format: %v", err)
	}
	return nil
}

// requireUserID reads the owning-user identifier from the query string.
// Identity is caller-supplied; only its presence is checked.
func requireUserID(c *gin.Context) (string, bool) {
	userID := c.Query("userId")
	if userID == "" {
		respondUnauthorized(c, ErrMissingUser)
		return "", false
	}
	return userID, true
}

// getQueryFloat retrieves a float query parameter with a default value
func getQueryFloat(c *gin.Context, paramName string, defaultValue float64) (float64, error) {
	valueStr := c.Query(paramName)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be a number", paramName)
	}

	return value, nil
}

// respondServiceError maps service-layer failures onto HTTP statuses:
// validation problems are the caller's fault, provider failures are upstream
// failures, missing records are 404, everything else is internal.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		respondBadRequest(c, validationErr.Error(), newErrorDetail(validationErr.Field, validationErr.Message))
		return
	}

	if errors.Is(err, repository.ErrNotFound) {
		respondNotFound(c, ErrResourceNotFound)
		return
	}

	if errors.Is(err, llm.ErrNotConfigured) {
		respondBadRequest(c, err.Error())
		return
	}

	var httpErr *llm.HTTPError
	var parseErr *llm.ParseError
	if errors.As(err, &httpErr) || errors.As(err, &parseErr) || errors.Is(err, llm.ErrEmptyResponse) {
		respondBadGateway(c, ErrProviderFailure)
		return
	}

	respondInternalServerError(c, err.Error())
}
