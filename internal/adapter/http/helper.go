package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	employeeDomain "github.com/rifky200804/ez-request-web/internal/domain/employee"
	requestDomain "github.com/rifky200804/ez-request-web/internal/domain/request"
)

// writeError maps the domain error taxonomy onto HTTP statuses:
// validation 422, not-found 404, authorization 403, state conflict 409.
func writeError(c echo.Context, err error) error {
	if ve, ok := requestDomain.AsValidation(err); ok {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ve.Fields,
		})
	}
	switch {
	case errors.Is(err, requestDomain.ErrNotFound), errors.Is(err, employeeDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case requestDomain.IsAuthorization(err):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case requestDomain.IsStateConflict(err):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	}
	log.WithError(err).Error("unhandled error")
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// pageFromQuery reads ?page / ?per_page (1-based page, default 10 per
// page, capped at 100).
func pageFromQuery(c echo.Context) requestDomain.Page {
	perPage := 10
	if v, err := strconv.Atoi(c.QueryParam("per_page")); err == nil && v > 0 {
		perPage = v
	}
	if perPage > 100 {
		perPage = 100
	}
	page := 1
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		page = v
	}
	return requestDomain.Page{Limit: perPage, Offset: (page - 1) * perPage}
}

// parseDate parses an optional YYYY-MM-DD value already checked by the
// validator.
func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}
