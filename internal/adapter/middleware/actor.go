package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ActorHeader carries the acting employee's public id. Session/token
// handling lives in front of this service; by the time a request gets
// here the gateway has already authenticated the caller.
const ActorHeader = "X-Employee-Id"

const actorKey = "actor_employee_id"

// RequireActor resolves the acting employee id from the header and
// stashes it on the echo context. Requests without a well-formed id
// are rejected before any handler runs.
func RequireActor() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(ActorHeader))
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + ActorHeader})
			}
			if _, err := uuid.Parse(raw); err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid " + ActorHeader})
			}
			c.Set(actorKey, raw)
			return next(c)
		}
	}
}

// ActorID returns the employee id placed by RequireActor.
func ActorID(c echo.Context) (string, error) {
	id, _ := c.Get(actorKey).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing actor identity")
	}
	return id, nil
}
