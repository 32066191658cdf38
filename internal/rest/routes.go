package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	apiV1Prefix = "/api/v1"

	postsPath      = apiV1Prefix + "/posts"
	postByIDPath   = apiV1Prefix + "/posts/:id"
	categoriesPath = apiV1Prefix + "/categories"

	healthPath = "/health"
)

// RegisterRoutes builds the echo engine with CORS, recovery and request
// logging middleware and mounts all API routes.
func (h *PostHandler) RegisterRoutes(allowedOrigins []string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(h.loggingMiddleware)

	corsConfig := middleware.DefaultCORSConfig
	if len(allowedOrigins) > 0 {
		corsConfig.AllowOrigins = allowedOrigins
	}
	e.Use(middleware.CORSWithConfig(corsConfig))

	e.GET(postsPath, h.Posts)
	e.POST(postsPath, h.CreatePost)
	e.GET(postByIDPath, h.PostByID)
	e.PUT(postByIDPath, h.UpdatePost)
	e.DELETE(postByIDPath, h.DeletePost)
	e.GET(categoriesPath, h.Categories)

	e.GET(healthPath, h.handleHealth)

	return e
}

func (h *PostHandler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *PostHandler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.Request().RemoteAddr,
		)

		return err
	}
}
