package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"simpleweather/internal/dashboard"
	"simpleweather/pkg/observe"
)

type Options struct {
	Title string
	// Refresh is sent to browsers while the fetch is outstanding.
	Refresh time.Duration
}

type routes struct {
	// ctx is the application lifetime; the dashboard fetch runs under it
	// rather than under the request that mounted the dashboard.
	ctx       context.Context
	dashboard *dashboard.Controller
	opts      Options
	l         *observe.Logger
}

func NewRouter(
	ctx context.Context,
	app *fiber.App,
	controller *dashboard.Controller,
	opts Options,
	l *observe.Logger,
) {
	r := &routes{
		ctx:       ctx,
		dashboard: controller,
		opts:      opts,
		l:         l,
	}

	// Swagger documentation, served from the swag registry
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", r.handleDashboard)

	api := app.Group("/api")
	api.Get("/snapshot", r.handleSnapshot)
	api.Get("/layout", r.handleLayout)
}
