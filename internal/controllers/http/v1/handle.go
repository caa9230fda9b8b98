package http

import (
	"github.com/gofiber/fiber/v2"

	"simpleweather/internal/dashboard"
	"simpleweather/internal/models"
)

// SnapshotResponse is the raw view state. Absent fields are omitted.
type SnapshotResponse struct {
	State    dashboard.State `json:"state" example:"loaded"`
	Snapshot models.Snapshot `json:"snapshot"`
}

// LayoutResponse lists the sub-views the dashboard page renders.
type LayoutResponse struct {
	State  dashboard.State  `json:"state" example:"loaded"`
	Layout dashboard.Layout `json:"layout"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Failed to render dashboard"`
}

// handleDashboard godoc
// @Summary Render the weather dashboard
// @Description Renders the single-page dashboard. The first call starts the one weather fetch; while it is outstanding the page asks the browser to refresh.
// @Tags Dashboard
// @Produce html
// @Success 200 {string} string "Rendered HTML page"
// @Failure 500 {object} ErrorResponse "Rendering failed"
// @Router / [get]
func (r *routes) handleDashboard(c *fiber.Ctx) error {
	r.dashboard.Mount(r.ctx)

	opts := dashboard.PageOptions{Title: r.opts.Title}
	if r.dashboard.State() == dashboard.StatePending {
		opts.Refresh = r.opts.Refresh
	}

	page, err := dashboard.Page(r.dashboard.Layout(), opts)
	if err != nil {
		r.l.Error(err, map[string]any{"path": c.Path()})

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to render dashboard",
		})
	}

	c.Type("html", "utf-8")
	return c.Send(page)
}

// handleLayout godoc
// @Summary Get the dashboard layout
// @Description Returns the sub-views that the dashboard page currently renders. Like the page, the first call starts the weather fetch.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} LayoutResponse "Current layout"
// @Router /api/layout [get]
func (r *routes) handleLayout(c *fiber.Ctx) error {
	r.dashboard.Mount(r.ctx)

	return c.JSON(LayoutResponse{
		State:  r.dashboard.State(),
		Layout: r.dashboard.Layout(),
	})
}

// handleSnapshot godoc
// @Summary Get the weather snapshot
// @Description Returns the view state and the fetch state (pending, loaded or failed). It does not start a fetch.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} SnapshotResponse "Current snapshot"
// @Router /api/snapshot [get]
func (r *routes) handleSnapshot(c *fiber.Ctx) error {
	return c.JSON(SnapshotResponse{
		State:    r.dashboard.State(),
		Snapshot: r.dashboard.Snapshot(),
	})
}
