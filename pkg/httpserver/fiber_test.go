package httpserver

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFiberServer_Probes(t *testing.T) {
	ready := false
	app := InitFiberServer(Options{AppName: "test-app", Ready: func() bool { return ready }})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/manage/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/manage/ready", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	ready = true
	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/manage/ready", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestInitFiberServer_RecoversPanics(t *testing.T) {
	app := InitFiberServer(Options{AppName: "test-app"})
	app.Get("/boom", func(c *fiber.Ctx) error { panic("boom") })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
