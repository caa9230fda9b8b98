package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"simpleweather/config"
	_ "simpleweather/docs"
	v1 "simpleweather/internal/controllers/http/v1"
	"simpleweather/internal/dashboard"
	"simpleweather/internal/repositories"
	"simpleweather/internal/services/weather"
	"simpleweather/pkg/httpserver"
	"simpleweather/pkg/observe"
)

// @title SimpleWeather
// @version 1.0.0
// @description A single-screen weather dashboard for one location: current conditions, today's high and low, a 24-hour strip and a 12-hour chance-of-rain chart.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Dashboard
// @tag.description Weather dashboard rendering and view state
func main() {
	configPath := pflag.String("config", config.DefaultConfigPath, "path to the YAML config file")
	port := pflag.String("port", "", "port to listen on, overrides SERVER_PORT")
	pflag.Parse()

	// reported once the logger exists
	envErr := loadDotEnv()

	cnf, err := config.NewConfigWithProvider(config.NewFileConfigProvider(*configPath))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *port != "" {
		cnf.Server.Port = *port
	}

	ctx, cancel := context.WithCancel(context.Background())

	writers := []io.Writer{os.Stdout}
	var hook *observe.SentryHook
	if cnf.Log.SentryDSN != "" {
		hook = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, 0, cnf.IsDevelopment(), cnf.Log.SentryDSN)
		writers = append(writers, hook)
	}

	l := observe.NewLogger(observe.Options{
		AppName: cnf.App.Name,
		AppEnv:  cnf.App.Env,
		Level:   cnf.Log.Level,
	}, writers...)
	if hook != nil {
		hook.SetLogger(l)
	}
	if envErr != nil {
		l.Warning("error loading .env file", map[string]any{"err": envErr.Error()})
	}

	repo, err := repositories.InitWeatherRepository(cnf, l, &http.Client{Timeout: cnf.Weather.HTTPTimeout})
	if err != nil {
		l.Fatal("cannot init weather provider", map[string]any{"err": err})
	}

	service := weather.NewWeatherService(repo, cnf.TemperatureUnit(), l,
		weather.WithFetchTimeout(cnf.Weather.FetchTimeout))

	controller := dashboard.NewController(service, cnf.Coordinate(), l)

	app := httpserver.InitFiberServer(httpserver.Options{
		AppName:      cnf.App.Name,
		ReadTimeout:  cnf.Server.ReadTimeout,
		WriteTimeout: cnf.Server.WriteTimeout,
		IdleTimeout:  cnf.Server.IdleTimeout,
		Ready:        controller.Settled,
	})

	v1.NewRouter(
		ctx,
		app,
		controller,
		v1.Options{Title: "Weather", Refresh: cnf.Dashboard.RefreshInterval},
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":     cnf.Server.Port,
		"provider": repo.Name(),
		"location": cnf.Coordinate().String(),
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		controller.Close()
		_ = app.ShutdownWithContext(shutdownCtx)
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}

// loadDotEnv loads the given .env files (./.env by default) into the process
// environment without overriding variables that are already set. Missing
// files are not an error.
func loadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
