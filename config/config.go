package config

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"simpleweather/internal/models"
)

const DefaultConfigPath = "config/config.yaml"

const (
	ProviderOpenMeteo      = "open-meteo"
	ProviderOpenWeatherMap = "openweathermap"
)

var knownProviders = []string{ProviderOpenMeteo, ProviderOpenWeatherMap}

// Config is read from YAML and then from APP_*, SERVER_*, WEATHER_*,
// DASHBOARD_* and LOG_* environment variables. Only the prefixed names are
// consulted.
type Config struct {
	App       AppConfig       `yaml:"app" envconfig:"APP"`
	Server    ServerConfig    `yaml:"server" envconfig:"SERVER"`
	Weather   WeatherConfig   `yaml:"weather" envconfig:"WEATHER"`
	Dashboard DashboardConfig `yaml:"dashboard" envconfig:"DASHBOARD"`
	Log       LogConfig       `yaml:"log" envconfig:"LOG"`
}

type AppConfig struct {
	Name    string `yaml:"name" split_words:"true"`
	Version string `yaml:"version" split_words:"true"`
	Env     string `yaml:"env" split_words:"true"`
}

type ServerConfig struct {
	Port         string        `yaml:"port" split_words:"true"`
	ReadTimeout  time.Duration `yaml:"read_timeout" split_words:"true"`
	WriteTimeout time.Duration `yaml:"write_timeout" split_words:"true"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" split_words:"true"`
}

// WeatherConfig selects the single provider and the fixed location the
// dashboard is rendered for.
type WeatherConfig struct {
	Provider  string  `yaml:"provider" split_words:"true"`
	Latitude  float64 `yaml:"latitude" split_words:"true"`
	Longitude float64 `yaml:"longitude" split_words:"true"`
	Unit      string  `yaml:"unit" split_words:"true"`
	// APIKey overrides the key of the selected provider.
	APIKey       string             `yaml:"-" split_words:"true"`
	RateLimit    float64            `yaml:"rate_limit" split_words:"true"`
	RateBurst    int                `yaml:"rate_burst" split_words:"true"`
	HTTPTimeout  time.Duration      `yaml:"http_timeout" split_words:"true"`
	FetchTimeout time.Duration      `yaml:"fetch_timeout" split_words:"true"`
	APIs         []WeatherAPIConfig `yaml:"apis" ignored:"true"`
}

type WeatherAPIConfig struct {
	Name    string `yaml:"name"`
	BaseURL string `yaml:"base_url,omitempty"`
	APIKey  string `yaml:"api_key,omitempty"`
}

type DashboardConfig struct {
	// RefreshInterval is how often a pending page asks the browser to re-render.
	RefreshInterval time.Duration `yaml:"refresh_interval" split_words:"true"`
}

type LogConfig struct {
	Level     string `yaml:"level" split_words:"true"`
	SentryDSN string `yaml:"sentry_dsn" split_words:"true"`
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider layers defaults, an optional YAML file and environment
// variables, in that order.
type FileConfigProvider struct {
	path string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path}
}

func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:    "simpleweather",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Weather: WeatherConfig{
			Provider:    ProviderOpenMeteo,
			Latitude:    51.51,
			Longitude:   -0.13,
			Unit:        string(models.Celsius),
			RateLimit:   1,
			RateBurst:   1,
			HTTPTimeout: 30 * time.Second,
		},
		Dashboard: DashboardConfig{
			RefreshInterval: 2 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := Default()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cnf, nil
}

// loadFromFile is a no-op when the file does not exist.
func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(config *Config) error {
	switch {
	case config.App.Name == "":
		return fmt.Errorf("app.name is required")
	case config.Server.Port == "":
		return fmt.Errorf("server.port is required")
	case config.Weather.Latitude < -90 || config.Weather.Latitude > 90:
		return fmt.Errorf("weather.latitude must be between -90 and 90")
	case config.Weather.Longitude < -180 || config.Weather.Longitude > 180:
		return fmt.Errorf("weather.longitude must be between -180 and 180")
	case !slices.Contains(knownProviders, config.Weather.Provider):
		return fmt.Errorf("weather.provider %q is not supported", config.Weather.Provider)
	case !models.TemperatureUnit(config.Weather.Unit).Valid():
		return fmt.Errorf("weather.unit must be celsius or fahrenheit")
	case config.Weather.RateLimit <= 0 || config.Weather.RateBurst <= 0:
		return fmt.Errorf("weather.rate_limit and weather.rate_burst must be positive")
	case config.Weather.FetchTimeout < 0:
		return fmt.Errorf("weather.fetch_timeout cannot be negative")
	}

	if config.Weather.Provider == ProviderOpenWeatherMap && config.SelectedAPI().APIKey == "" {
		return fmt.Errorf("weather.api_key is required for %s", ProviderOpenWeatherMap)
	}

	return nil
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cnf, nil
}

func NewConfig() (*Config, error) {
	return NewConfigWithProvider(NewFileConfigProvider(DefaultConfigPath))
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production" || c.App.Env == "prod"
}

func (c *Config) GetWeatherAPIs() []WeatherAPIConfig {
	return c.Weather.APIs
}

func (c *Config) GetWeatherAPIByName(name string) (*WeatherAPIConfig, bool) {
	for i := range c.Weather.APIs {
		if c.Weather.APIs[i].Name == name {
			return &c.Weather.APIs[i], true
		}
	}
	return nil, false
}

// SelectedAPI returns the settings of the configured provider with the
// environment key override applied.
func (c *Config) SelectedAPI() WeatherAPIConfig {
	api := WeatherAPIConfig{Name: c.Weather.Provider}
	if found, ok := c.GetWeatherAPIByName(c.Weather.Provider); ok {
		api = *found
	}
	if c.Weather.APIKey != "" {
		api.APIKey = c.Weather.APIKey
	}
	return api
}

func (c *Config) Coordinate() models.Coordinate {
	return models.Coordinate{Latitude: c.Weather.Latitude, Longitude: c.Weather.Longitude}
}

func (c *Config) TemperatureUnit() models.TemperatureUnit {
	return models.TemperatureUnit(c.Weather.Unit)
}
