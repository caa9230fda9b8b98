package weather

import "fmt"

// WeatherFetchError is returned for any network, provider or parsing failure
// of a weather fetch.
type WeatherFetchError struct {
	Provider string
	Err      error
}

func (e *WeatherFetchError) Error() string {
	return fmt.Sprintf("weather fetch from %s failed: %v", e.Provider, e.Err)
}

func (e *WeatherFetchError) Unwrap() error {
	return e.Err
}
