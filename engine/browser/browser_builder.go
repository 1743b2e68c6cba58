package browser

import "github.com/rs/zerolog"

// settings holds the options shared by documents and canvases.
type settings struct {
	logger zerolog.Logger
}

func defaultSettings() settings {
	return settings{logger: zerolog.Nop()}
}

// Option is a functional option for configuring a Document or Canvas.
type Option func(*settings)

// WithLogger sets the logger used to report DOM call failures. Defaults to a no-op logger.
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - Option: option function to apply
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}
