package httpclientx

import "github.com/ilcovid/oecdrt/internal/model"

// Config contains configuration shared by [GetRaw] and its callers.
//
// The zero value is invalid; initialize the MANDATORY fields.
type Config struct {
	// Client is the MANDATORY [model.HTTPClient] to use.
	Client model.HTTPClient

	// Logger is the MANDATORY [model.Logger] to use.
	Logger model.Logger

	// MaxBodySize is the OPTIONAL maximum body size in bytes. When zero
	// or negative, we use [DefaultMaxBodySize].
	MaxBodySize int64

	// UserAgent is the MANDATORY User-Agent header value to use.
	UserAgent string
}

// DefaultMaxBodySize is the default maximum body size. The source
// CSV is currently around ten megabytes, so we leave generous room.
const DefaultMaxBodySize = 1 << 27
