package slidewin

import "log/slog"

// Option configures optional Engine behavior.
type Option func(*engineOptions)

type engineOptions struct {
	rasterCheck bool
	logger      *slog.Logger
}

// WithRasterCheck attaches an observer that verifies every latched valid
// sample against the expected raster position and logs mismatches on
// logger (slog.Default() when nil). The observer never touches pipeline
// state, so timing and outputs are identical with or without it.
func WithRasterCheck(logger *slog.Logger) Option {
	return func(o *engineOptions) {
		o.rasterCheck = true
		o.logger = logger
	}
}

func applyOptions(opts []Option) engineOptions {
	var o engineOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.rasterCheck && o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}
