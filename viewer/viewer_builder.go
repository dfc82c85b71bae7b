package viewer

import "time"

// ViewerBuilderOption configures a viewer during construction.
type ViewerBuilderOption func(*viewer)

// WithTitle sets the window title.
//
// Parameters:
//   - title: the title bar text
//
// Returns:
//   - ViewerBuilderOption: the option
func WithTitle(title string) ViewerBuilderOption {
	return func(v *viewer) {
		v.title = title
	}
}

// WithSize sets the initial window size. Values below 1 are ignored.
//
// Parameters:
//   - width: the initial width
//   - height: the initial height
//
// Returns:
//   - ViewerBuilderOption: the option
func WithSize(width, height int) ViewerBuilderOption {
	return func(v *viewer) {
		if width >= 1 && height >= 1 {
			v.width = width
			v.height = height
		}
	}
}

// WithStatsInterval sets how often frame stats are logged. Zero or
// negative intervals are ignored.
//
// Parameters:
//   - interval: the logging interval
//
// Returns:
//   - ViewerBuilderOption: the option
func WithStatsInterval(interval time.Duration) ViewerBuilderOption {
	return func(v *viewer) {
		if interval > 0 {
			v.statsInterval = interval
		}
	}
}
