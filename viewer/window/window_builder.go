package window

// WindowBuilderOption configures a window during construction.
type WindowBuilderOption func(*viewerWindow)

// WithTitle sets the window title.
//
// Parameters:
//   - title: the title bar text
//
// Returns:
//   - WindowBuilderOption: the option
func WithTitle(title string) WindowBuilderOption {
	return func(w *viewerWindow) {
		w.title = title
	}
}

// WithSize sets the initial window size in screen coordinates. Values
// below 1 are ignored.
//
// Parameters:
//   - width: the initial width
//   - height: the initial height
//
// Returns:
//   - WindowBuilderOption: the option
func WithSize(width, height int) WindowBuilderOption {
	return func(w *viewerWindow) {
		if width >= 1 {
			w.width = width
		}
		if height >= 1 {
			w.height = height
		}
	}
}
