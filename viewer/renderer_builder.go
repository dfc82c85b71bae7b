package viewer

import "github.com/cogentcore/webgpu/wgpu"

// RendererBuilderOption configures a renderer during construction.
type RendererBuilderOption func(*pointRenderer)

// WithPresentMode overrides the surface present mode. The default is
// Fifo (vsync).
//
// Parameters:
//   - mode: the present mode
//
// Returns:
//   - RendererBuilderOption: the option
func WithPresentMode(mode wgpu.PresentMode) RendererBuilderOption {
	return func(r *pointRenderer) {
		r.presentMode = mode
	}
}

// WithClearColor overrides the background clear color.
//
// Parameters:
//   - c: the clear color
//
// Returns:
//   - RendererBuilderOption: the option
func WithClearColor(c wgpu.Color) RendererBuilderOption {
	return func(r *pointRenderer) {
		r.clearColor = c
	}
}
