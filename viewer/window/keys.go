package window

import "github.com/go-gl/glfw/v3.3/glfw"

// Key codes forwarded to the key callback, re-exported so callers do
// not need to depend on GLFW directly.
const (
	KeyLeft  = uint32(glfw.KeyLeft)
	KeyRight = uint32(glfw.KeyRight)
	KeyUp    = uint32(glfw.KeyUp)
	KeyDown  = uint32(glfw.KeyDown)
	KeyG     = uint32(glfw.KeyG)
	KeyH     = uint32(glfw.KeyH)
	KeyL     = uint32(glfw.KeyL)
	KeyM     = uint32(glfw.KeyM)
	KeyP     = uint32(glfw.KeyP)
)
