package render

import (
	"image"
	"image/color"
)

// Shader represents a compiled shader program.
type Shader interface {
	// Dispose releases shader resources.
	Dispose()
}

// ShaderCompiler compiles shaders from source code.
type ShaderCompiler interface {
	// CompileShader compiles shader source code into a Shader.
	CompileShader(src []byte) (Shader, error)
}

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// scene logic.
type Renderer interface {
	ShaderCompiler

	// Image operations
	NewImage(width, height int) Image

	// Vector operations (for drawing UI shapes)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	StrokeRect(dst Image, x, y, width, height float32, strokeWidth float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color)
	MeasureText(text string) (width, height int)
}

// Image represents a renderable image surface that can be drawn to or drawn from.
// It abstracts the underlying image implementation.
type Image interface {
	// Properties
	Bounds() image.Rectangle
	Size() (width, height int)

	// Fill operations
	Fill(clr color.Color)

	// Drawing operations
	DrawImage(src Image, opts *DrawImageOptions)
	DrawTrianglesShader(vertices []Vertex, indices []uint16, shader Shader, opts *DrawTrianglesShaderOptions)

	// Resource management
	Dispose()
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	// TranslateX and TranslateY offset the source image on the destination.
	TranslateX float64
	TranslateY float64
}

// DrawTrianglesShaderOptions contains options for drawing triangles with a shader.
type DrawTrianglesShaderOptions struct {
	// Uniforms are the shader uniform values.
	Uniforms map[string]interface{}
}

// Vertex represents a vertex for triangle rendering. Dst coordinates are in
// pixels of the destination image.
type Vertex struct {
	DstX   float32
	DstY   float32
	ColorR float32
	ColorG float32
	ColorB float32
	ColorA float32
}

// InputManager handles input from the user (keyboard, mouse, text).
type InputManager interface {
	IsKeyJustPressed(key Key) bool
	IsMouseButtonJustPressed(button MouseButton) bool
	GetCursorPosition() (x, y int)
	// AppendInputChars appends the characters typed this tick to runes.
	AppendInputChars(runes []rune) []rune
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the application listens to
const (
	KeyEnter Key = iota
	KeyBackspace
	KeyTab
	KeyEscape
	KeyR // Random segment key
	KeyP // Export key
)

// MouseButton represents a mouse button.
type MouseButton int

// MouseButtonLeft is the only button the controls react to.
const MouseButtonLeft MouseButton = 0

// Game represents the game interface that the engine will call.
// This is typically implemented by the main application struct.
type Game interface {
	// Update updates the application logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	// The logical screen size is used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the engine that manages the main loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the main loop with the provided game.
	// This is a blocking call that runs until the window closes.
	RunGame(game Game) error
}
