// Package app wires the polyline store, scene and controls into the main
// loop.
package app

import (
	"fmt"
	"log"
	"math/rand"

	"chosenoffset.com/thickline/internal/config"
	"chosenoffset.com/thickline/internal/core/polyline"
	"chosenoffset.com/thickline/internal/export"
	"chosenoffset.com/thickline/internal/input"
	"chosenoffset.com/thickline/internal/render"
	"chosenoffset.com/thickline/internal/render/thickline"
	"chosenoffset.com/thickline/internal/scene"
	"chosenoffset.com/thickline/internal/ui/controls"
)

// InitializationError reports that the graphics backend could not start.
type InitializationError struct {
	Err error
}

func (e *InitializationError) Error() string {
	return "graphics initialization failed: " + e.Err.Error()
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

// App holds the application state and implements render.Game.
type App struct {
	Store      *polyline.Store
	Scene      *scene.Controller
	Controls   *controls.Panel
	Dispatcher *input.Dispatcher
	Context    *thickline.Context

	SessionID string
	ExportDir string
	exports   int

	sceneOpts scene.Options

	// Logical screen size, which always matches the window
	width  int
	height int

	started bool
	drawErr error
}

// New builds the application from config. program must already be linked.
func New(cfg *config.Config, r render.Renderer, in render.InputManager, program *thickline.Program, rng *rand.Rand, sessionID string) (*App, error) {
	store, err := polyline.NewStore(cfg.SeedSegments()...)
	if err != nil {
		return nil, fmt.Errorf("invalid seed polyline: %w", err)
	}

	a := &App{
		Store:     store,
		Context:   thickline.NewContext(program),
		SessionID: sessionID,
		ExportDir: cfg.ExportDir,
		sceneOpts: scene.Options{
			Background: cfg.BackgroundColor(),
			Foreground: cfg.ForegroundColor(),
		},
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}
	a.Scene = scene.NewController(store, a.Context, r, a.sceneOpts)
	a.Controls = controls.NewPanel(r, in, cfg.Input.InitialWidth)
	a.Dispatcher = input.NewDispatcher(store, a, rng)

	return a, nil
}

// Update handles input.
func (a *App) Update() error {
	a.started = true
	if a.drawErr != nil {
		return a.drawErr
	}

	res := a.Controls.Update()
	if res.Event != nil {
		a.dispatch(res.Event)
	}
	if res.Export {
		a.export()
	}
	return nil
}

// Draw presents the scene and then the controls on top.
func (a *App) Draw(screen render.Image) {
	if err := a.Scene.Present(screen); err != nil && a.drawErr == nil {
		log.Printf("Failed to draw scene: %v", err)
		a.drawErr = err
	}
	a.Controls.Draw(screen)
}

// Layout makes the drawing surface match the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width, a.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// SurfaceSize returns the current surface size.
func (a *App) SurfaceSize() (width, height int) {
	return a.width, a.height
}

// Invalidate schedules a scene redraw.
func (a *App) Invalidate() {
	a.Scene.Invalidate()
}

// Close releases the scene texture and the rendering context.
func (a *App) Close() {
	a.Scene.Release()
	a.Context.Release()
}

func (a *App) dispatch(ev input.Event) {
	seg, err := a.Dispatcher.Dispatch(ev, a.Controls.Width())
	if err != nil {
		log.Printf("Failed to add segment: %v", err)
		a.Controls.ShowNotice("Could not add segment")
		return
	}
	log.Printf("Added segment %d from %s: (%.1f, %.1f) -> (%.1f, %.1f) width %.2f",
		a.Store.Len()-1, ev, seg.Start.X, seg.Start.Y, seg.End.X, seg.End.Y, seg.Width)
}

func (a *App) export() {
	a.exports++
	page := export.Page{
		Width:      a.width,
		Height:     a.height,
		Background: a.sceneOpts.Background,
		Foreground: a.sceneOpts.Foreground,
	}
	path, err := export.WriteFile(a.ExportDir, export.FileName(a.SessionID, a.exports), a.Store.Segments(), page)
	if err != nil {
		log.Printf("Export failed: %v", err)
		a.Controls.ShowNotice("Export failed")
		return
	}
	log.Printf("Exported %d segments to %s", a.Store.Len(), path)
	a.Controls.ShowNotice("Exported " + path)
}

// Run configures the window and blocks in the main loop until it exits.
// Failures before the first tick are reported as *InitializationError.
func Run(engine render.Engine, a *App, window config.WindowConfig) error {
	engine.SetWindowSize(window.Width, window.Height)
	engine.SetWindowTitle(window.Title)
	engine.SetWindowResizable(window.Resizable)

	defer a.Close()
	if err := engine.RunGame(a); err != nil {
		if !a.started {
			return &InitializationError{Err: err}
		}
		return err
	}
	return nil
}
