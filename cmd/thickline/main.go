package main

import (
	"errors"
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"chosenoffset.com/thickline/internal/app"
	"chosenoffset.com/thickline/internal/config"
	ebitenrender "chosenoffset.com/thickline/internal/render/ebiten"
	"chosenoffset.com/thickline/internal/render/thickline"
)

func main() {
	// Command-line flags
	configPath := flag.String("config", "thickline.json", "Settings file (defaults are used if missing)")
	shaderPath := flag.String("shader", "", "Kage shader to use instead of the built-in one")
	exportDir := flag.String("export-dir", "", "Directory for PDF exports")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *shaderPath != "" {
		cfg.ShaderPath = *shaderPath
	}
	if *exportDir != "" {
		cfg.ExportDir = *exportDir
	}

	sessionID := uuid.NewString()
	log.Printf("Session %s", sessionID)

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	shaderSrc := thickline.DefaultShaderSource
	if cfg.ShaderPath != "" {
		shaderSrc, err = os.ReadFile(cfg.ShaderPath)
		if err != nil {
			log.Fatalf("Failed to load shader: %v", err)
		}
	}

	program, err := thickline.Initialize(renderer, shaderSrc)
	if err != nil {
		var compileErr *thickline.ShaderCompileError
		var linkErr *thickline.ProgramLinkError
		switch {
		case errors.As(err, &compileErr):
			log.Printf("An error occurred compiling the shader:\n%s", compileErr.Log)
		case errors.As(err, &linkErr):
			log.Printf("Unable to initialize the shader program:\n%s", linkErr.Log)
		}
		log.Fatal(err)
	}
	log.Printf("Shader program ready (uniforms: %v)", program.Uniforms())

	seed := cfg.Input.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a, err := app.New(cfg, renderer, inputMgr, program, rand.New(rand.NewSource(seed)), sessionID)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	log.Printf("Starting with %d segments...", a.Store.Len())
	if err := app.Run(engine, a, cfg.Window); err != nil {
		var initErr *app.InitializationError
		if errors.As(err, &initErr) {
			log.Fatalf("Graphics not supported: %v", initErr.Err)
		}
		log.Fatal(err)
	}
}
