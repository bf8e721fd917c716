package main

import (
	"context"
	"log"
	"sync"

	"github.com/chazu/hourglass/pkg/curve"
	"github.com/chazu/hourglass/pkg/engine"
	"github.com/chazu/hourglass/pkg/mesh"
	"github.com/chazu/hourglass/pkg/sand"
	"github.com/chazu/hourglass/pkg/shape"
)

// Part colors sent to the frontend.
const (
	glassColor = "#A8D8EA"
	sandColor  = "#E8C872"
)

// Part names attached to the generated meshes.
const (
	partBody       = "body"
	partTopSand    = "sand-top"
	partBottomSand = "sand-bottom"
)

// App is the Wails backend. It exposes methods to the frontend via bindings.
type App struct {
	ctx    context.Context
	engine *engine.Engine
	tri    mesh.Triangulator

	mu     sync.Mutex
	config *engine.Config
	fill   float32
}

// MeshData is the JSON-serializable mesh format sent to the frontend.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	PartName string    `json:"partName"`
	Color    string    `json:"color"`
}

// EvalErrorData is a JSON-serializable eval error for the frontend.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result returned to the frontend.
type EvalResult struct {
	Meshes   []MeshData      `json:"meshes"`
	Errors   []EvalErrorData `json:"errors"`
	Warnings []string        `json:"warnings"`
}

// NewApp creates a new App with a style engine and the ear-clipping
// triangulator. The top bulb starts full.
func NewApp() *App {
	return &App{
		engine: engine.NewEngine(),
		tri:    mesh.NewEarClip(),
		config: engine.DefaultConfig(),
		fill:   1,
	}
}

// startup is called by Wails on app startup. The context is saved
// so we can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// Evaluate takes Lisp styling source and returns mesh data + errors.
// This is the primary binding called by the frontend editor.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Meshes:   []MeshData{},
		Errors:   []EvalErrorData{},
		Warnings: []string{},
	}

	// Step 1: Evaluate the Lisp source into a style config.
	cfg, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{
			Line:    0,
			Col:     0,
			Message: err.Error(),
		})
		return result
	}

	// Step 2: Convert eval errors to the frontend format.
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	// Step 3: Flag degenerate configurations. Advisory only; geometry
	// is still generated.
	for _, w := range cfg.Builder().Validate() {
		result.Warnings = append(result.Warnings, w.Message)
	}

	a.mu.Lock()
	a.config = cfg
	fill := a.fill
	a.mu.Unlock()

	// Step 4: Generate outlines and triangulate them into meshes.
	result.Meshes = a.buildMeshes(cfg, fill)
	return result
}

// SetFillPercent updates the fill fraction of the top bulb and returns
// regenerated meshes. Called by the frontend animation loop. The value
// is clamped here; the geometry packages assume pre-clamped input.
func (a *App) SetFillPercent(fill float64) EvalResult {
	f := float32(fill)
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}

	a.mu.Lock()
	a.fill = f
	cfg := a.config
	a.mu.Unlock()

	return EvalResult{
		Meshes:   a.buildMeshes(cfg, f),
		Errors:   []EvalErrorData{},
		Warnings: []string{},
	}
}

// buildMeshes produces the glass body mesh and the two sand meshes for
// the given fill fraction. Parts whose polygons are empty or fail to
// triangulate are skipped: nothing is rendered for them this frame.
func (a *App) buildMeshes(cfg *engine.Config, fill float32) []MeshData {
	builder := cfg.Builder()

	body := builder.Outline()
	sandBody := builder.OutlineWithWallOffset(cfg.WallOffset)

	sandCfg := sand.Config{
		FillPercent: fill,
		WallOffset:  cfg.WallOffset,
		NeckHeight:  shape.NeckHeight(cfg.Neck),
		MinY:        -cfg.TotalHeight / 2,
		MaxY:        cfg.TotalHeight / 2,
		MoundFactor: cfg.MoundFactor,
	}

	var meshes []MeshData
	meshes = a.appendMesh(meshes, body, partBody, glassColor)
	meshes = a.appendMesh(meshes, sand.Outline(sandBody, sand.Top, sandCfg), partTopSand, sandColor)
	meshes = a.appendMesh(meshes, sand.Outline(sandBody, sand.Bottom, sandCfg), partBottomSand, sandColor)
	return meshes
}

// appendMesh triangulates one outline and appends the result. Empty
// outlines and triangulation failures both contribute nothing: the
// part is simply not rendered this frame.
func (a *App) appendMesh(meshes []MeshData, outline []curve.Point, name, color string) []MeshData {
	m, err := mesh.FromOutline(outline, a.tri)
	if err != nil {
		log.Printf("triangulation failed for %s: %v", name, err)
		return meshes
	}
	if m.IsEmpty() {
		return meshes
	}

	return append(meshes, MeshData{
		Vertices: m.Vertices,
		Normals:  m.Normals,
		Indices:  m.Indices,
		PartName: name,
		Color:    color,
	})
}
