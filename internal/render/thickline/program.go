// Package thickline owns the shader program and draw submission for thick
// polyline segments.
package thickline

import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"chosenoffset.com/thickline/internal/render"
)

// DefaultShaderSource is the built-in solid color program.
//
//go:embed shaders/solid.kage
var DefaultShaderSource []byte

// Uniform names the pipeline binds on every draw.
const (
	UniformColor      = "Color"
	UniformResolution = "Resolution"
)

// requiredUniforms maps each bound uniform to the type the pipeline uploads.
var requiredUniforms = map[string]string{
	UniformColor:      "vec4",
	UniformResolution: "vec2",
}

var (
	uniformDecl  = regexp.MustCompile(`(?m)^\s*var\s+([A-Za-z_]\w*)\s+(\w+)`)
	fragmentDecl = regexp.MustCompile(`(?m)^\s*func\s+Fragment\s*\(`)
)

// ShaderCompileError reports a shader that failed to compile.
type ShaderCompileError struct {
	Log string
}

func (e *ShaderCompileError) Error() string {
	return "shader compile failed: " + e.Log
}

// ProgramLinkError reports a compiled shader that cannot serve as the
// pipeline program, e.g. because a bound uniform is missing.
type ProgramLinkError struct {
	Log string
}

func (e *ProgramLinkError) Error() string {
	return "program link failed: " + e.Log
}

// Program is a compiled and linked shader program.
type Program struct {
	shader   render.Shader
	uniforms map[string]string
}

// Initialize compiles src and resolves the uniforms the pipeline binds.
// On failure the returned program is nil and the error is a
// *ShaderCompileError or *ProgramLinkError.
func Initialize(compiler render.ShaderCompiler, src []byte) (*Program, error) {
	shader, err := compiler.CompileShader(src)
	if err != nil {
		return nil, &ShaderCompileError{Log: err.Error()}
	}

	uniforms, err := link(string(src))
	if err != nil {
		shader.Dispose()
		return nil, err
	}

	return &Program{shader: shader, uniforms: uniforms}, nil
}

// link checks that the source declares a fragment entry point and every
// required uniform with the expected type.
func link(src string) (map[string]string, error) {
	var problems []string

	if !fragmentDecl.MatchString(src) {
		problems = append(problems, "missing Fragment entry point")
	}

	uniforms := make(map[string]string)
	for _, m := range uniformDecl.FindAllStringSubmatch(src, -1) {
		uniforms[m[1]] = m[2]
	}

	names := make([]string, 0, len(requiredUniforms))
	for name := range requiredUniforms {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		want := requiredUniforms[name]
		got, ok := uniforms[name]
		switch {
		case !ok:
			problems = append(problems, fmt.Sprintf("uniform %s not found", name))
		case got != want:
			problems = append(problems, fmt.Sprintf("uniform %s has type %s, want %s", name, got, want))
		}
	}

	if len(problems) > 0 {
		return nil, &ProgramLinkError{Log: strings.Join(problems, "; ")}
	}
	return uniforms, nil
}

// Uniforms returns the sorted names of the uniforms the program declares.
func (p *Program) Uniforms() []string {
	names := make([]string, 0, len(p.uniforms))
	for name := range p.uniforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Release disposes the underlying shader.
func (p *Program) Release() {
	if p.shader != nil {
		p.shader.Dispose()
		p.shader = nil
	}
}
