package shader

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// CompileFunc turns Kage source into a shader. ebiten.NewShader in production.
type CompileFunc func(src []byte) (*ebiten.Shader, error)

// Program owns the compiled planet shader and the feature set it was built
// with. Changing the set recompiles; the previous shader is released.
type Program struct {
	compile  CompileFunc
	shader   *ebiten.Shader
	features FeatureSet
	compiled bool
	builds   int
}

func NewProgram(compile CompileFunc) *Program {
	if compile == nil {
		compile = ebiten.NewShader
	}
	return &Program{compile: compile}
}

// Sync makes sure the program matches s, recompiling when it does not.
// On failure the previous shader stays in use.
func (p *Program) Sync(s FeatureSet) error {
	if p.compiled && p.features == s {
		return nil
	}

	src, err := Source(s)
	if err != nil {
		return err
	}
	sh, err := p.compile(src)
	if err != nil {
		return fmt.Errorf("shader: compile %s: %w", s, err)
	}

	if p.shader != nil {
		p.shader.Deallocate()
	}
	p.shader = sh
	p.features = s
	p.compiled = true
	p.builds++
	log.Printf("shader: compiled planet program #%d [%s]", p.builds, s)
	return nil
}

// Shader returns the current shader, nil before the first Sync.
func (p *Program) Shader() *ebiten.Shader { return p.shader }

// Features returns the set the current shader was built with.
func (p *Program) Features() FeatureSet { return p.features }

// Builds counts successful compilations.
func (p *Program) Builds() int { return p.builds }
