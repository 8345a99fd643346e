package shader

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
)

//go:embed planet.kage.tmpl
var planetTemplate string

// Kage has no preprocessor, so feature blocks are text/template conditionals
// keyed by define name: {{if .USE_NIGHT}} ... {{end}}.
var planetTmpl = template.Must(template.New("planet").Option("missingkey=zero").Parse(planetTemplate))

// Source renders the planet shader with the definitions of s.
func Source(s FeatureSet) ([]byte, error) {
	data := make(map[string]bool, len(AllFeatures))
	for _, f := range AllFeatures {
		data[f.Define()] = false
	}
	for _, d := range Defines(s) {
		data[d] = true
	}

	var buf bytes.Buffer
	if err := planetTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("shader: preprocess %s: %w", s, err)
	}
	return buf.Bytes(), nil
}
