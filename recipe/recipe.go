// Package recipe loads YAML descriptions of named selectors and builds
// them into selector strings.
package recipe

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/rupor-github/gencfg"
	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"cssel/selector"
)

//go:embed sample.yaml
var sampleRecipe []byte

// Sample returns an example recipe demonstrating the format.
func Sample() []byte {
	tmp := make([]byte, len(sampleRecipe))
	copy(tmp, sampleRecipe)
	return tmp
}

type (
	// Compound lists parts of a compound selector. Parts are applied in
	// CSS grammar order: element, id, classes, attributes,
	// pseudo-classes, pseudo-element.
	Compound struct {
		Element       string   `yaml:"element,omitempty"`
		ID            string   `yaml:"id,omitempty"`
		Classes       []string `yaml:"classes,omitempty" validate:"dive,required"`
		Attributes    []string `yaml:"attributes,omitempty" validate:"dive,required"`
		PseudoClasses []string `yaml:"pseudo_classes,omitempty" validate:"dive,required"`
		PseudoElement string   `yaml:"pseudo_element,omitempty"`
	}

	// Join combines two previously defined selectors.
	Join struct {
		Left       string `yaml:"left" validate:"required"`
		Combinator string `yaml:"combinator" validate:"required"`
		Right      string `yaml:"right" validate:"required"`
	}

	// Definition is a single named selector. When both a join and
	// compound parts are given the parts are appended to the combined
	// result.
	Definition struct {
		Name     string `yaml:"name" validate:"required"`
		Join     *Join  `yaml:"combine,omitempty"`
		Compound `yaml:",inline"`
	}

	Recipe struct {
		Version   int          `yaml:"version" validate:"eq=1"`
		Selectors []Definition `yaml:"selectors" validate:"required,min=1,dive"`
	}
)

// Parse decodes and validates recipe data. Unknown fields are rejected.
func Parse(data []byte) (*Recipe, error) {
	rcp := &Recipe{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(rcp); err != nil {
		return nil, fmt.Errorf("failed to decode recipe: %w", err)
	}
	if err := gencfg.Validate(rcp); err != nil {
		return nil, fmt.Errorf("failed to validate recipe: %w", err)
	}

	// validator tags cannot express combinator membership (the descendant
	// combinator is a bare space), check it here
	var errs error
	for i, def := range rcp.Selectors {
		if def.Join != nil && !validCombinator(def.Join.Combinator) {
			errs = multierr.Append(errs, fmt.Errorf("selector %q (#%d): unsupported combinator %q", def.Name, i+1, def.Join.Combinator))
		}
	}
	if errs != nil {
		return nil, fmt.Errorf("failed to validate recipe: %w", errs)
	}
	return rcp, nil
}

// Load reads and parses the recipe file at the given path.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe file: %w", err)
	}
	rcp, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to process recipe file: %w", err)
	}
	return rcp, nil
}

func validCombinator(c string) bool {
	switch selector.Combinator(c) {
	case selector.Descendant, selector.Child, selector.NextSibling, selector.SubsequentSibling:
		return true
	default:
		return false
	}
}
