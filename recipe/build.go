package recipe

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssel/selector"
)

// Result is a single built selector.
type Result struct {
	Name     string `json:"name" yaml:"name"`
	Selector string `json:"selector" yaml:"selector"`
}

// Build resolves all definitions in document order. Joins may only
// reference definitions that were built successfully earlier in the
// document - the referenced partial builders are reused as-is, so a
// shared base never picks up parts added by selectors derived from it.
//
// Compound parts are always applied in canonical order (element, id,
// classes, attributes, pseudo-classes, pseudo-element) regardless of
// how the document spells them, so a single well-formed definition
// cannot trip the builder's ordering or cardinality checks.
//
// Failures (duplicate names, unknown references) do not stop the
// build; they are accumulated and returned together with the results
// for the definitions that did succeed. When escape is set, element,
// id, class and pseudo names pass through CSS identifier escaping;
// attribute expressions are always verbatim.
func Build(log *zap.Logger, rcp *Recipe, escape bool) ([]Result, error) {
	if log == nil {
		log = zap.NewNop()
	}

	ident := func(s string) string {
		if escape {
			return selector.EscapeIdent(s)
		}
		return s
	}

	byName := make(map[string]selector.Builder, len(rcp.Selectors))
	results := make([]Result, 0, len(rcp.Selectors))

	var errs error
	for _, def := range rcp.Selectors {
		if _, exists := byName[def.Name]; exists {
			errs = multierr.Append(errs, fmt.Errorf("selector %q: duplicate name", def.Name))
			continue
		}

		b := selector.Empty
		if def.Join != nil {
			left, ok := byName[def.Join.Left]
			if !ok {
				errs = multierr.Append(errs, fmt.Errorf("selector %q: unknown selector %q", def.Name, def.Join.Left))
				continue
			}
			right, ok := byName[def.Join.Right]
			if !ok {
				errs = multierr.Append(errs, fmt.Errorf("selector %q: unknown selector %q", def.Name, def.Join.Right))
				continue
			}
			b = left.Combine(selector.Combinator(def.Join.Combinator), right)
		}

		if def.Element != "" {
			b = b.Element(ident(def.Element))
		}
		if def.ID != "" {
			b = b.ID(ident(def.ID))
		}
		for _, c := range def.Classes {
			b = b.Class(ident(c))
		}
		for _, a := range def.Attributes {
			b = b.Attr(a)
		}
		for _, p := range def.PseudoClasses {
			b = b.PseudoClass(ident(p))
		}
		if def.PseudoElement != "" {
			b = b.PseudoElement(ident(def.PseudoElement))
		}

		s, err := b.Result()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("selector %q: %w", def.Name, err))
			continue
		}

		byName[def.Name] = b
		results = append(results, Result{Name: def.Name, Selector: s})
		log.Debug("Built selector", zap.String("name", def.Name), zap.String("selector", s))
	}
	return results, errs
}
