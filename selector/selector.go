// Package selector builds CSS selector strings through an immutable,
// chainable builder. Parts of a compound selector must be added in CSS
// grammar order (element, id, classes, attributes, pseudo-classes,
// pseudo-element) and element, id and pseudo-element may appear at most
// once per chain; violations are recorded on the returned value and
// surfaced by Err or Result.
package selector

import (
	"fmt"

	"go.uber.org/multierr"
)

// Combinator joins two compound selectors into a complex selector.
type Combinator string

const (
	Descendant        Combinator = " "
	Child             Combinator = ">"
	NextSibling       Combinator = "+"
	SubsequentSibling Combinator = "~"
)

// part is the category of a compound selector part. Ordering of the
// constants is the required left-to-right order within a compound.
type part int

const (
	partNone part = iota
	partElement
	partID
	partClass
	partAttribute
	partPseudoClass
	partPseudoElement
)

func (p part) String() string {
	switch p {
	case partElement:
		return "element"
	case partID:
		return "id"
	case partClass:
		return "class"
	case partAttribute:
		return "attribute"
	case partPseudoClass:
		return "pseudo-class"
	case partPseudoElement:
		return "pseudo-element"
	default:
		return "none"
	}
}

// Builder accumulates a selector fragment. It is an immutable value:
// every operation returns a new Builder and never modifies its receiver,
// so a partially built selector can be shared between several chains.
//
// A violation does not produce a new fragment - the violating call
// returns a value carrying the receiver's fragment and the recorded
// error, and all later operations pass that value through unchanged.
type Builder struct {
	fragment string
	stage    part

	seenElement       bool
	seenID            bool
	seenPseudoElement bool

	err error
}

// Empty is the origin of every selector chain. The zero Builder is
// equivalent and may be used directly.
var Empty Builder

// Element adds a type selector. Allowed only at the very beginning of a
// compound and at most once per chain.
func (b Builder) Element(name string) Builder {
	return b.add(partElement, name)
}

// ID adds an id selector ("#name"). At most once per chain.
func (b Builder) ID(name string) Builder {
	return b.add(partID, "#"+name)
}

// Class adds a class selector (".name"). May be repeated.
func (b Builder) Class(name string) Builder {
	return b.add(partClass, "."+name)
}

// Attr adds an attribute selector ("[expr]"). The expression is used
// verbatim - see AttrMatch for a formatting helper. May be repeated.
func (b Builder) Attr(expr string) Builder {
	return b.add(partAttribute, "["+expr+"]")
}

// PseudoClass adds a pseudo-class (":name"). May be repeated.
func (b Builder) PseudoClass(name string) Builder {
	return b.add(partPseudoClass, ":"+name)
}

// PseudoElement adds a pseudo-element ("::name"). At most once per chain
// and necessarily last within a compound.
func (b Builder) PseudoElement(name string) Builder {
	return b.add(partPseudoElement, "::"+name)
}

func (b Builder) add(p part, text string) Builder {
	if b.err != nil {
		return b
	}
	nb := b
	if p < b.stage {
		nb.err = fmt.Errorf("cannot add %s after %s: %w", p, b.stage, ErrOrder)
		return nb
	}
	switch p {
	case partElement:
		if b.seenElement {
			nb.err = fmt.Errorf("element already present: %w", ErrCardinality)
			return nb
		}
		nb.seenElement = true
	case partID:
		if b.seenID {
			nb.err = fmt.Errorf("id already present: %w", ErrCardinality)
			return nb
		}
		nb.seenID = true
	case partPseudoElement:
		if b.seenPseudoElement {
			nb.err = fmt.Errorf("pseudo-element already present: %w", ErrCardinality)
			return nb
		}
		nb.seenPseudoElement = true
	}
	nb.fragment += text
	nb.stage = p
	return nb
}

// Combine joins b and right with the given combinator, always with a
// single space on both sides of the combinator token. The result is a
// fresh compound unit: stage and cardinality tracking are reset, so
// further parts may be chained onto it without validation against either
// side. Errors recorded on either side are merged and stick.
func (b Builder) Combine(op Combinator, right Builder) Builder {
	if err := multierr.Append(b.err, right.err); err != nil {
		nb := b
		nb.err = err
		return nb
	}
	return Builder{fragment: b.fragment + " " + string(op) + " " + right.fragment}
}

// String returns the accumulated fragment verbatim. It is pure and may
// be called any number of times; after a violation it still returns the
// fragment as it stood before the violating call.
func (b Builder) String() string {
	return b.fragment
}

// Err returns the first violation recorded on this chain, nil otherwise.
func (b Builder) Err() error {
	return b.err
}

// Result returns the selector string, or the recorded violation.
func (b Builder) Result() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return b.fragment, nil
}
