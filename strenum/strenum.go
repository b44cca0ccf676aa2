// Package strenum implements open-world string enumerations: a value is
// either one of a declared set of wire names or an "other" arm holding any
// raw string the service sent. Unknown values round-trip unchanged.
package strenum

import (
	"slices"

	"github.com/kbukum/mws/params"
	"github.com/kbukum/mws/xmldecode"
)

// Set declares the known variants of an enumeration. The zero value of K is
// reserved for the unknown arm.
type Set[K comparable] struct {
	names map[K]string
	kinds map[string]K
}

// NewSet builds a set from kind to wire name.
func NewSet[K comparable](names map[K]string) *Set[K] {
	s := &Set[K]{
		names: make(map[K]string, len(names)),
		kinds: make(map[string]K, len(names)),
	}
	for k, name := range names {
		s.names[k] = name
		s.kinds[name] = k
	}
	return s
}

// Of returns the value of a known kind.
func (s *Set[K]) Of(kind K) Value[K] {
	return Value[K]{kind: kind, raw: s.names[kind], known: true}
}

// Parse maps a wire string to its variant, falling back to the unknown arm.
func (s *Set[K]) Parse(raw string) Value[K] {
	if k, ok := s.kinds[raw]; ok {
		return Value[K]{kind: k, raw: raw, known: true}
	}
	return Value[K]{raw: raw}
}

// Decode reads an enumeration from element text.
func (s *Set[K]) Decode(c *xmldecode.Cursor) (Value[K], error) {
	text, err := xmldecode.String(c)
	if err != nil {
		return Value[K]{}, err
	}
	return s.Parse(text), nil
}

// Names returns the declared wire names in sorted order.
func (s *Set[K]) Names() []string {
	out := make([]string, 0, len(s.names))
	for _, n := range s.names {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Value is one enumeration value: a known kind or a raw unknown string.
type Value[K comparable] struct {
	kind  K
	raw   string
	known bool
}

// Kind returns the variant, or the zero K for unknown values.
func (v Value[K]) Kind() K { return v.kind }

// Known reports whether the value is one of the declared variants.
func (v Value[K]) Known() bool { return v.known }

// String returns the wire name, or the raw string for unknown values.
func (v Value[K]) String() string { return v.raw }

// Is reports whether v is the known variant kind.
func (v Value[K]) Is(kind K) bool { return v.known && v.kind == kind }

// EncodeParams implements params.Value.
func (v Value[K]) EncodeParams(path string, pairs *params.Pairs) error {
	return params.String(v.raw).EncodeParams(path, pairs)
}
