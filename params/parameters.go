// Package params passes a single typed value into and out of dialogs.
//
// Values live in a Parameters bag keyed by the name of their type, so a
// dialog that takes a Filename reads it back with TryGet[Filename] and the
// caller never spells the key out.
package params

import (
	"fmt"
	"strings"
)

// Parameters is an ordered string-keyed bag of dialog values.
// A nil *Parameters reads as an empty bag; like a nil map, it cannot be
// written to. The zero Parameters value is ready to use.
type Parameters struct {
	keys   []string
	values map[string]any
}

// NewParameters returns an empty bag.
func NewParameters() *Parameters {
	return &Parameters{values: make(map[string]any)}
}

// Add stores v under key. An existing key keeps its position and gets the new value.
// Add panics on a nil *Parameters.
func (p *Parameters) Add(key string, v any) {
	if p == nil {
		panic(errNilWrite)
	}
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = v
}

func (p *Parameters) Get(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[key]
	return v, ok
}

func (p *Parameters) ContainsKey(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Keys returns the keys in insertion order.
func (p *Parameters) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

func (p *Parameters) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Clone copies the bag. Values are copied shallowly.
func (p *Parameters) Clone() *Parameters {
	c := NewParameters()
	if p == nil {
		return c
	}
	for _, k := range p.keys {
		c.Add(k, p.values[k])
	}
	return c
}

func (p *Parameters) String() string {
	if p.Len() == 0 {
		return "{}"
	}
	parts := make([]string, 0, len(p.keys))
	for _, k := range p.keys {
		parts = append(parts, fmt.Sprintf("%s: %v", k, p.values[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
