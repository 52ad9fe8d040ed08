package core

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Attributes is the ordered attribute store owned by one Specification.
// Platform-scoped values live in a nested map stored under the platform name.
type Attributes struct {
	values *orderedmap.OrderedMap[string, Value]
}

// NewAttributes returns an empty store.
func NewAttributes() *Attributes {
	return &Attributes{values: orderedmap.New[string, Value]()}
}

// Store writes value under name, replacing any previous value.
// Map keys inside value are converted to strings at every depth. The store
// keeps its own copy, so later writes never reach the caller's value.
func (a *Attributes) Store(name string, value any) {
	a.values.Set(name, FromAny(value).Clone())
}

// StoreForPlatform writes value under name inside the map kept for platform,
// creating that map on first use.
func (a *Attributes) StoreForPlatform(platform, name string, value any) {
	scoped, ok := a.values.Get(platform)
	if !ok || scoped.Kind() != KindMap {
		scoped = NewMap()
	} else {
		scoped = scoped.Clone()
	}
	scoped.m.Set(name, FromAny(value).Clone())
	a.values.Set(platform, scoped)
}

// Get returns the top-level value stored under name.
func (a *Attributes) Get(name string) (Value, bool) {
	return a.values.Get(name)
}

// GetForPlatform returns the value stored under name for platform.
func (a *Attributes) GetForPlatform(platform, name string) (Value, bool) {
	scoped, ok := a.values.Get(platform)
	if !ok {
		return Value{}, false
	}
	return scoped.Get(name)
}

// Keys returns the top-level attribute names in insertion order.
func (a *Attributes) Keys() []string {
	keys := make([]string, 0, a.values.Len())
	for pair := a.values.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the number of top-level attributes.
func (a *Attributes) Len() int {
	return a.values.Len()
}

// Equal reports whether both stores hold equal values under the same names.
func (a *Attributes) Equal(other *Attributes) bool {
	if a == nil || other == nil {
		return a == other
	}
	if a.values.Len() != other.values.Len() {
		return false
	}
	for pair := a.values.Oldest(); pair != nil; pair = pair.Next() {
		o, ok := other.values.Get(pair.Key)
		if !ok || !pair.Value.Equal(o) {
			return false
		}
	}
	return true
}

// ToValue returns a deep copy of the store as an ordered map value.
func (a *Attributes) ToValue() Value {
	out := NewMap()
	for pair := a.values.Oldest(); pair != nil; pair = pair.Next() {
		out.m.Set(pair.Key, pair.Value.Clone())
	}
	return out
}
