// Package core implements the specification model: the attribute store, the
// subspec tree, platform resolution, and dependency extraction.
//
// A specification tree is built once and then only queried. Queries never
// mutate state, so a fully built tree may be read from several goroutines as
// long as construction happens-before the first concurrent read.
package core

import (
	"fmt"
	"strings"
)

// Separator joins the segments of a subspec's full name.
const Separator = "/"

// Specification is one node of a manifest tree: the root describes a
// distributable unit, its descendants describe optional sub-modules.
// A node owns its subspecs; the parent link is a back-reference only.
type Specification struct {
	attributes *Attributes
	parent     *Specification
	subspecs   []*Specification

	preInstall  *PreInstallHook
	postInstall *PostInstallHook

	// definedInFile is only ever set on a root.
	definedInFile string
}

// New returns a root specification named name.
func New(name string) *Specification {
	s := &Specification{attributes: NewAttributes()}
	s.attributes.Store(AttrName, name)
	return s
}

// NewSubspec creates a subspec with the local name name, appends it to s's
// subspecs, and returns it.
func (s *Specification) NewSubspec(name string) *Specification {
	child := &Specification{attributes: NewAttributes(), parent: s}
	child.attributes.Store(AttrName, name)
	s.subspecs = append(s.subspecs, child)
	return child
}

// Attributes returns the node's own attribute store.
func (s *Specification) Attributes() *Attributes {
	return s.attributes
}

// Store writes a raw attribute on this node.
func (s *Specification) Store(name string, value any) {
	s.attributes.Store(name, value)
}

// StoreForPlatform writes a raw platform-scoped attribute on this node.
func (s *Specification) StoreForPlatform(platform, name string, value any) {
	s.attributes.StoreForPlatform(platform, name, value)
}

// AddDependency declares a dependency on name, optionally scoped to platform.
// Requirements are validated before anything is written.
func (s *Specification) AddDependency(name, platform string, requirements ...string) error {
	for _, r := range requirements {
		if _, err := ParseRequirement(r); err != nil {
			return err
		}
	}
	var (
		current Value
		ok      bool
	)
	if platform == "" {
		current, ok = s.attributes.Get(AttrDependencies)
	} else {
		current, ok = s.attributes.GetForPlatform(platform, AttrDependencies)
	}
	deps := NewMap()
	if ok && current.Kind() == KindMap {
		deps = current.Clone()
	}
	deps.Set(name, StringList(requirements...))
	return StoreAttribute(s, AttrDependencies, deps, platform)
}

// BaseName returns the node's own name segment.
func (s *Specification) BaseName() string {
	v, _ := s.attributes.Get(AttrName)
	name, _ := v.AsString()
	return name
}

// Name returns the full hierarchical name, e.g. "Pod/Core/Extras".
func (s *Specification) Name() string {
	var segments []string
	for n := s; n != nil; n = n.parent {
		segments = append(segments, n.BaseName())
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return strings.Join(segments, Separator)
}

// Version returns the root's declared version. Subspecs always share it.
// A root without a version returns the zero Version.
func (s *Specification) Version() (Version, error) {
	root := s.Root()
	v, ok := root.attributes.Get(AttrVersion)
	if !ok || v.IsNull() {
		return Version{}, nil
	}
	raw, ok := v.AsString()
	if !ok {
		raw = v.String()
	}
	return ParseVersion(raw)
}

// Parent returns the owning node, or nil for a root.
func (s *Specification) Parent() *Specification {
	return s.parent
}

// Root walks parent links up to the root.
func (s *Specification) Root() *Specification {
	n := s
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// IsRoot reports whether s has no parent.
func (s *Specification) IsRoot() bool {
	return s.parent == nil
}

// IsSubspec reports whether s has a parent.
func (s *Specification) IsSubspec() bool {
	return s.parent != nil
}

// Subspecs returns the direct subspecs in declaration order.
func (s *Specification) Subspecs() []*Specification {
	out := make([]*Specification, len(s.subspecs))
	copy(out, s.subspecs)
	return out
}

// RecursiveSubspecs returns every descendant, depth first: each subspec is
// followed by its own descendants before its next sibling.
func (s *Specification) RecursiveSubspecs() []*Specification {
	var out []*Specification
	stack := make([]*Specification, 0, len(s.subspecs))
	for i := len(s.subspecs) - 1; i >= 0; i-- {
		stack = append(stack, s.subspecs[i])
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n)
		for i := len(n.subspecs) - 1; i >= 0; i-- {
			stack = append(stack, n.subspecs[i])
		}
	}
	return out
}

// SubspecByName resolves a full name that starts with s's own name, e.g.
// "Pod/Core/Extras" on the node named "Pod". An empty name or s's own name
// yields s. Unresolvable segments fail with a *LookupError.
func (s *Specification) SubspecByName(relativeName string) (*Specification, error) {
	n := s
	for {
		name := n.Name()
		if relativeName == "" || relativeName == name {
			return n, nil
		}
		if strings.EqualFold(relativeName, name) {
			return nil, &LookupError{Name: relativeName, Segment: relativeName, Searched: name,
				Reason: "the requested name has a different case"}
		}
		prefix := name + Separator
		if !strings.HasPrefix(relativeName, prefix) {
			reason := "name is outside this specification"
			if strings.HasPrefix(strings.ToLower(relativeName), strings.ToLower(prefix)) {
				reason = "the requested name has a different case"
			}
			return nil, &LookupError{Name: relativeName, Segment: relativeName, Searched: name, Reason: reason}
		}
		segment, _, _ := strings.Cut(strings.TrimPrefix(relativeName, prefix), Separator)
		next := n.childNamed(prefix + segment)
		if next == nil {
			err := &LookupError{Name: relativeName, Segment: segment, Searched: name}
			if n.childNamedFold(prefix+segment) != nil {
				err.Reason = "the requested name has a different case"
			}
			return nil, err
		}
		n = next
	}
}

// FindSubspec is SubspecByName without the error detail.
func (s *Specification) FindSubspec(relativeName string) (*Specification, bool) {
	found, err := s.SubspecByName(relativeName)
	return found, err == nil
}

func (s *Specification) childNamed(fullName string) *Specification {
	for _, c := range s.subspecs {
		if c.Name() == fullName {
			return c
		}
	}
	return nil
}

func (s *Specification) childNamedFold(fullName string) *Specification {
	for _, c := range s.subspecs {
		if strings.EqualFold(c.Name(), fullName) {
			return c
		}
	}
	return nil
}

// DefinedInFile returns the manifest path of the tree s belongs to.
func (s *Specification) DefinedInFile() string {
	return s.Root().definedInFile
}

// SetDefinedInFile records the manifest path. Only roots accept it.
func (s *Specification) SetDefinedInFile(path string) error {
	if s.IsSubspec() {
		return &InvalidOperationError{Op: "set defined-in-file", Spec: s.Name(), Reason: "only the root specification records its file"}
	}
	s.definedInFile = path
	return nil
}

// Equal reports whether s and other hold equal attributes, recursively equal
// subspec trees, and the very same hooks.
func (s *Specification) Equal(other *Specification) bool {
	if s == nil || other == nil {
		return s == other
	}
	if !s.attributes.Equal(other.attributes) {
		return false
	}
	if s.preInstall != other.preInstall || s.postInstall != other.postInstall {
		return false
	}
	if len(s.subspecs) != len(other.subspecs) {
		return false
	}
	for i := range s.subspecs {
		if !s.subspecs[i].Equal(other.subspecs[i]) {
			return false
		}
	}
	return true
}

// String returns the display form "<name> (<version>)", or just the name when
// no usable version is declared.
func (s *Specification) String() string {
	name := s.Name()
	if name == "" {
		name = "No-name"
	}
	v, err := s.Version()
	if err != nil || v.IsZero() {
		return name
	}
	return name + " (" + v.String() + ")"
}

// GoString returns a short debug tag.
func (s *Specification) GoString() string {
	return fmt.Sprintf("&core.Specification{Name: %q}", s.Name())
}

// ToValue returns the node's attributes plus a "subspecs" list holding each
// subspec's own ToValue, preserving order.
func (s *Specification) ToValue() Value {
	out := s.attributes.ToValue()
	if len(s.subspecs) > 0 {
		items := make([]Value, len(s.subspecs))
		for i, c := range s.subspecs {
			items[i] = c.ToValue()
		}
		out.Set(AttrSubspecs, ListValue(items...))
	}
	return out
}
