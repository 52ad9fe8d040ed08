package core

// Consumer is a platform-scoped, read-only view of a specification that
// resolves attribute values with platform overrides and inheritance applied.
type Consumer struct {
	spec     *Specification
	platform Platform
}

// Consumer returns the view of s for platform p.
func (s *Specification) Consumer(p Platform) *Consumer {
	return &Consumer{spec: s, platform: p}
}

// Spec returns the viewed specification.
func (c *Consumer) Spec() *Specification { return c.spec }

// Platform returns the platform the view resolves for.
func (c *Consumer) Platform() Platform { return c.platform }

// Value resolves attribute name for the consumer's platform. The node's
// top-level value is merged with its platform-scoped value; for inherited
// attributes each ancestor's value is merged underneath, root first. An unset
// attribute resolves to its default.
func (c *Consumer) Value(name string) (Value, error) {
	attr, ok := LookupAttribute(name)
	if !ok {
		return Value{}, &UnknownAttributeError{Name: name}
	}
	return c.resolve(attr), nil
}

func (c *Consumer) resolve(attr *AttributeSpec) Value {
	chain := []*Specification{c.spec}
	if attr.Inherited {
		chain = chain[:0]
		for n := c.spec; n != nil; n = n.parent {
			chain = append(chain, n)
		}
		for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
			chain[i], chain[j] = chain[j], chain[i]
		}
	}
	var value Value
	for _, n := range chain {
		value = mergeValues(attr, value, c.rawValue(n, attr))
	}
	if value.IsNull() {
		return attr.defaultValue()
	}
	return value
}

func (c *Consumer) rawValue(n *Specification, attr *AttributeSpec) Value {
	value, _ := n.attributes.Get(attr.Key)
	value = attr.prepare(value)
	if attr.MultiPlatform {
		if scoped, ok := n.attributes.GetForPlatform(c.platform.Name, attr.Key); ok {
			value = mergeValues(attr, value, attr.prepare(scoped))
		}
	}
	return value
}

// mergeValues combines a general value with a more specific one. Scalars and
// bools take the specific value, lists concatenate, maps merge key by key.
func mergeValues(attr *AttributeSpec, general, specific Value) Value {
	if specific.IsNull() {
		return general
	}
	if general.IsNull() {
		return specific
	}
	switch attr.Container {
	case ContainerList:
		items, _ := general.Clone().AsList()
		for _, v := range asList(specific) {
			if !v.IsNull() {
				items = append(items, v.Clone())
			}
		}
		return ListValue(items...)
	case ContainerMap:
		if general.Kind() != KindMap || specific.Kind() != KindMap {
			return specific
		}
		out := general.Clone()
		specific.Range(func(key string, v Value) bool {
			if old, ok := out.Get(key); ok {
				out.Set(key, mergeEntry(old, v))
			} else {
				out.Set(key, v.Clone())
			}
			return true
		})
		return out
	}
	return specific
}

// mergeEntry merges one map entry: lists concatenate without duplicates,
// anything else is replaced.
func mergeEntry(old, v Value) Value {
	if old.Kind() != KindList || v.Kind() != KindList {
		return v.Clone()
	}
	items, _ := old.Clone().AsList()
	for _, item := range asList(v) {
		dup := false
		for _, existing := range items {
			if existing.Equal(item) {
				dup = true
				break
			}
		}
		if !dup {
			items = append(items, item.Clone())
		}
	}
	return ListValue(items...)
}

func asList(v Value) []Value {
	if items, ok := v.AsList(); ok {
		return items
	}
	return []Value{v}
}

// Dependencies returns the externally declared dependencies for the
// consumer's platform, or an empty list when none are declared.
func (c *Consumer) Dependencies() ([]Dependency, error) {
	attr, _ := LookupAttribute(AttrDependencies)
	deps, err := dependenciesFromValue(c.resolve(attr))
	if err != nil {
		return nil, err
	}
	if deps == nil {
		deps = []Dependency{}
	}
	return deps, nil
}

// DeploymentTarget returns the resolved deployment target for the platform.
func (c *Consumer) DeploymentTarget() (string, bool) {
	return c.spec.DeploymentTarget(c.platform.Name)
}

func (c *Consumer) strings(name string) []string {
	attr, _ := LookupAttribute(name)
	return c.resolve(attr).Strings()
}

// Frameworks returns the system frameworks to link.
func (c *Consumer) Frameworks() []string { return c.strings("frameworks") }

// WeakFrameworks returns the frameworks to link weakly.
func (c *Consumer) WeakFrameworks() []string { return c.strings("weak_frameworks") }

// Libraries returns the system libraries to link.
func (c *Consumer) Libraries() []string { return c.strings("libraries") }

// CompilerFlags returns the flags passed to the compiler.
func (c *Consumer) CompilerFlags() []string { return c.strings("compiler_flags") }

// SourceFiles returns the source file patterns.
func (c *Consumer) SourceFiles() []string { return c.strings("source_files") }

// PublicHeaderFiles returns the public header patterns.
func (c *Consumer) PublicHeaderFiles() []string { return c.strings("public_header_files") }

// Resources returns the resource patterns.
func (c *Consumer) Resources() []string { return c.strings("resources") }

// RequiresARC reports whether sources compile with ARC.
func (c *Consumer) RequiresARC() bool {
	attr, _ := LookupAttribute("requires_arc")
	b, ok := c.resolve(attr).AsBool()
	return ok && b
}
