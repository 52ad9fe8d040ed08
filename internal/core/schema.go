package core

// Container describes the shape of an attribute value and how inherited or
// platform-scoped values merge into it.
type Container int

const (
	// ContainerScalar values are replaced by the more specific value.
	ContainerScalar Container = iota
	// ContainerBool values are replaced by the more specific value.
	ContainerBool
	// ContainerList values are concatenated, general before specific.
	ContainerList
	// ContainerMap values are merged key by key, specific wins.
	ContainerMap
)

// AttributeSpec declares one manifest attribute.
type AttributeSpec struct {
	// Name is the attribute's writer name.
	Name string

	// Key is the attribute-store key the value is written under.
	Key string

	// Singular is an optional alias writing to the same key.
	Singular string

	Container Container

	// MultiPlatform attributes may also be written per platform.
	MultiPlatform bool

	// Inherited attributes merge ancestor values into subspec values.
	Inherited bool

	// RootOnly attributes cannot be written on subspecs.
	RootOnly bool

	// Default is used when no value resolves. Lists and maps default to empty.
	Default Value
}

// Attribute keys with structural meaning.
const (
	AttrName             = "name"
	AttrVersion          = "version"
	AttrPlatforms        = "platforms"
	AttrDeploymentTarget = "deployment_target"
	AttrDependencies     = "dependencies"
	AttrDefaultSubspecs  = "default_subspecs"
	AttrSubspecs         = "subspecs"
)

// Schema lists every attribute a specification understands.
var Schema = []AttributeSpec{
	{Name: AttrName, Key: AttrName, Container: ContainerScalar},
	{Name: AttrVersion, Key: AttrVersion, Container: ContainerScalar, RootOnly: true},
	{Name: "summary", Key: "summary", Container: ContainerScalar, RootOnly: true},
	{Name: "description", Key: "description", Container: ContainerScalar, RootOnly: true},
	{Name: "homepage", Key: "homepage", Container: ContainerScalar, RootOnly: true},
	{Name: "license", Key: "license", Container: ContainerMap, RootOnly: true},
	{Name: "authors", Key: "authors", Singular: "author", Container: ContainerMap, RootOnly: true},
	{Name: "source", Key: "source", Container: ContainerMap, RootOnly: true},
	{Name: "social_media_url", Key: "social_media_url", Container: ContainerScalar, RootOnly: true},
	{Name: "documentation_url", Key: "documentation_url", Container: ContainerScalar, RootOnly: true},
	{Name: "prepare_command", Key: "prepare_command", Container: ContainerScalar, RootOnly: true},
	{Name: "deprecated", Key: "deprecated", Container: ContainerBool, RootOnly: true, Default: BoolValue(false)},
	{Name: AttrPlatforms, Key: AttrPlatforms, Singular: "platform", Container: ContainerMap},
	{Name: AttrDeploymentTarget, Key: AttrDeploymentTarget, Container: ContainerScalar, MultiPlatform: true, Inherited: true},
	{Name: AttrDefaultSubspecs, Key: AttrDefaultSubspecs, Singular: "default_subspec", Container: ContainerList},
	{Name: AttrDependencies, Key: AttrDependencies, Singular: "dependency", Container: ContainerMap, MultiPlatform: true, Inherited: true},
	{Name: "frameworks", Key: "frameworks", Singular: "framework", Container: ContainerList, MultiPlatform: true, Inherited: true},
	{Name: "weak_frameworks", Key: "weak_frameworks", Singular: "weak_framework", Container: ContainerList, MultiPlatform: true, Inherited: true},
	{Name: "libraries", Key: "libraries", Singular: "library", Container: ContainerList, MultiPlatform: true, Inherited: true},
	{Name: "compiler_flags", Key: "compiler_flags", Singular: "compiler_flag", Container: ContainerList, MultiPlatform: true, Inherited: true},
	{Name: "xcconfig", Key: "xcconfig", Container: ContainerMap, MultiPlatform: true, Inherited: true},
	{Name: "requires_arc", Key: "requires_arc", Container: ContainerBool, MultiPlatform: true, Inherited: true, Default: BoolValue(true)},
	{Name: "header_dir", Key: "header_dir", Container: ContainerScalar, MultiPlatform: true, Inherited: true},
	{Name: "prefix_header_contents", Key: "prefix_header_contents", Container: ContainerScalar, MultiPlatform: true, Inherited: true},
	{Name: "source_files", Key: "source_files", Container: ContainerList, MultiPlatform: true},
	{Name: "public_header_files", Key: "public_header_files", Container: ContainerList, MultiPlatform: true},
	{Name: "exclude_files", Key: "exclude_files", Container: ContainerList, MultiPlatform: true},
	{Name: "preserve_paths", Key: "preserve_paths", Singular: "preserve_path", Container: ContainerList, MultiPlatform: true},
	{Name: "resources", Key: "resources", Singular: "resource", Container: ContainerList, MultiPlatform: true},
}

var schemaIndex = func() map[string]*AttributeSpec {
	idx := make(map[string]*AttributeSpec, len(Schema)*2)
	for i := range Schema {
		attr := &Schema[i]
		idx[attr.Name] = attr
		if attr.Singular != "" {
			idx[attr.Singular] = attr
		}
	}
	return idx
}()

// LookupAttribute finds an attribute by writer name or singular alias.
func LookupAttribute(name string) (*AttributeSpec, bool) {
	attr, ok := schemaIndex[name]
	return attr, ok
}

// defaultValue returns the value an unset attribute resolves to.
func (a *AttributeSpec) defaultValue() Value {
	if !a.Default.IsNull() {
		return a.Default
	}
	switch a.Container {
	case ContainerList:
		return ListValue()
	case ContainerMap:
		return NewMap()
	}
	return Null()
}

// prepare normalizes shorthand forms written through the schema: a bare
// platform name becomes {name: null}, a scalar list value becomes a
// one-element list.
func (a *AttributeSpec) prepare(v Value) Value {
	switch {
	case a.Key == AttrPlatforms && v.Kind() == KindString:
		s, _ := v.AsString()
		return MapOf(s, nil)
	case a.Container == ContainerList && v.Kind() != KindList && !v.IsNull():
		return ListValue(v)
	}
	return v
}

// StoreAttribute is the single entry point for writing a schema attribute.
// An empty platform writes the top-level value. It fails with
// UnknownAttributeError for names outside the schema and with
// InvalidOperationError for root-only attributes on subspecs, platform-scoped
// writes of attributes that are not multi-platform, and unknown platforms.
func StoreAttribute(spec *Specification, name string, value any, platform string) error {
	attr, ok := LookupAttribute(name)
	if !ok {
		return &UnknownAttributeError{Name: name}
	}
	if attr.RootOnly && spec.IsSubspec() {
		return &InvalidOperationError{Op: "set " + attr.Name, Spec: spec.Name(), Reason: "attribute can only be set on the root specification"}
	}
	v := attr.prepare(FromAny(value))
	if platform == "" {
		spec.attributes.Store(attr.Key, v)
		return nil
	}
	if !attr.MultiPlatform {
		return &InvalidOperationError{Op: "set " + attr.Name, Spec: spec.Name(), Reason: "attribute is not platform specific"}
	}
	if !IsKnownPlatform(platform) {
		return &InvalidOperationError{Op: "set " + attr.Name, Spec: spec.Name(), Reason: "unknown platform " + platform}
	}
	spec.attributes.StoreForPlatform(platform, attr.Key, v)
	return nil
}
