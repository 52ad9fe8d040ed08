package loader

import (
	"fmt"
	"strings"

	"github.com/alycrisco/Core/internal/core"
)

// FromValue builds a specification tree from an evaluated document. The
// "name" and "subspecs" keys shape the tree; every other key is stored as a
// raw attribute in document order.
func FromValue(doc core.Value) (*core.Specification, error) {
	return build("", doc)
}

func build(path string, doc core.Value) (*core.Specification, error) {
	if doc.Kind() != core.KindMap {
		return nil, &InvalidManifestError{Path: path, Reason: fmt.Sprintf("expected a specification map, got %s", doc.Kind())}
	}
	name, err := docName(doc)
	if err != nil {
		return nil, &InvalidManifestError{Path: path, Reason: "root " + err.Error()}
	}
	root := core.New(name)
	if err := populate(path, root, doc); err != nil {
		return nil, err
	}
	return root, nil
}

func populate(path string, spec *core.Specification, doc core.Value) error {
	var err error
	doc.Range(func(key string, v core.Value) bool {
		switch key {
		case core.AttrName:
		case core.AttrSubspecs:
			err = addSubspecs(path, spec, v)
		default:
			spec.Store(key, v)
		}
		return err == nil
	})
	return err
}

func addSubspecs(path string, parent *core.Specification, v core.Value) error {
	if v.IsNull() {
		return nil
	}
	items, ok := v.AsList()
	if !ok {
		return &InvalidManifestError{Path: path, Reason: fmt.Sprintf("subspecs of %q must be a list, got %s", parent.Name(), v.Kind())}
	}
	for i, item := range items {
		if item.Kind() != core.KindMap {
			return &InvalidManifestError{Path: path, Reason: fmt.Sprintf("subspec #%d of %q must be a map, got %s", i+1, parent.Name(), item.Kind())}
		}
		name, err := docName(item)
		if err != nil {
			return &InvalidManifestError{Path: path, Reason: fmt.Sprintf("subspec #%d of %q %s", i+1, parent.Name(), err)}
		}
		if strings.Contains(name, core.Separator) {
			return &InvalidManifestError{Path: path, Reason: fmt.Sprintf("subspec name %q must not contain %q", name, core.Separator)}
		}
		if _, dup := parent.FindSubspec(parent.Name() + core.Separator + name); dup {
			return &InvalidManifestError{Path: path, Reason: fmt.Sprintf("duplicate subspec %q in %q", name, parent.Name())}
		}
		if err := populate(path, parent.NewSubspec(name), item); err != nil {
			return err
		}
	}
	return nil
}

func docName(doc core.Value) (string, error) {
	v, ok := doc.Get(core.AttrName)
	if !ok {
		return "", fmt.Errorf("has no name")
	}
	name, ok := v.AsString()
	if !ok || strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("name must be a non-empty string")
	}
	return name, nil
}
