package core

import (
	"strconv"
	"strings"
)

// Operator is a version requirement operator.
type Operator string

const (
	OpEqual        Operator = "="
	OpNotEqual     Operator = "!="
	OpGreater      Operator = ">"
	OpGreaterEqual Operator = ">="
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
	OpPessimistic  Operator = "~>"
)

// Longest operators first so ">=" is not read as ">".
var operators = []Operator{OpGreaterEqual, OpLessEqual, OpNotEqual, OpPessimistic, OpEqual, OpGreater, OpLess}

// Requirement constrains the versions a dependency accepts.
type Requirement struct {
	Op      Operator
	Version Version
}

// ParseRequirement parses "~> 1.2", ">= 1.0", "1.0" (an implied "="), and so on.
func ParseRequirement(s string) (Requirement, error) {
	raw := strings.TrimSpace(s)
	op := OpEqual
	for _, candidate := range operators {
		if strings.HasPrefix(raw, string(candidate)) {
			op = candidate
			raw = strings.TrimSpace(strings.TrimPrefix(raw, string(candidate)))
			break
		}
	}
	v, err := ParseVersion(raw)
	if err != nil {
		return Requirement{}, &ParseError{Input: s, Reason: "not a version requirement"}
	}
	return Requirement{Op: op, Version: v}, nil
}

// ExactRequirement returns a requirement matching only v.
func ExactRequirement(v Version) Requirement {
	return Requirement{Op: OpEqual, Version: v}
}

// String returns the requirement in "op version" form.
func (r Requirement) String() string {
	return string(r.Op) + " " + r.Version.String()
}

// SatisfiedBy reports whether v meets the requirement.
func (r Requirement) SatisfiedBy(v Version) bool {
	c := v.Compare(r.Version)
	switch r.Op {
	case OpEqual:
		return c == 0
	case OpNotEqual:
		return c != 0
	case OpGreater:
		return c > 0
	case OpGreaterEqual:
		return c >= 0
	case OpLess:
		return c < 0
	case OpLessEqual:
		return c <= 0
	case OpPessimistic:
		return c >= 0 && v.Compare(bump(r.Version)) < 0
	}
	return false
}

// bump returns the exclusive upper bound of a pessimistic requirement:
// "1.2.3" -> "1.3", "1.2" -> "2", "1" -> "2".
func bump(v Version) Version {
	segments := v.Segments()
	if len(segments) > 1 {
		segments = segments[:len(segments)-1]
	}
	segments[len(segments)-1]++
	parts := make([]string, len(segments))
	for i, n := range segments {
		parts[i] = strconv.Itoa(n)
	}
	return Version{base: strings.Join(parts, ".")}
}

// Dependency is a named requirement on another specification.
type Dependency struct {
	Name         string
	Requirements []Requirement
}

// NewDependency returns a dependency on name constrained by reqs.
func NewDependency(name string, reqs ...Requirement) Dependency {
	return Dependency{Name: name, Requirements: reqs}
}

// RootName returns the name of the root specification the dependency targets.
func (d Dependency) RootName() string {
	return RootName(d.Name)
}

// SatisfiedBy reports whether v meets every requirement of d.
func (d Dependency) SatisfiedBy(v Version) bool {
	for _, r := range d.Requirements {
		if !r.SatisfiedBy(v) {
			return false
		}
	}
	return true
}

// Equal reports whether d and other name the same target with the same
// requirements in the same order.
func (d Dependency) Equal(other Dependency) bool {
	if d.Name != other.Name || len(d.Requirements) != len(other.Requirements) {
		return false
	}
	for i := range d.Requirements {
		if d.Requirements[i] != other.Requirements[i] {
			return false
		}
	}
	return true
}

// String renders "Name" or "Name (~> 1.0, < 2)".
func (d Dependency) String() string {
	if len(d.Requirements) == 0 {
		return d.Name
	}
	reqs := make([]string, len(d.Requirements))
	for i, r := range d.Requirements {
		reqs[i] = r.String()
	}
	return d.Name + " (" + strings.Join(reqs, ", ") + ")"
}

// dependenciesFromValue reads a {name: requirement | [requirement...] | null} map.
func dependenciesFromValue(v Value) ([]Dependency, error) {
	if !v.IsNull() && v.Kind() != KindMap {
		return nil, &ParseError{Input: v.String(), Reason: "dependencies must map names to requirements"}
	}
	var (
		out []Dependency
		err error
	)
	v.Range(func(name string, raw Value) bool {
		var reqs []Requirement
		for _, s := range raw.Strings() {
			var r Requirement
			r, err = ParseRequirement(s)
			if err != nil {
				return false
			}
			reqs = append(reqs, r)
		}
		out = append(out, NewDependency(name, reqs...))
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// uniqueDependencies drops later duplicates, keeping first-seen order.
func uniqueDependencies(deps []Dependency) []Dependency {
	seen := make(map[string]struct{}, len(deps))
	out := make([]Dependency, 0, len(deps))
	for _, d := range deps {
		key := d.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, d)
	}
	return out
}
