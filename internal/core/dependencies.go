package core

// Dependencies returns the external dependencies declared for every available
// platform, flattened and de-duplicated in first-seen order.
func (s *Specification) Dependencies() ([]Dependency, error) {
	platforms, err := s.AvailablePlatforms()
	if err != nil {
		return nil, err
	}
	var all []Dependency
	for _, p := range platforms {
		deps, err := s.Consumer(p).Dependencies()
		if err != nil {
			return nil, err
		}
		all = append(all, deps...)
	}
	return uniqueDependencies(all), nil
}

// DependenciesOn returns the external dependencies declared for p.
func (s *Specification) DependenciesOn(p Platform) ([]Dependency, error) {
	return s.Consumer(p).Dependencies()
}

// SubspecDependencies returns the implicit dependencies of s on its own
// subspecs: the default subspecs when declared, otherwise every direct
// subspec. Each is locked to s's version.
func (s *Specification) SubspecDependencies() ([]Dependency, error) {
	return s.subspecDependencies(nil)
}

// SubspecDependenciesOn is SubspecDependencies restricted to subspecs
// supported on p.
func (s *Specification) SubspecDependenciesOn(p Platform) ([]Dependency, error) {
	return s.subspecDependencies(&p)
}

func (s *Specification) subspecDependencies(p *Platform) ([]Dependency, error) {
	candidates, err := s.implicitSubspecs()
	if err != nil {
		return nil, err
	}
	if p != nil {
		kept := candidates[:0]
		for _, c := range candidates {
			ok, err := c.SupportedOnPlatform(*p)
			if err != nil {
				return nil, err
			}
			if ok {
				kept = append(kept, c)
			}
		}
		candidates = kept
	}
	if len(candidates) == 0 {
		return []Dependency{}, nil
	}
	version, err := s.Version()
	if err != nil {
		return nil, err
	}
	deps := make([]Dependency, len(candidates))
	for i, c := range candidates {
		if version.IsZero() {
			deps[i] = NewDependency(c.Name())
			continue
		}
		deps[i] = NewDependency(c.Name(), ExactRequirement(version))
	}
	return deps, nil
}

func (s *Specification) implicitSubspecs() ([]*Specification, error) {
	defaults := s.DefaultSubspecs()
	if len(defaults) == 0 {
		return s.Subspecs(), nil
	}
	out := make([]*Specification, 0, len(defaults))
	for _, name := range defaults {
		sub, err := s.SubspecByName(s.Name() + Separator + name)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, nil
}

// DefaultSubspecs returns the local names of the subspecs s implicitly
// depends on, in declaration order.
func (s *Specification) DefaultSubspecs() []string {
	v, _ := s.attributes.Get(AttrDefaultSubspecs)
	return v.Strings()
}

// AllDependencies returns Dependencies followed by SubspecDependencies.
func (s *Specification) AllDependencies() ([]Dependency, error) {
	external, err := s.Dependencies()
	if err != nil {
		return nil, err
	}
	internal, err := s.SubspecDependencies()
	if err != nil {
		return nil, err
	}
	return append(external, internal...), nil
}

// AllDependenciesOn returns DependenciesOn followed by SubspecDependenciesOn.
func (s *Specification) AllDependenciesOn(p Platform) ([]Dependency, error) {
	external, err := s.DependenciesOn(p)
	if err != nil {
		return nil, err
	}
	internal, err := s.SubspecDependenciesOn(p)
	if err != nil {
		return nil, err
	}
	return append(external, internal...), nil
}
