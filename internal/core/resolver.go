package core

// SupportedPlatformNames returns the platform names s declares. A node without
// its own declaration uses its nearest ancestor's; nil means every known
// platform.
func (s *Specification) SupportedPlatformNames() []string {
	for n := s; n != nil; n = n.parent {
		if names := n.ownPlatformNames(); len(names) > 0 {
			return names
		}
	}
	return nil
}

func (s *Specification) ownPlatformNames() []string {
	v, ok := s.attributes.Get(AttrPlatforms)
	if !ok {
		return nil
	}
	if v.Kind() == KindMap {
		return v.Keys()
	}
	return v.Strings()
}

// AvailablePlatforms expands SupportedPlatformNames, or the full catalog,
// into platforms carrying their resolved deployment targets.
func (s *Specification) AvailablePlatforms() ([]Platform, error) {
	names := s.SupportedPlatformNames()
	if names == nil {
		names = KnownPlatforms
	}
	out := make([]Platform, 0, len(names))
	for _, name := range names {
		p := Platform{Name: name}
		if target, ok := s.DeploymentTarget(name); ok {
			v, err := ParseVersion(target)
			if err != nil {
				return nil, err
			}
			p.DeploymentTarget = v
		}
		out = append(out, p)
	}
	return out, nil
}

// DeploymentTarget returns the deployment target for platformName. A node's
// own value wins: first attributes[platformName]["deployment_target"], then
// the target given in its platforms declaration. Otherwise the nearest
// ancestor's value applies.
func (s *Specification) DeploymentTarget(platformName string) (string, bool) {
	for n := s; n != nil; n = n.parent {
		if target, ok := n.ownDeploymentTarget(platformName); ok {
			return target, true
		}
	}
	return "", false
}

func (s *Specification) ownDeploymentTarget(platformName string) (string, bool) {
	if v, ok := s.attributes.GetForPlatform(platformName, AttrDeploymentTarget); ok {
		if target, ok := scalarString(v); ok {
			return target, true
		}
	}
	if platforms, ok := s.attributes.Get(AttrPlatforms); ok {
		if v, ok := platforms.Get(platformName); ok {
			if target, ok := scalarString(v); ok {
				return target, true
			}
		}
	}
	return "", false
}

// scalarString accepts strings and numbers, since manifests often write
// deployment targets such as 9.0 unquoted.
func scalarString(v Value) (string, bool) {
	switch v.Kind() {
	case KindString:
		s, _ := v.AsString()
		return s, s != ""
	case KindInt, KindFloat:
		return v.String(), true
	}
	return "", false
}

// SupportedOnPlatform reports whether p supports any of s's available
// platforms.
func (s *Specification) SupportedOnPlatform(p Platform) (bool, error) {
	available, err := s.AvailablePlatforms()
	if err != nil {
		return false, err
	}
	for _, a := range available {
		if p.Supports(a) {
			return true, nil
		}
	}
	return false, nil
}
