package core

// PreInstallFunc runs before a pod is installed. pod and targetDefinition are
// opaque installer objects passed through untouched.
type PreInstallFunc func(pod, targetDefinition any) error

// PostInstallFunc runs after installation with the opaque target installer.
type PostInstallFunc func(targetInstaller any) error

// PreInstallHook boxes a PreInstallFunc so hooks compare by identity.
type PreInstallHook struct {
	fn PreInstallFunc
}

// NewPreInstallHook boxes fn.
func NewPreInstallHook(fn PreInstallFunc) *PreInstallHook {
	return &PreInstallHook{fn: fn}
}

// PostInstallHook boxes a PostInstallFunc so hooks compare by identity.
type PostInstallHook struct {
	fn PostInstallFunc
}

// NewPostInstallHook boxes fn.
func NewPostInstallHook(fn PostInstallFunc) *PostInstallHook {
	return &PostInstallHook{fn: fn}
}

// SetPreInstallHook attaches h to this node only. Hooks are not inherited.
func (s *Specification) SetPreInstallHook(h *PreInstallHook) {
	s.preInstall = h
}

// SetPostInstallHook attaches h to this node only. Hooks are not inherited.
func (s *Specification) SetPostInstallHook(h *PostInstallHook) {
	s.postInstall = h
}

// PreInstall runs the attached pre-install hook and reports whether one ran.
// The hook's error is returned as is.
func (s *Specification) PreInstall(pod, targetDefinition any) (bool, error) {
	if s.preInstall == nil || s.preInstall.fn == nil {
		return false, nil
	}
	return true, s.preInstall.fn(pod, targetDefinition)
}

// PostInstall runs the attached post-install hook and reports whether one ran.
// The hook's error is returned as is.
func (s *Specification) PostInstall(targetInstaller any) (bool, error) {
	if s.postInstall == nil || s.postInstall.fn == nil {
		return false, nil
	}
	return true, s.postInstall.fn(targetInstaller)
}
