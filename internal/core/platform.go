package core

import (
	"strings"
)

// Known platform identifiers, in catalog order.
const (
	PlatformIOS      = "ios"
	PlatformOSX      = "osx"
	PlatformTVOS     = "tvos"
	PlatformWatchOS  = "watchos"
	PlatformVisionOS = "visionos"
)

// KnownPlatforms is the catalog used when a specification declares no platforms.
var KnownPlatforms = []string{PlatformIOS, PlatformOSX, PlatformTVOS, PlatformWatchOS, PlatformVisionOS}

var displayNames = map[string]string{
	PlatformIOS:      "iOS",
	PlatformOSX:      "macOS",
	PlatformTVOS:     "tvOS",
	PlatformWatchOS:  "watchOS",
	PlatformVisionOS: "visionOS",
}

// IsKnownPlatform reports whether name is in the platform catalog.
func IsKnownPlatform(name string) bool {
	_, ok := displayNames[name]
	return ok
}

// Platform is a target environment with an optional deployment target.
type Platform struct {
	Name string

	// DeploymentTarget is the minimum OS version; zero means any.
	DeploymentTarget Version
}

// NewPlatform returns a platform without a deployment target.
func NewPlatform(name string) Platform {
	return Platform{Name: name}
}

// ParsePlatform parses "ios" or "ios@12.0".
func ParsePlatform(s string) (Platform, error) {
	name, target, found := strings.Cut(strings.TrimSpace(s), "@")
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Platform{}, &ParseError{Input: s, Reason: "missing platform name"}
	}
	p := Platform{Name: name}
	if found {
		v, err := ParseVersion(target)
		if err != nil {
			return Platform{}, &ParseError{Input: s, Reason: "invalid deployment target"}
		}
		p.DeploymentTarget = v
	}
	return p, nil
}

// Supports reports whether something built for other can run on p: the names
// must match, and when both carry a deployment target p's must be at least
// other's. A platform without a deployment target supports any target of the
// same family.
func (p Platform) Supports(other Platform) bool {
	if p.Name != other.Name {
		return false
	}
	if p.DeploymentTarget.IsZero() || other.DeploymentTarget.IsZero() {
		return true
	}
	return p.DeploymentTarget.Compare(other.DeploymentTarget) >= 0
}

// DisplayName returns the marketing name, e.g. "iOS".
func (p Platform) DisplayName() string {
	if name, ok := displayNames[p.Name]; ok {
		return name
	}
	return p.Name
}

// String renders "iOS 12.0" or "iOS".
func (p Platform) String() string {
	if p.DeploymentTarget.IsZero() {
		return p.DisplayName()
	}
	return p.DisplayName() + " " + p.DeploymentTarget.String()
}
