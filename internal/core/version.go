package core

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

const headPrefix = "HEAD based on "

var versionPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*(-[0-9A-Za-z-]+(\.[0-9A-Za-z-]+)*)?$`)

// Version is a dotted numeric version with an optional pre-release suffix.
// A head version ("HEAD based on 1.0") points at the tip of the source
// repository and is described relative to its base release.
// The zero Version means no version was declared.
type Version struct {
	base string
	head bool
}

// ParseVersion parses "1.0", "2.3.4-beta.1", "1.0.0.1" or "HEAD based on 1.0".
func ParseVersion(s string) (Version, error) {
	raw := strings.TrimSpace(s)
	head := false
	if strings.HasPrefix(raw, headPrefix) {
		head = true
		raw = strings.TrimSpace(strings.TrimPrefix(raw, headPrefix))
	}
	if !versionPattern.MatchString(raw) {
		return Version{}, &ParseError{Input: s, Reason: "not a version"}
	}
	return Version{base: raw, head: head}, nil
}

// MustParseVersion is like ParseVersion but panics on malformed input.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the canonical description, e.g. "1.0" or "HEAD based on 1.0".
func (v Version) String() string {
	if v.head {
		return headPrefix + v.base
	}
	return v.base
}

// Base returns the release the version is based on, without the head marker.
func (v Version) Base() string { return v.base }

// IsHead reports whether v is a head version.
func (v Version) IsHead() bool { return v.head }

// IsZero reports whether v is the zero Version.
func (v Version) IsZero() bool { return v.base == "" && !v.head }

// IsPrerelease reports whether v carries a pre-release suffix.
func (v Version) IsPrerelease() bool { return strings.Contains(v.base, "-") }

// Segments returns the numeric release segments of v.
func (v Version) Segments() []int {
	release, _ := splitPrerelease(v.base)
	if release == "" {
		return nil
	}
	parts := strings.Split(release, ".")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, _ := strconv.Atoi(p)
		out[i] = n
	}
	return out
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to,
// or after other. Head versions compare as their base release.
func (v Version) Compare(other Version) int {
	a, b := v.Segments(), other.Segments()
	if c := semver.Compare(v.semverString(a), other.semverString(b)); c != 0 {
		return c
	}
	for i := 3; i < len(a) || i < len(b); i++ {
		x, y := segmentAt(a, i), segmentAt(b, i)
		if x != y {
			if x < y {
				return -1
			}
			return 1
		}
	}
	return 0
}

// semverString maps the first three segments plus the pre-release suffix onto
// the "vMAJOR.MINOR.PATCH[-pre]" form understood by x/mod/semver.
func (v Version) semverString(segments []int) string {
	var b strings.Builder
	b.WriteString("v")
	for i := 0; i < 3; i++ {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(segmentAt(segments, i)))
	}
	if _, pre := splitPrerelease(v.base); pre != "" {
		b.WriteByte('-')
		b.WriteString(pre)
	}
	return b.String()
}

func segmentAt(segments []int, i int) int {
	if i < len(segments) {
		return segments[i]
	}
	return 0
}

func splitPrerelease(s string) (release, pre string) {
	if i := strings.IndexByte(s, '-'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}
