package core

import (
	"regexp"
	"strings"
)

var nameAndVersionPattern = regexp.MustCompile(`^(\S+) \((.+)\)$`)

// NameAndVersionFromString parses the display form "<name> (<version>)", such
// as "libPusher (1.0)" or "libPusher (HEAD based on 1.0)".
func NameAndVersionFromString(s string) (string, Version, error) {
	m := nameAndVersionPattern.FindStringSubmatch(s)
	if m == nil {
		return "", Version{}, &ParseError{Input: s, Reason: `expected "name (version)"`}
	}
	v, err := ParseVersion(m[2])
	if err != nil {
		return "", Version{}, err
	}
	return m[1], v, nil
}

// RootName returns the part of a full name before the first separator.
func RootName(fullName string) string {
	root, _, _ := strings.Cut(fullName, Separator)
	return root
}
