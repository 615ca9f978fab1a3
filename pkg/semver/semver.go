// Package semver implements the subset of semantic-version parsing and
// comparison the update checker needs: core versions with optional
// pre-release identifiers and build metadata.
package semver

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a parsed semantic version. Build metadata is carried but ignored
// for precedence.
type Version struct {
	Major int
	Minor int
	Patch int
	Pre   []string
	Build string
}

func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if len(v.Pre) > 0 {
		s += "-" + strings.Join(v.Pre, ".")
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}

// Parse parses a semantic version string, accepting an optional leading 'v'.
func Parse(s string) (Version, error) {
	orig := s
	if strings.HasPrefix(s, "v") || strings.HasPrefix(s, "V") {
		s = s[1:]
	}
	var v Version
	if idx := strings.Index(s, "+"); idx >= 0 {
		v.Build = s[idx+1:]
		s = s[:idx]
	}
	if idx := strings.Index(s, "-"); idx >= 0 {
		v.Pre = strings.Split(s[idx+1:], ".")
		s = s[:idx]
	}
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid semver (need major.minor.patch): %s", orig)
	}
	var err error
	if v.Major, err = strconv.Atoi(parts[0]); err != nil {
		return Version{}, fmt.Errorf("invalid major version: %s", orig)
	}
	if v.Minor, err = strconv.Atoi(parts[1]); err != nil {
		return Version{}, fmt.Errorf("invalid minor version: %s", orig)
	}
	if v.Patch, err = strconv.Atoi(parts[2]); err != nil {
		return Version{}, fmt.Errorf("invalid patch version: %s", orig)
	}
	return v, nil
}

// Compare returns -1, 0 or 1 according to semver precedence. Build metadata
// is ignored.
func Compare(a, b Version) int {
	if c := cmpInt(a.Major, b.Major); c != 0 {
		return c
	}
	if c := cmpInt(a.Minor, b.Minor); c != 0 {
		return c
	}
	if c := cmpInt(a.Patch, b.Patch); c != 0 {
		return c
	}
	// a release outranks any of its pre-releases
	switch {
	case len(a.Pre) == 0 && len(b.Pre) == 0:
		return 0
	case len(a.Pre) == 0:
		return 1
	case len(b.Pre) == 0:
		return -1
	}
	for i := 0; i < len(a.Pre) && i < len(b.Pre); i++ {
		if c := cmpPreIdent(a.Pre[i], b.Pre[i]); c != 0 {
			return c
		}
	}
	return cmpInt(len(a.Pre), len(b.Pre))
}

// GT reports whether v has higher precedence than o.
func (v Version) GT(o Version) bool { return Compare(v, o) > 0 }

// Equals reports whether two versions are equal for update purposes.
func (v Version) Equals(o Version) bool { return Compare(v, o) == 0 }

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// cmpPreIdent compares pre-release identifiers: numeric identifiers rank
// below alphanumeric ones, numerics compare numerically, the rest
// lexicographically.
func cmpPreIdent(a, b string) int {
	an, aerr := strconv.Atoi(a)
	bn, berr := strconv.Atoi(b)
	switch {
	case aerr == nil && berr == nil:
		return cmpInt(an, bn)
	case aerr == nil:
		return -1
	case berr == nil:
		return 1
	}
	return strings.Compare(a, b)
}
