// SPDX-License-Identifier: MPL-2.0

package glinfo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// APIDesktop is desktop OpenGL.
	APIDesktop API = "gl"
	// APIES is OpenGL ES.
	APIES API = "gles"

	esPrefix = "OpenGL ES"
)

// ErrMalformedVersion is returned when a version string cannot be parsed.
var ErrMalformedVersion = errors.New("malformed GL version string")

type (
	// API distinguishes desktop GL from GL ES.
	API string

	// Version is a parsed GL_VERSION.
	Version struct {
		API   API
		Major int
		Minor int
	}
)

// ParseVersion parses a GL_VERSION string such as "OpenGL ES 3.2 Mesa 23.1.4"
// or "4.6.0 NVIDIA 535.54.03". Vendor information after the number is ignored.
func ParseVersion(s string) (Version, error) {
	rest := strings.TrimSpace(s)
	v := Version{API: APIDesktop}

	if strings.HasPrefix(rest, esPrefix) {
		v.API = APIES
		rest = strings.TrimPrefix(rest, esPrefix)
		// ES 1.x reports a profile suffix: "OpenGL ES-CM 1.1".
		rest = strings.TrimPrefix(rest, "-CM")
		rest = strings.TrimPrefix(rest, "-CL")
		rest = strings.TrimSpace(rest)
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return Version{}, fmt.Errorf("%w: %q", ErrMalformedVersion, s)
	}

	parts := strings.SplitN(fields[0], ".", 3)
	if len(parts) < 2 {
		return Version{}, fmt.Errorf("%w: %q", ErrMalformedVersion, s)
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil || major < 1 {
		return Version{}, fmt.Errorf("%w: %q", ErrMalformedVersion, s)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil || minor < 0 {
		return Version{}, fmt.Errorf("%w: %q", ErrMalformedVersion, s)
	}

	v.Major, v.Minor = major, minor
	return v, nil
}

// AtLeast reports whether v is the same or a later release than other. Versions
// of different APIs are never comparable.
func (v Version) AtLeast(other Version) bool {
	if v.API != other.API {
		return false
	}
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	return v.Minor >= other.Minor
}

// String renders the version the way drivers report it, without vendor details.
func (v Version) String() string {
	if v.API == APIES {
		return fmt.Sprintf("%s %d.%d", esPrefix, v.Major, v.Minor)
	}
	return fmt.Sprintf("OpenGL %d.%d", v.Major, v.Minor)
}

// ES returns a GL ES version.
func ES(major, minor int) Version {
	return Version{API: APIES, Major: major, Minor: minor}
}

// Desktop returns a desktop GL version.
func Desktop(major, minor int) Version {
	return Version{API: APIDesktop, Major: major, Minor: minor}
}
