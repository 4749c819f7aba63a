// SPDX-License-Identifier: MPL-2.0

package glinfo

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

var (
	// ErrUnknownEntryPoint is returned for names missing from the entry point table.
	ErrUnknownEntryPoint = errors.New("unknown entry point")
	// ErrEntryPointUnavailable is the sentinel error wrapped by UnavailableError.
	ErrEntryPointUnavailable = errors.New("entry point unavailable")
)

type (
	// EntryPoint is a GL function and the first version of each API exposing it.
	EntryPoint struct {
		Name  string
		Since map[API]Version
	}

	// UnavailableError is returned when the context version predates an entry point,
	// or the entry point does not exist in the context's API at all.
	UnavailableError struct {
		Name string
		Have Version
		// Need is the zero Version when the API never exposes the entry point.
		Need Version
	}
)

// entryPoints lists core entry points whose availability differs between versions.
var entryPoints = map[string]map[API]Version{
	"glClear":                {APIES: ES(2, 0), APIDesktop: Desktop(1, 0)},
	"glCreateShader":         {APIES: ES(2, 0), APIDesktop: Desktop(2, 0)},
	"glGenVertexArrays":      {APIES: ES(3, 0), APIDesktop: Desktop(3, 0)},
	"glBlitFramebuffer":      {APIES: ES(3, 0), APIDesktop: Desktop(3, 0)},
	"glDrawArraysInstanced":  {APIES: ES(3, 0), APIDesktop: Desktop(3, 1)},
	"glTexStorage2D":         {APIES: ES(3, 0), APIDesktop: Desktop(4, 2)},
	"glDispatchCompute":      {APIES: ES(3, 1), APIDesktop: Desktop(4, 3)},
	"glDebugMessageCallback": {APIES: ES(3, 2), APIDesktop: Desktop(4, 3)},
	"glPrimitiveBoundingBox": {APIES: ES(3, 2)},
	"glBufferStorage":        {APIDesktop: Desktop(4, 4)},
	"glPolygonMode":          {APIDesktop: Desktop(1, 0)},
}

// EntryPointNames returns every known entry point name, sorted.
func EntryPointNames() []string {
	names := maps.Keys(entryPoints)
	slices.Sort(names)
	return names
}

// Lookup returns the entry point if the context version v exposes it.
func Lookup(name string, v Version) (EntryPoint, error) {
	since, ok := entryPoints[name]
	if !ok {
		return EntryPoint{}, fmt.Errorf("%w: %s", ErrUnknownEntryPoint, name)
	}

	need, ok := since[v.API]
	if !ok || !v.AtLeast(need) {
		return EntryPoint{}, &UnavailableError{Name: name, Have: v, Need: need}
	}

	return EntryPoint{Name: name, Since: maps.Clone(since)}, nil
}

// Available returns the names of all entry points exposed by v, sorted.
func Available(v Version) []string {
	var names []string
	for _, name := range EntryPointNames() {
		if need, ok := entryPoints[name][v.API]; ok && v.AtLeast(need) {
			names = append(names, name)
		}
	}
	return names
}

// Error implements the error interface for UnavailableError.
func (e *UnavailableError) Error() string {
	if e.Need == (Version{}) {
		return fmt.Sprintf("%s is not part of %s", e.Name, e.Have)
	}
	return fmt.Sprintf("%s requires %s, context is %s", e.Name, e.Need, e.Have)
}

// Unwrap returns ErrEntryPointUnavailable for errors.Is() compatibility.
func (e *UnavailableError) Unwrap() error { return ErrEntryPointUnavailable }
