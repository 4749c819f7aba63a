// SPDX-License-Identifier: MPL-2.0

package glinfo

import (
	"slices"
	"strings"
)

// Extensions is the set of extension names reported by a context, in the order
// the driver listed them.
type Extensions struct {
	names []string
	set   map[string]struct{}
}

// ParseExtensions splits a GL_EXTENSIONS (or EGL_EXTENSIONS) string. Repeated
// names are kept once, at their first position.
func ParseExtensions(s string) Extensions {
	fields := strings.Fields(s)
	ext := Extensions{
		names: make([]string, 0, len(fields)),
		set:   make(map[string]struct{}, len(fields)),
	}
	for _, name := range fields {
		if _, dup := ext.set[name]; dup {
			continue
		}
		ext.set[name] = struct{}{}
		ext.names = append(ext.names, name)
	}
	return ext
}

// Has reports whether the extension was listed. Names are case-sensitive.
func (e Extensions) Has(name string) bool {
	_, ok := e.set[name]
	return ok
}

// HasAll reports whether every named extension was listed.
func (e Extensions) HasAll(names ...string) bool {
	for _, name := range names {
		if !e.Has(name) {
			return false
		}
	}
	return true
}

// List returns the extension names in driver order.
func (e Extensions) List() []string {
	return slices.Clone(e.names)
}

// Len returns the number of distinct extensions.
func (e Extensions) Len() int {
	return len(e.names)
}

// WithPrefix returns the extensions whose name starts with prefix, such as
// "GL_OES_" or "EGL_KHR_", in driver order.
func (e Extensions) WithPrefix(prefix string) []string {
	var out []string
	for _, name := range e.names {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}
