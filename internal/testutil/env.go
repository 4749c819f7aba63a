// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"runtime"
	"testing"
)

// IsolateConfigHome points every platform's config directory lookup at dir for
// the duration of the test. Tests calling it cannot run in parallel.
//
//	func TestLoad(t *testing.T) {
//	    dir := t.TempDir()
//	    testutil.IsolateConfigHome(t, dir)
//	    ...
//	}
func IsolateConfigHome(t testing.TB, dir string) {
	t.Helper()

	switch runtime.GOOS {
	case "windows":
		t.Setenv("APPDATA", dir)
		t.Setenv("USERPROFILE", dir)
	default:
		t.Setenv("XDG_CONFIG_HOME", dir)
		t.Setenv("HOME", dir)
	}
}
