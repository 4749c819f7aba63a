// SPDX-License-Identifier: MPL-2.0

package testutil

import "errors"

var errSentinel = errors.New("sentinel")
