// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/glbench/glbench/cmd/glbench"

func main() {
	cmd.Execute()
}
