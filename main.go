// SPDX-License-Identifier: MPL-2.0

package main

import cmd "mlproj-cli/cmd/mlproj"

func main() {
	cmd.Execute()
}
