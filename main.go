// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/gs1kit/gs1kit/cmd/gs1kit"

func main() {
	cmd.Execute()
}
