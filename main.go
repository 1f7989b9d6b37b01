/*
Copyright © 2026 Mina Laurent (mnl-au) <mina@glintlabs.dev>
*/
package main

import "github.com/mnl-au/glint/cmd"

func main() {
	cmd.Execute()
}
