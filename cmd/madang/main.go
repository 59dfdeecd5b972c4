// Command madang manages the Madang book store: customer lookup, customer
// registration and purchase entry against an embedded database.
package main

import "github.com/mesh-intelligence/madang/internal/cli"

func main() {
	cli.Execute()
}
