// Command pwnhook inspects a game build offline: it checks that every symbol
// the hooks need is exported and prints the overlay layouts.
package main

import "github.com/pboyd/interpose/cmd/pwnhook/cmd"

func main() {
	cmd.Execute()
}
