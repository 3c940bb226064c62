// Command htnplan is a thin demonstration CLI over the engine package: it
// loads a fixture (initial state plus a todo list) and runs the built-in
// demo domain's planner against it, printing the resulting action plan.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
