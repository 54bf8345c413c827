// Command storyctl applies the story editor's reducers to a story file
// without a running server. It is meant for reproducing editor behaviour
// from a saved document:
//
//	storyctl delete-elements --file story.yaml --selection
//	storyctl select --file story.json --ids e2,e3
//	storyctl set-page --file story.yaml --page p2
//
// The resulting story is printed as JSON together with what changed.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
