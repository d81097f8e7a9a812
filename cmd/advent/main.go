// Command advent solves Advent of Code puzzles.
package main

import "github.com/eatmyrust/advent/internal/cli"

func main() {
	cli.Execute()
}
