package main

import "github.com/aalvaropc/aoc/internal/cli"

func main() {
	cli.ExecuteDay(3)
}
