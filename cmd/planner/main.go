// Package main is the entry point for the offline planner command line.
package main

import "github.com/budget-dashboard/backend/internal/cli"

func main() {
	cli.Execute()
}
