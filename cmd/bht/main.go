package main

import "github.com/ogulcanaydogan/billable-hours/internal/cli"

func main() {
	cli.Execute()
}
