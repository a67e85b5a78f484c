package main

import "github.com/dfwpark/dfw-parking/internal/cli"

func main() {
	cli.Execute()
}
