// Package main is the entry point for the property dashboard CLI —
// the client side of property-board. It polls the API server, renders the
// collection with its KPIs, and drives mutations.
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
