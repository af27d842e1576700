// flags.go - Command-line flag definitions
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	noColor  = flag.Bool("no-color", false, "Render pieces as plain letters without ANSI colours")
	startFEN = flag.String("fen", "", "Start from this FEN position instead of the standard layout")
	version  = flag.Bool("version", false, "Print version and exit")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Interactive two-player terminal chess.\n")
	fmt.Fprintf(os.Stderr, "Enter moves as two algebraic squares, e.g. \"e2 e4\",\n")
	fmt.Fprintf(os.Stderr, "or \"help e2\" to list the moves of the piece on e2.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
