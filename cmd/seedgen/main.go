// Package main provides a CLI for generating seed words from a configurable
// combination of entropy and clock sources, or for sampling values from an
// engine seeded with them.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/louisbranch/seedsource"
	"github.com/louisbranch/seedsource/engine"
	"github.com/louisbranch/seedsource/internal/config"
)

func main() {
	cfg, err := config.ParseEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var (
		sources   string
		count     int
		format    string
		useEngine bool
	)
	flag.StringVar(&sources, "sources", cfg.Sources, "comma-separated seed sources (random-device, system-clock, steady-clock, all, none)")
	flag.IntVar(&count, "n", cfg.Count, "number of values to emit")
	flag.StringVar(&format, "format", cfg.Format, "output format (hex, dec)")
	flag.BoolVar(&useEngine, "engine", false, "emit engine samples instead of raw seed words")
	flag.Parse()

	sel, err := seedsource.ParseSelector(sources)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if count < 0 {
		fmt.Fprintln(os.Stderr, "Error: -n must be non-negative")
		os.Exit(1)
	}
	if format != "hex" && format != "dec" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", format)
		os.Exit(1)
	}

	if useEngine {
		eng := engine.New(sel)
		for i := 0; i < count; i++ {
			v := eng.Uint64()
			if format == "hex" {
				fmt.Printf("%016x\n", v)
			} else {
				fmt.Println(v)
			}
		}
		return
	}

	words := make([]uint32, count)
	seedsource.New(sel).Generate(words)
	for _, w := range words {
		if format == "hex" {
			fmt.Printf("%08x\n", w)
		} else {
			fmt.Println(w)
		}
	}
}
