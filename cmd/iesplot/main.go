package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"ies-luminaire/internal/candelaplot"
	"ies-luminaire/internal/config"
	"ies-luminaire/internal/ies"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	iesPath := flag.String("ies", "", "Path to the IES photometry file")
	outPath := flag.String("o", "candela.png", "Output image (.png, .svg or .pdf)")
	planesArg := flag.String("planes", "0,90", "Comma-separated C-plane angles in degrees")

	flag.Parse()

	if *iesPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -ies is required. Specify the filepath for an IES file.")
		os.Exit(1)
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{})

	var planes []float64
	for _, p := range strings.Split(*planesArg, ",") {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -planes: bad angle %q\n", p)
			os.Exit(1)
		}
		planes = append(planes, f)
	}

	rec, err := ies.Parse(*iesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	plt, err := candelaplot.PolarDiagram(rec, planes, cfg.MaxMirrorPasses)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := candelaplot.Save(plt, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving plot: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", *outPath)
}
