package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"ies-luminaire/internal/config"
	"ies-luminaire/internal/export"
	"ies-luminaire/internal/ies"
	"ies-luminaire/internal/luminaire"
	"ies-luminaire/internal/photoweb"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	iesPath := flag.String("ies", "", "Path to the IES photometry file")
	zonesPath := flag.String("zones", "", "Zone layout JSON file (default: single luminaire at origin)")
	outPath := flag.String("o", "luminaires.obj", "Output OBJ file")
	webScale := flag.Float64("webscale", 0, "Photometric web scale (default: 1)")
	axesScale := flag.Float64("axesscale", 0, "Axes scale (default: 1)")
	openingScale := flag.Float64("openingscale", 0, "Opening outline scale (default: 1)")
	aim := flag.String("aim", "", "Aiming target point as x,y,z")
	noWeb := flag.Bool("noweb", false, "Skip the photometric web")
	noAxes := flag.Bool("noaxes", false, "Skip the axes")
	noOpening := flag.Bool("noopening", false, "Skip the opening outline")

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
	if *webScale != 0 {
		cfg.WebScale = *webScale
	}
	if *axesScale != 0 {
		cfg.AxesScale = *axesScale
	}
	if *openingScale != 0 {
		cfg.OpeningScale = *openingScale
	}

	rec, err := ies.Parse(*iesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tpl, err := luminaire.NewTemplate(rec, photoweb.Options{MaxMirrorPasses: cfg.MaxMirrorPasses})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	zones := []luminaire.Zone{{Points: []luminaire.Placement{{}}}}
	if *zonesPath != "" {
		zones, err = luminaire.LoadZones(*zonesPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	opts := luminaire.DrawOptions{
		Opening:      !*noOpening,
		Web:          !*noWeb,
		Axes:         !*noAxes,
		OpeningScale: cfg.OpeningScale,
		WebScale:     cfg.WebScale,
		AxesScale:    cfg.AxesScale,
	}
	if *aim != "" {
		target, err := parseVec3(*aim)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -aim: %v\n", err)
			os.Exit(1)
		}
		opts.AimTarget = &target
	}

	var instances []*luminaire.Instance
	for _, z := range zones {
		for _, p := range z.Points {
			instances = append(instances, luminaire.Instantiate(tpl, p, opts))
		}
	}

	if err := export.WriteOBJFile(*outPath, instances); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d luminaires to %s\n", len(instances), *outPath)
	if desc := luminaire.DescribePlacements(zones); desc != "" {
		fmt.Println(desc)
	}
}

func parseVec3(s string) (mgl64.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var v mgl64.Vec3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return mgl64.Vec3{}, fmt.Errorf("bad coordinate %q", p)
		}
		v[i] = f
	}
	return v, nil
}
