package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"ies-luminaire/internal/config"
	"ies-luminaire/internal/ies"
	"ies-luminaire/internal/luminaire"
	"ies-luminaire/internal/photoweb"
	"ies-luminaire/internal/preview"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	iesPath := flag.String("ies", "", "Path to the IES photometry file")
	outPath := flag.String("o", "preview.webp", "Output WebP file")
	size := flag.Int("size", 0, "Image edge length in pixels (default: 256)")
	yaw := flag.Float64("yaw", 0, "View rotation about Z in degrees")
	pitch := flag.Float64("pitch", 0, "Camera elevation above the horizon in degrees")

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
	if *size > 0 {
		cfg.PreviewSize = *size
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

	inst := luminaire.Instantiate(tpl, luminaire.Placement{}, luminaire.DrawOptions{
		Opening: true, Web: true, Axes: true,
		OpeningScale: cfg.OpeningScale,
		WebScale:     cfg.WebScale,
		AxesScale:    cfg.AxesScale,
	})

	layers := []preview.Layer{
		{Color: color.NRGBA{R: 0xff, G: 0xb0, B: 0x30, A: 0xff}, Polylines: inst.Curves},
		{Color: color.NRGBA{R: 0x40, G: 0xc0, B: 0xd0, A: 0xff}, Polylines: inst.Opening},
		{Color: color.NRGBA{R: 0x90, G: 0x90, B: 0x90, A: 0xff}, Lines: inst.Axes},
	}

	img := preview.Render(layers, preview.Options{
		Size:        cfg.PreviewSize,
		Supersample: cfg.Supersample,
		ViewYaw:     *yaw,
		ViewPitch:   *pitch,
	})

	if err := preview.WriteWebP(*outPath, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%dx%d)\n", *outPath, cfg.PreviewSize, cfg.PreviewSize)
}
