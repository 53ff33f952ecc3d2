package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"

	"ies-luminaire/internal/config"
	"ies-luminaire/internal/radiance"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	hdrPath := flag.String("hdr", "", "Path to the HDR or PIC image")
	radBin := flag.String("radbin", "", "Radiance bin directory (default: auto-detect)")
	exposure := flag.Bool("exposure", false, "Run pcond -h+ before conversion")
	verbose := flag.Bool("v", false, "Debug logging")

	flag.Parse()

	if *hdrPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -hdr is required. Specify the filepath for an HDR image.")
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
	cfg.Resolve(config.Flags{RadBinDir: *radBin})

	level := hclog.Info
	if *verbose {
		level = hclog.Debug
	}
	log := hclog.New(&hclog.LoggerOptions{Name: "hdr2tif", Level: level})

	runner := &radiance.Runner{BinDir: cfg.RadBinDir, LibDir: cfg.RadLibDir, Log: log}
	tools := []string{"ra_tiff"}
	if *exposure {
		tools = append(tools, "pcond")
	}
	if err := runner.CheckTools(tools...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\nInstall Radiance or point -radbin at its bin directory.\n", err)
		os.Exit(1)
	}

	outPath, err := radiance.ConvertHDR(context.Background(), runner, *hdrPath, *exposure)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", outPath)
}
