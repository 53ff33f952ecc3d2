package main

import (
	"flag"
	"fmt"
	"os"

	"ies-luminaire/internal/ies"
)

func main() {
	iesPath := flag.String("ies", "", "Path to the IES photometry file")
	showTilt := flag.Bool("tilt", false, "Also print the TILT block when present")
	flag.Parse()

	if *iesPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -ies is required. Specify the filepath for an IES file.")
		os.Exit(1)
	}

	rec, err := ies.Parse(*iesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	details, err := ies.Details(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(details)

	if *showTilt {
		if rec.Tilt == nil {
			fmt.Println("\nTILT: NONE")
		} else {
			fmt.Printf("\nTILT: INCLUDE (geometry %g, %d angles)\n", rec.Tilt.LampGeometry, rec.Tilt.AngleCount)
			for i, a := range rec.Tilt.Angles {
				fmt.Printf("  %g deg -> %g\n", a, rec.Tilt.Multipliers[i])
			}
		}
	}
}
