package radiance

import "strconv"

// Ies2RadArgs builds the ies2rad argument list for one luminaire rad
// file. multiplier is the light loss factor times the candela
// multiplier. lamp may be nil for the default lamp table; tabPath is the
// lamp lookup table and only used for white lamps.
func Ies2RadArgs(outName, outDir, iesPath string, multiplier float64, lamp *CustomLamp, tabPath string) []string {
	args := []string{"-dm", "-o", outName, "-p", outDir}
	switch {
	case lamp != nil && lamp.White != nil:
		args = append(args, "-m", ftoa(multiplier), "-f", tabPath, "-t", lamp.White.Name)
	case lamp != nil && lamp.RGB != nil:
		args = append(args, "-m", ftoa(multiplier*lamp.RGB.DeprFactor),
			"-t", "default", "-c", ftoa(lamp.RGB.R), ftoa(lamp.RGB.G), ftoa(lamp.RGB.B))
	default:
		args = append(args, "-m", ftoa(multiplier))
	}
	return append(args, iesPath)
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
