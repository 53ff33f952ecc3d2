package radiance

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConvertHDR converts a Radiance HDR/PIC image to TIFF with ra_tiff.
// With adjustExposure, pcond -h+ runs first to mimic the human visual
// response before conversion. Returns the TIFF path.
func ConvertHDR(ctx context.Context, r *Runner, hdrPath string, adjustExposure bool) (string, error) {
	ext := strings.ToUpper(strings.TrimPrefix(filepath.Ext(hdrPath), "."))
	if ext != "HDR" && ext != "PIC" {
		return "", fmt.Errorf("radiance: %s is not a valid HDR file", hdrPath)
	}

	base := strings.TrimSuffix(hdrPath, filepath.Ext(hdrPath))
	outPath := base + ".TIF"
	// ra_tiff refuses to overwrite.
	_ = os.Remove(outPath)

	dir := filepath.Dir(hdrPath)
	input := hdrPath
	if adjustExposure {
		condPath := base + "_h" + filepath.Ext(hdrPath)
		if err := r.RunToFile(ctx, dir, condPath, "pcond", "-h+", hdrPath); err != nil {
			return "", err
		}
		input = condPath
	}

	if err := r.Run(ctx, dir, "ra_tiff", input, outPath); err != nil {
		return "", err
	}
	if _, err := os.Stat(outPath); err != nil {
		return "", &ToolError{Tool: "ra_tiff", Err: fmt.Errorf("expected output %s missing", outPath)}
	}
	return outPath, nil
}
