package luminaire

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"ies-luminaire/internal/radiance"
)

// Zone groups placements that share an optional custom lamp, replacing
// the host plugin's luminaire-array input with a JSON layout file.
type Zone struct {
	Name   string               `json:"name,omitempty"`
	Lamp   *radiance.CustomLamp `json:"lamp,omitempty"`
	Points []Placement          `json:"points"`
}

// LoadZones reads a zone layout JSON file.
func LoadZones(path string) ([]Zone, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("luminaire: read %s: %w", path, err)
	}
	var zones []Zone
	if err := json.Unmarshal(data, &zones); err != nil {
		return nil, fmt.Errorf("luminaire: parse %s: %w", path, err)
	}
	if len(zones) == 0 {
		return nil, fmt.Errorf("luminaire: %s declares no zones", path)
	}
	for i, z := range zones {
		if len(z.Points) == 0 {
			return nil, fmt.Errorf("luminaire: %s: zone %d has no points", path, i)
		}
		if z.Lamp != nil {
			if err := z.Lamp.Validate(); err != nil {
				return nil, fmt.Errorf("luminaire: %s: zone %d: %w", path, i, err)
			}
		}
	}
	return zones, nil
}

// DescribePlacements formats the layout the way the legacy component
// reported it, numbering placements per zone. The tilt sign is negated
// in the output; the quirk is kept so old reports diff cleanly.
func DescribePlacements(zones []Zone) string {
	var lines []string
	for _, z := range zones {
		for i, p := range z.Points {
			lines = append(lines, fmt.Sprintf("%d. (x,y,z):(%g,%g,%g). (Spin,Tilt,Rotation):%g, %g, %g.",
				i+1, p.Location.X(), p.Location.Y(), p.Location.Z(), p.Spin, -p.Tilt, p.Rotate))
		}
	}
	return strings.Join(lines, "\n")
}
