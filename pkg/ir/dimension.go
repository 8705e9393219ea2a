package ir

import (
	"strconv"
	"strings"
)

// Unit classifies a dimension magnitude.
type Unit string

const (
	// UnitPx is an absolute pixel length.
	UnitPx Unit = "px"
	// UnitPercent is a fraction of the parent, 0-100.
	UnitPercent Unit = "percent"
	// UnitIntrinsic sizes to content (wrap_content, auto).
	UnitIntrinsic Unit = "intrinsic"
	// UnitFill stretches to the parent (match_parent, fill_parent).
	UnitFill Unit = "fill"
)

// Dimension is the canonical value behind the mixed style strings extractors
// record ("12px", "100%", "match_parent", "wrap_content"). Style maps keep the
// raw strings; emitters parse once and convert to their target convention.
type Dimension struct {
	Magnitude float64
	Unit      Unit
}

// Scalar renders the magnitude as a compact decimal string (no trailing
// zeros), which every target's numeric literal syntax accepts.
func (d Dimension) Scalar() string {
	return strconv.FormatFloat(d.Magnitude, 'f', -1, 64)
}

var pxSuffixes = []string{"px", "dip", "dp", "sp", "pt"}

// ParseDimension normalizes one style string into a Dimension. Bare numbers
// and density suffixes count as pixels, "100%" as percent, and the intrinsic
// and fill keywords map to their units. Unparseable input reports ok=false so
// callers can pass the raw value through untouched.
func ParseDimension(raw string) (Dimension, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "":
		return Dimension{}, false
	case "match_parent", "fill_parent", "fill":
		return Dimension{Magnitude: 100, Unit: UnitFill}, true
	case "wrap_content", "auto", "intrinsic":
		return Dimension{Unit: UnitIntrinsic}, true
	}
	if strings.HasSuffix(s, "%") {
		magnitude, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return Dimension{}, false
		}
		return Dimension{Magnitude: magnitude, Unit: UnitPercent}, true
	}
	for _, suffix := range pxSuffixes {
		if strings.HasSuffix(s, suffix) {
			magnitude, err := strconv.ParseFloat(strings.TrimSuffix(s, suffix), 64)
			if err != nil {
				return Dimension{}, false
			}
			return Dimension{Magnitude: magnitude, Unit: UnitPx}, true
		}
	}
	magnitude, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Dimension{}, false
	}
	return Dimension{Magnitude: magnitude, Unit: UnitPx}, true
}
