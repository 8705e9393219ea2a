package screenshot

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/anthonynsimon/bild/effect"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

const (
	// paletteClusters is the dominant-color cluster count per image;
	// textClusters the edge-color cluster count.
	paletteClusters = 5
	textClusters    = 3

	// maxSamples bounds how many pixels one image contributes to clustering.
	maxSamples = 4096

	// edgeLevel is the Sobel magnitude above which a pixel counts as an edge.
	edgeLevel = 128

	// textLightnessCap is the Lab lightness below which an edge cluster reads
	// as a text color.
	textLightnessCap = 0.5
)

type pixel struct{ r, g, b uint8 }

// paletteEntry is one clustered color with its sample weight and Lab
// lightness.
type paletteEntry struct {
	Hex    string
	Weight int
	L      float64
}

// samplePixels walks the image on a fixed grid and returns at most roughly
// maxSamples colors in scan order.
func samplePixels(img image.Image) []pixel {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil
	}
	step := sampleStep(w, h)
	out := make([]pixel, 0, (w/step+1)*(h/step+1))
	for y := 0; y < h; y += step {
		for x := 0; x < w; x += step {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			out = append(out, pixel{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)})
		}
	}
	return out
}

func sampleStep(w, h int) int {
	step := int(math.Ceil(math.Sqrt(float64(w*h) / float64(maxSamples))))
	if step < 1 {
		step = 1
	}
	return step
}

// edgePixels returns the source colors sitting under strong Sobel responses.
// Glyphs produce dense edges, so these samples skew toward text colors.
func edgePixels(img image.Image) []pixel {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil
	}
	edges := effect.Sobel(img)
	step := sampleStep(w, h)
	var out []pixel
	for y := 0; y < h; y += step {
		for x := 0; x < w; x += step {
			if edges.RGBAAt(x, y).R < edgeLevel {
				continue
			}
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			out = append(out, pixel{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)})
		}
	}
	return out
}

// clusterColors reduces samples to at most k weighted colors ordered by
// descending weight, hex string as the tie-break. Palettes with k or fewer
// distinct colors are counted directly, which keeps flat synthetic captures
// exact; richer images go through k-means.
func clusterColors(samples []pixel, k int) []paletteEntry {
	if len(samples) == 0 || k <= 0 {
		return nil
	}
	counts := make(map[pixel]int)
	for _, p := range samples {
		counts[p]++
	}
	if len(counts) <= k {
		return entriesFromCounts(counts)
	}

	observations := make(clusters.Observations, len(samples))
	for i, p := range samples {
		observations[i] = clusters.Coordinates{float64(p.r), float64(p.g), float64(p.b)}
	}
	km := kmeans.New()
	cc, err := km.Partition(observations, k)
	if err != nil {
		entries := entriesFromCounts(counts)
		if len(entries) > k {
			entries = entries[:k]
		}
		return entries
	}

	entries := make([]paletteEntry, 0, len(cc))
	for _, c := range cc {
		if len(c.Observations) == 0 || len(c.Center) < 3 {
			continue
		}
		r := roundChannel(c.Center[0])
		g := roundChannel(c.Center[1])
		b := roundChannel(c.Center[2])
		entries = append(entries, paletteEntry{
			Hex:    hexColor(r, g, b),
			Weight: len(c.Observations),
			L:      labLightness(r, g, b),
		})
	}
	sortEntries(entries)
	return entries
}

func entriesFromCounts(counts map[pixel]int) []paletteEntry {
	entries := make([]paletteEntry, 0, len(counts))
	for p, n := range counts {
		entries = append(entries, paletteEntry{
			Hex:    hexColor(p.r, p.g, p.b),
			Weight: n,
			L:      labLightness(p.r, p.g, p.b),
		})
	}
	sortEntries(entries)
	return entries
}

func sortEntries(entries []paletteEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Weight != entries[j].Weight {
			return entries[i].Weight > entries[j].Weight
		}
		return entries[i].Hex < entries[j].Hex
	})
}

// darkOnly keeps entries dark enough to read as text.
func darkOnly(entries []paletteEntry) []paletteEntry {
	var dark []paletteEntry
	for _, e := range entries {
		if e.L < textLightnessCap {
			dark = append(dark, e)
		}
	}
	return dark
}

// mergePalettes sums cluster weights by hex across images and re-sorts.
func mergePalettes(perImage [][]paletteEntry) []paletteEntry {
	byHex := make(map[string]paletteEntry)
	for _, entries := range perImage {
		for _, e := range entries {
			m := byHex[e.Hex]
			m.Hex = e.Hex
			m.L = e.L
			m.Weight += e.Weight
			byHex[e.Hex] = m
		}
	}
	merged := make([]paletteEntry, 0, len(byHex))
	for _, e := range byHex {
		merged = append(merged, e)
	}
	sortEntries(merged)
	return merged
}

func labLightness(r, g, b uint8) float64 {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	l, _, _ := c.Lab()
	return l
}

func roundChannel(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}

func hexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
