package screenshot

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"

	"uilift/pkg/ir"
)

const (
	// minRegionArea discards connected components too small to be widgets.
	minRegionArea = 100
	// maxRegions caps the component count per screenshot so a noisy capture
	// cannot explode the tree.
	maxRegions = 256
)

// region is one dark connected component's bounding box in image coordinates.
// index is the component's discovery ordinal; components below the area floor
// still consume one, so surviving ids reflect scan order.
type region struct {
	x, y, w, h int
	index      int
}

// buildScreen segments one screenshot into a flat tree: a root layout sized
// like the image with one absolutely positioned child per detected region.
func buildScreen(img image.Image) *ir.Node {
	bounds := img.Bounds()
	root := ir.NewNode(ir.KindLayout, "root")
	root.Style["width"] = fmt.Sprintf("%dpx", bounds.Dx())
	root.Style["height"] = fmt.Sprintf("%dpx", bounds.Dy())

	// effect.Grayscale returns *image.RGBA with equal channels; flatten it to
	// *image.Gray for otsuLevel (an exact identity on already-gray pixels).
	grayRGBA := effect.Grayscale(img)
	gray := image.NewGray(grayRGBA.Bounds())
	draw.Draw(gray, gray.Bounds(), grayRGBA, grayRGBA.Bounds().Min, draw.Src)
	level := otsuLevel(gray)
	if level < 255 {
		// segment.Threshold maps pixels >= level to white, so shifting by one
		// keeps pixels at the Otsu level on the dark side, matching an
		// inverted binary threshold.
		level++
	}
	mask := segment.Threshold(gray, level)

	for _, reg := range darkRegions(mask) {
		node := regionNode(reg)
		node.Style["background"] = meanColor(img, reg)
		root.AddChild(node)
	}
	return root
}

// regionNode classifies a region into a component by its bounding-box shape:
// wide and short reads as a header, narrow and tall as a sidebar, small and
// near-square as a button, moderately wide and low as a text field, anything
// else as a generic container.
func regionNode(reg region) *ir.Node {
	aspect := 0.0
	if reg.h > 0 {
		aspect = float64(reg.w) / float64(reg.h)
	}

	var node *ir.Node
	switch {
	case aspect > 3 && reg.h < 100:
		node = ir.NewNode(ir.KindLayout, fmt.Sprintf("header_%d", reg.index))
		node.Properties["role"] = "header"
	case aspect < 0.5 && reg.w < 100:
		node = ir.NewNode(ir.KindNavigation, fmt.Sprintf("sidebar_%d", reg.index))
		node.Properties["role"] = "navigation"
	case aspect > 0.8 && aspect < 1.2 && reg.w < 100 && reg.h < 100:
		node = ir.NewNode(ir.KindButton, fmt.Sprintf("button_%d", reg.index))
	case aspect > 2 && aspect < 8 && reg.h < 60:
		node = ir.NewNode(ir.KindTextField, fmt.Sprintf("field_%d", reg.index))
	default:
		node = ir.NewNode(ir.KindLayout, fmt.Sprintf("container_%d", reg.index))
	}

	node.Style["position"] = "absolute"
	node.Style["left"] = fmt.Sprintf("%dpx", reg.x)
	node.Style["top"] = fmt.Sprintf("%dpx", reg.y)
	node.Style["width"] = fmt.Sprintf("%dpx", reg.w)
	node.Style["height"] = fmt.Sprintf("%dpx", reg.h)
	return node
}

// darkRegions labels 4-connected dark components of the threshold mask in
// scan order.
func darkRegions(mask *image.Gray) []region {
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}
	dark := func(x, y int) bool {
		return mask.GrayAt(b.Min.X+x, b.Min.Y+y).Y == 0
	}

	visited := make([]bool, w*h)
	queue := make([]int, 0, 64)
	var regions []region
	next := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if visited[idx] || !dark(x, y) {
				continue
			}

			minX, minY, maxX, maxY := x, y, x, y
			queue = queue[:0]
			queue = append(queue, idx)
			visited[idx] = true
			for head := 0; head < len(queue); head++ {
				cur := queue[head]
				cx, cy := cur%w, cur/w
				if cx < minX {
					minX = cx
				}
				if cx > maxX {
					maxX = cx
				}
				if cy < minY {
					minY = cy
				}
				if cy > maxY {
					maxY = cy
				}
				for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
					nx, ny := cx+d[0], cy+d[1]
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					nidx := ny*w + nx
					if visited[nidx] || !dark(nx, ny) {
						continue
					}
					visited[nidx] = true
					queue = append(queue, nidx)
				}
			}

			ordinal := next
			next++
			if len(queue) < minRegionArea {
				continue
			}
			regions = append(regions, region{
				x: minX, y: minY,
				w: maxX - minX + 1, h: maxY - minY + 1,
				index: ordinal,
			})
			if len(regions) >= maxRegions {
				return regions
			}
		}
	}
	return regions
}

// meanColor averages the source pixels under the region's bounding box,
// truncating toward zero.
func meanColor(img image.Image, reg region) string {
	bounds := img.Bounds()
	var rSum, gSum, bSum uint64
	for y := reg.y; y < reg.y+reg.h; y++ {
		for x := reg.x; x < reg.x+reg.w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			rSum += uint64(r >> 8)
			gSum += uint64(g >> 8)
			bSum += uint64(b >> 8)
		}
	}
	n := uint64(reg.w) * uint64(reg.h)
	if n == 0 {
		return hexColor(0, 0, 0)
	}
	return hexColor(uint8(rSum/n), uint8(gSum/n), uint8(bSum/n))
}

// otsuLevel picks the gray threshold that maximizes between-class variance.
func otsuLevel(gray *image.Gray) uint8 {
	var hist [256]int
	b := gray.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			hist[gray.GrayAt(x, y).Y]++
		}
	}
	total := b.Dx() * b.Dy()
	if total == 0 {
		return 0
	}

	var sum float64
	for v, n := range hist {
		sum += float64(v * n)
	}
	var sumB, wB, best float64
	var level uint8
	for t := 0; t < 256; t++ {
		wB += float64(hist[t])
		if wB == 0 {
			continue
		}
		wF := float64(total) - wB
		if wF == 0 {
			break
		}
		sumB += float64(t * hist[t])
		mB := sumB / wB
		mF := (sum - sumB) / wF
		between := wB * wF * (mB - mF) * (mB - mF)
		if between > best {
			best = between
			level = uint8(t)
		}
	}
	return level
}
