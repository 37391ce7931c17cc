//go:build !gocv
// +build !gocv

package vision

import "image"

// Label finds the 8-connected foreground components of mask. Labels start at 1
// and follow raster order of each component's first pixel.
func Label(mask *image.Gray) []Component {
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	if w == 0 || h == 0 {
		return nil
	}

	labels := make([]int32, w*h)
	var components []Component
	var stack []int

	for y := 0; y < h; y++ {
		row := y * mask.Stride
		for x := 0; x < w; x++ {
			if mask.Pix[row+x] == 0 || labels[y*w+x] != 0 {
				continue
			}

			label := len(components) + 1
			acc := newAccumulator(x, y)
			labels[y*w+x] = int32(label)
			stack = append(stack[:0], y*w+x)

			for len(stack) > 0 {
				idx := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				px, py := idx%w, idx/w
				acc.add(px, py)

				for dy := -1; dy <= 1; dy++ {
					ny := py + dy
					if ny < 0 || ny >= h {
						continue
					}
					for dx := -1; dx <= 1; dx++ {
						nx := px + dx
						if (dx == 0 && dy == 0) || nx < 0 || nx >= w {
							continue
						}
						n := ny*w + nx
						if labels[n] != 0 || mask.Pix[ny*mask.Stride+nx] == 0 {
							continue
						}
						labels[n] = int32(label)
						stack = append(stack, n)
					}
				}
			}

			components = append(components, acc.component(label))
		}
	}

	return components
}
