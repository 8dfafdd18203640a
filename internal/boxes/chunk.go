package boxes

import "github.com/gogpu/pathtess/internal/geom"

const chunkMinSize = 16

// boxChunks is a chain of append-only geom.Box buffers, doubling in
// capacity each time the trailing chunk fills — the same storage shape
// internal/path uses for points, grounded on the same comac chunked-
// buffer convention (comac-boxes.c's struct _comac_boxes_chunk).
type boxChunks struct {
	chunks [][]geom.Box
	len    int
}

func (c *boxChunks) append(b geom.Box) {
	if len(c.chunks) == 0 {
		c.chunks = append(c.chunks, make([]geom.Box, 0, chunkMinSize))
	}
	last := &c.chunks[len(c.chunks)-1]
	if len(*last) == cap(*last) {
		nextCap := cap(*last) * 2
		if nextCap < chunkMinSize {
			nextCap = chunkMinSize
		}
		c.chunks = append(c.chunks, make([]geom.Box, 0, nextCap))
		last = &c.chunks[len(c.chunks)-1]
	}
	*last = append(*last, b)
	c.len++
}

func (c *boxChunks) at(idx int) geom.Box {
	for _, chunk := range c.chunks {
		if idx < len(chunk) {
			return chunk[idx]
		}
		idx -= len(chunk)
	}
	panic("boxes: index out of range")
}

func (c *boxChunks) reset() {
	c.chunks = c.chunks[:0]
	c.len = 0
}

// forEach visits every stored box in order, stopping early if fn
// returns false.
func (c *boxChunks) forEach(fn func(geom.Box) bool) bool {
	for _, chunk := range c.chunks {
		for _, b := range chunk {
			if !fn(b) {
				return false
			}
		}
	}
	return true
}
