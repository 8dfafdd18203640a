package polygon

import "github.com/gogpu/pathtess/internal/geom"

const chunkMinSize = 32

// edgeChunks is a chain of append-only geom.Edge buffers, doubling in
// capacity each time the trailing chunk fills, matching the storage
// shape of internal/path's, internal/boxes' and internal/traps' chunked
// buffers.
type edgeChunks struct {
	chunks [][]geom.Edge
	len    int
}

func (c *edgeChunks) append(e geom.Edge) {
	if len(c.chunks) == 0 {
		c.chunks = append(c.chunks, make([]geom.Edge, 0, chunkMinSize))
	}
	last := &c.chunks[len(c.chunks)-1]
	if len(*last) == cap(*last) {
		nextCap := cap(*last) * 2
		if nextCap < chunkMinSize {
			nextCap = chunkMinSize
		}
		c.chunks = append(c.chunks, make([]geom.Edge, 0, nextCap))
		last = &c.chunks[len(c.chunks)-1]
	}
	*last = append(*last, e)
	c.len++
}

func (c *edgeChunks) at(idx int) geom.Edge {
	for _, chunk := range c.chunks {
		if idx < len(chunk) {
			return chunk[idx]
		}
		idx -= len(chunk)
	}
	panic("polygon: index out of range")
}

func (c *edgeChunks) reset() {
	c.chunks = c.chunks[:0]
	c.len = 0
}

func (c *edgeChunks) forEach(fn func(geom.Edge) bool) bool {
	for _, chunk := range c.chunks {
		for _, e := range chunk {
			if !fn(e) {
				return false
			}
		}
	}
	return true
}
