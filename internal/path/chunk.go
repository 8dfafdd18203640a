package path

import "github.com/gogpu/pathtess/internal/fixed"

// chunkMinSize is the capacity of the first point chunk.
const chunkMinSize = 16

// pointChunks is a chain of append-only fixed.Point buffers. Appending
// reuses the trailing chunk's spare capacity; once it's full a new chunk
// at least double the previous one's size is linked on.
type pointChunks struct {
	chunks [][]fixed.Point
	len    int
}

func (c *pointChunks) append(p fixed.Point) int {
	if len(c.chunks) == 0 {
		c.chunks = append(c.chunks, make([]fixed.Point, 0, chunkMinSize))
	}
	last := &c.chunks[len(c.chunks)-1]
	if len(*last) == cap(*last) {
		nextCap := cap(*last) * 2
		if nextCap < chunkMinSize {
			nextCap = chunkMinSize
		}
		c.chunks = append(c.chunks, make([]fixed.Point, 0, nextCap))
		last = &c.chunks[len(c.chunks)-1]
	}
	*last = append(*last, p)
	idx := c.len
	c.len++
	return idx
}

// at returns the point at global index idx across all chunks.
func (c *pointChunks) at(idx int) fixed.Point {
	for _, chunk := range c.chunks {
		if idx < len(chunk) {
			return chunk[idx]
		}
		idx -= len(chunk)
	}
	panic("path: point index out of range")
}

// dropLast removes the most recently appended point. It is only ever
// called to undo a just-added degenerate line_to, so it never needs to
// reach back across a chunk boundary.
func (c *pointChunks) dropLast() {
	if c.len == 0 {
		return
	}
	last := &c.chunks[len(c.chunks)-1]
	*last = (*last)[:len(*last)-1]
	c.len--
}

func (c *pointChunks) reset() {
	c.chunks = c.chunks[:0]
	c.len = 0
}
