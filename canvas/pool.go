package canvas

import (
	"sync"

	"golang.org/x/image/vector"
)

// rasterizerPool reuses rasterizers across frames. A rasterizer keeps one
// float32 accumulator per pixel, which is too large to allocate per frame.
var rasterizerPool = sync.Pool{
	New: func() any {
		return vector.NewRasterizer(0, 0)
	},
}

// acquireRasterizer gets a rasterizer sized for a w x h surface.
// Call releaseRasterizer when done to return it.
func acquireRasterizer(w, h int) *vector.Rasterizer {
	z := rasterizerPool.Get().(*vector.Rasterizer)
	z.Reset(w, h)
	return z
}

// releaseRasterizer returns a rasterizer to the pool for reuse.
func releaseRasterizer(z *vector.Rasterizer) {
	if z != nil {
		rasterizerPool.Put(z)
	}
}
