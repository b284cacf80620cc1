// Package cache provides a cost-bounded LRU cache with load deduplication.
//
// The pipeline runner uses it to decode each input image once when several
// jobs of a plan read the same file:
//
//	c := cache.New[string, *imgops.Canvas](1<<24, func(v *imgops.Canvas) int64 {
//	    return int64(v.Width() * v.Height())
//	})
//	canvas, err := c.Load(path, func() (*imgops.Canvas, error) {
//	    return imageio.Load(path)
//	})
//
// Cached values are shared between callers and must be treated as read-only.
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
