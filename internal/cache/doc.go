// Package cache provides a small generic LRU cache.
//
//	c := cache.New[uint64, []lenslab.Path](64)
//	c.Set(key, paths)
//	paths, ok := c.Get(key)
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
