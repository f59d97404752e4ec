// Package cache provides a generic build-once LRU cache.
//
// Values are created under the cache lock by GetOrCreate, so a value is
// fully constructed before any other goroutine can observe it. This is what
// lets the oracle share immutable texture images between sweep workers
// without further synchronization.
//
//	images := cache.New[Key, *Image](64)
//	img, err := images.GetOrCreate(key, func() (*Image, error) {
//		return Build(key)
//	})
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
