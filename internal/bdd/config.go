// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// config holds the tunable sizing parameters for a Kernel. It plays the
// role of the teacher's configs struct in config.go, cut down to the two
// knobs that still matter once the kernel no longer resizes or garbage
// collects an arena (§5): how much room to pre-allocate in the node table
// and in the apply cache.
type config struct {
	nodeCapacity  int
	cacheCapacity int
}

const (
	defaultNodeCapacity  = 1024
	defaultCacheCapacity = 1024
)

func defaultConfig() config {
	return config{
		nodeCapacity:  defaultNodeCapacity,
		cacheCapacity: defaultCacheCapacity,
	}
}

// Option configures a Kernel at construction time, in the same functional-
// options style as the teacher's Nodesize/Cachesize/Cacheratio (config.go).
type Option func(*config)

// WithNodeCapacity sets a preferred initial capacity for the node table.
// The table grows on demand regardless; this only avoids early
// reallocation for netlists known to be large.
func WithNodeCapacity(n int) Option {
	return func(c *config) {
		if n > 2 {
			c.nodeCapacity = n
		}
	}
}

// WithCacheCapacity sets a preferred initial capacity for the Apply/Not
// memo caches.
func WithCacheCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.cacheCapacity = n
		}
	}
}
