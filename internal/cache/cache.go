// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache memoizes the results of fallible, deterministic computations,
// such as compiling a format string.
package cache

import "sync"

// DefaultSize is the number of entries a Cache keeps if MaxSize is zero.
const DefaultSize = 1 << 10

// Cache maps keys to the result of a computation, including its error. When
// full, it evicts a random entry.
//
// Its zero value is ready to use. It is safe for concurrent use.
type Cache[K comparable, V any] struct {
	// MaxSize is the maximum number of entries. It must not be changed
	// concurrently with Get.
	MaxSize int

	mu sync.RWMutex
	m  map[K]entry[V]
}

type entry[V any] struct {
	v   V
	err error
}

// Get returns the memoized result for k, calling compute to fill it in if
// it is missing. Errors are memoized as well, so compute must be
// deterministic.
func (c *Cache[K, V]) Get(k K, compute func(K) (V, error)) (V, error) {
	c.mu.RLock()
	e, ok := c.m[k]
	c.mu.RUnlock()
	if ok {
		return e.v, e.err
	}

	v, err := compute(k)

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.m[k]; ok {
		// filled concurrently
		return e.v, e.err
	}
	if c.m == nil {
		c.m = make(map[K]entry[V])
	}
	limit := c.MaxSize
	if limit <= 0 {
		limit = DefaultSize
	}
	for victim := range c.m {
		if len(c.m) < limit {
			break
		}
		delete(c.m, victim)
	}
	c.m[k] = entry[V]{v, err}
	return v, err
}

// Len returns the number of memoized entries.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
