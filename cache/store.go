// Copyright 2016-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package cache provides a write-through cache in front of some other
// hedgecontrol.Store.  Reads of a recently used key, including one
// that was never set, are answered from memory; writes always go to
// the underlying store first.
//
// The cache assumes it is the only writer.  A value changed in the
// underlying store by another process is not noticed until the key
// is evicted.
package cache

import (
	"sync"

	"github.com/Andreicr1/hedge-control/hedgecontrol"
)

// DefaultSize is the number of keys a cache created with a
// non-positive size holds.
const DefaultSize = 64

type cacheStore struct {
	store hedgecontrol.Store
	lru   *lru

	// writeLock keeps the cache and the underlying store in the
	// same order of writes.
	writeLock sync.Mutex
}

// New creates a new cache wrapping store.
func New(store hedgecontrol.Store, size int) hedgecontrol.Store {
	if size <= 0 {
		size = DefaultSize
	}
	return &cacheStore{
		store: store,
		lru:   newLRU(size),
	}
}

func (c *cacheStore) fetch(key string) (entry, error) {
	value, present, err := c.store.Get(key)
	if err != nil {
		return entry{}, err
	}
	return entry{Key: key, Value: value, Present: present}, nil
}

func (c *cacheStore) Get(key string) (string, bool, error) {
	item, err := c.lru.Get(key, c.fetch)
	if err != nil {
		return "", false, err
	}
	return item.Value, item.Present, nil
}

func (c *cacheStore) Set(key, value string) error {
	c.writeLock.Lock()
	defer c.writeLock.Unlock()
	if err := c.store.Set(key, value); err != nil {
		// The write may or may not have happened.
		c.lru.Remove(key)
		return err
	}
	c.lru.Put(entry{Key: key, Value: value, Present: true})
	return nil
}
