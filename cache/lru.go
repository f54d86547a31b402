// Copyright 2016-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cache

import (
	"container/list"
	"sync"
)

// entry is one cached key.  Present is false for a key the
// underlying store reported as never set.
type entry struct {
	Key     string
	Value   string
	Present bool
}

// lru is a least-recently-used cache with a fixed capacity.  The cache
// can be safely accessed from multiple goroutines.
type lru struct {
	size      int
	lock      sync.Mutex
	evictList *list.List
	index     map[string]*list.Element
}

func newLRU(size int) *lru {
	return &lru{
		size:      size,
		evictList: list.New(),
		index:     make(map[string]*list.Element),
	}
}

// Get retrieves an entry from the cache.  If it is not present, calls
// the fetch function and saves what it returns.  This returns an
// error only if the key is not cached and the fetch function fails,
// in which case nothing is cached.
func (lru *lru) Get(key string, fetch func(string) (entry, error)) (entry, error) {
	lru.lock.Lock()
	defer lru.lock.Unlock()

	if element, present := lru.index[key]; present {
		lru.evictList.MoveToBack(element)
		return element.Value.(entry), nil
	}

	item, err := fetch(key)
	if err != nil {
		return item, err
	}
	lru.add(item)
	return item, nil
}

// Put adds an entry to the LRU cache, possibly evicting something.
func (lru *lru) Put(item entry) {
	lru.lock.Lock()
	defer lru.lock.Unlock()

	if element, present := lru.index[item.Key]; present {
		element.Value = item
		lru.evictList.MoveToBack(element)
		return
	}
	lru.add(item)
}

// Remove takes an entry out of the cache.  It does nothing if key is
// not cached.
func (lru *lru) Remove(key string) {
	lru.lock.Lock()
	defer lru.lock.Unlock()

	if element, present := lru.index[key]; present {
		delete(lru.index, key)
		lru.evictList.Remove(element)
	}
}

// add runs under the lock and adds an entry known not to be cached.
func (lru *lru) add(item entry) {
	element := lru.evictList.PushBack(item)
	lru.index[item.Key] = element

	for len(lru.index) > lru.size {
		head := lru.evictList.Front()
		delete(lru.index, head.Value.(entry).Key)
		lru.evictList.Remove(head)
	}
}
