// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "sync"

// idSet tracks ids with a request in flight. Several ids may be marked at
// once, so two rows toggled back to back each keep their own indicator.
type idSet struct {
	mu  sync.RWMutex
	ids map[string]int
}

func newIDSet() *idSet {
	return &idSet{ids: make(map[string]int)}
}

// add marks id and returns the function that unmarks it.
func (s *idSet) add(id string) func() {
	s.mu.Lock()
	s.ids[id]++
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.ids[id] <= 1 {
				delete(s.ids, id)
				return
			}
			s.ids[id]--
		})
	}
}

func (s *idSet) has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ids[id] > 0
}
