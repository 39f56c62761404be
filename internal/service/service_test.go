// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-task-manager/internal/cache"
)

const validToken = "header.payload.signature"

// recordingNotifier keeps every notification for assertions.
type recordingNotifier struct {
	mu    sync.Mutex
	notes []Notification
}

func (r *recordingNotifier) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, n)
}

func (r *recordingNotifier) all() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.notes...)
}

func (r *recordingNotifier) last() Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notes) == 0 {
		return Notification{}
	}
	return r.notes[len(r.notes)-1]
}

// fastQueries keeps the production freshness rules with millisecond retries.
func fastQueries() Queries {
	q := DefaultQueries()
	for _, o := range []*cache.Options{&q.CurrentUser, &q.TaskList, &q.Task} {
		o.RetryDelay = time.Millisecond
	}
	return q
}
