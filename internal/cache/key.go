// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"fmt"
)

// Resources cached by the client. A resource name is the first component of
// every key and the unit of [Cache.Invalidate].
const (
	ResourceCurrentUser = "currentUser"
	ResourceTasks       = "tasks"
	ResourceTask        = "task"
)

// Key identifies one cache entry: a resource plus its parameters.
type Key struct {
	Resource string
	Params   string
}

func (k Key) String() string {
	if k.Params == "" {
		return k.Resource
	}
	return k.Resource + ":" + k.Params
}

// CurrentUserKey is the key of the signed-in account.
func CurrentUserKey() Key {
	return Key{Resource: ResourceCurrentUser}
}

// TaskListKey is the key of one page of the task list.
func TaskListKey(page, limit int) Key {
	return Key{Resource: ResourceTasks, Params: fmt.Sprintf("page=%d&limit=%d", page, limit)}
}

// TaskKey is the key of a single task.
func TaskKey(id string) Key {
	return Key{Resource: ResourceTask, Params: id}
}
