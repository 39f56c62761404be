// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// Notifier delivers user-facing notifications (toasts).
type Notifier interface {
	Notify(n Notification)
}

// Level is the severity of a notification.
type Level int

const (
	LevelSuccess Level = iota
	LevelError
	LevelInfo
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "Success"
	case LevelError:
		return "Error"
	default:
		return "Info"
	}
}

// Notification is one toast.
type Notification struct {
	Level   Level
	Message string
}

// Success builds a success notification.
func Success(msg string) Notification {
	return Notification{Level: LevelSuccess, Message: msg}
}

// Failure builds an error notification.
func Failure(msg string) Notification {
	return Notification{Level: LevelError, Message: msg}
}

// ChannelNotifier queues notifications for the UI. When the queue is full
// new notifications are dropped rather than blocking the caller.
type ChannelNotifier struct {
	ch chan Notification
}

// NewChannelNotifier returns a notifier with a queue of size entries.
func NewChannelNotifier(size int) *ChannelNotifier {
	return &ChannelNotifier{ch: make(chan Notification, size)}
}

func (n *ChannelNotifier) Notify(note Notification) {
	select {
	case n.ch <- note:
	default:
	}
}

// C returns the queue to read notifications from.
func (n *ChannelNotifier) C() <-chan Notification {
	return n.ch
}

type nopNotifier struct{}

func (nopNotifier) Notify(Notification) {}

// NopNotifier discards notifications.
func NopNotifier() Notifier {
	return nopNotifier{}
}
