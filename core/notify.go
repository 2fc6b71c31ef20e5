package core

import "time"

type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
	NotifyInfo    NotificationKind = "info"
)

// Notification is a transient, user-visible message (a toast).
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
	At      time.Time        `json:"at"`
}

// Notifier is the notification surface. Fire and forget.
type Notifier interface {
	Notify(kind NotificationKind, msg string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(kind NotificationKind, msg string)

func (f NotifierFunc) Notify(kind NotificationKind, msg string) { f(kind, msg) }

// DiscardNotifier drops every notification.
var DiscardNotifier Notifier = NotifierFunc(func(NotificationKind, string) {})
