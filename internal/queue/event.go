// Package queue defines message payloads exchanged over the message broker.
package queue

// AlertRaisedEvent is published when an emergency alert is created. It
// carries the full alert so downstream notifiers (SMS and email fan-out,
// the city status page) can act without querying the directory back.
type AlertRaisedEvent struct {
	AlertID  uint64 `json:"alert_id"`
	Message  string `json:"message"`
	Type     string `json:"type"`
	Active   bool   `json:"active"`
	StartsAt string `json:"starts_at"`
	EndsAt   string `json:"ends_at,omitempty"`
	RaisedAt string `json:"raised_at"`
}
