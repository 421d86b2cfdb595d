package store

import (
	"context"
	"time"
)

// Alert is a time-bounded emergency notice (weather warning, closure, ...).
// Active is an explicit display flag independent of the time window: an
// alert whose EndTime has passed stays active until someone flips the flag.
type Alert struct {
	ID        uint64     `json:"id"`
	Message   string     `json:"message"`
	Type      string     `json:"type"`
	Active    bool       `json:"active"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
}

// NewAlert carries the caller-supplied fields for CreateAlert. Active is a
// pointer so "not supplied" can default to true.
type NewAlert struct {
	Message   string
	Type      string
	Active    *bool
	StartTime time.Time
	EndTime   *time.Time
}

// GetAllAlerts returns every alert, active or not, in insertion order.
func (s *Store) GetAllAlerts(ctx context.Context) []Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Alert, 0, len(s.alerts))
	for id := uint64(1); id < s.nextAlertID; id++ {
		if a, ok := s.alerts[id]; ok {
			out = append(out, *a)
		}
	}
	return out
}

// GetActiveAlerts returns alerts whose Active flag is set. The time window
// is deliberately not consulted.
func (s *Store) GetActiveAlerts(ctx context.Context) []Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Alert{}
	for id := uint64(1); id < s.nextAlertID; id++ {
		if a, ok := s.alerts[id]; ok && a.Active {
			out = append(out, *a)
		}
	}
	return out
}

// CreateAlert assigns the next alert id and stores the record. Active
// defaults to true when not supplied.
func (s *Store) CreateAlert(ctx context.Context, in NewAlert) *Alert {
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a := &Alert{
		ID:        s.nextAlertID,
		Message:   in.Message,
		Type:      in.Type,
		Active:    active,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}
	s.nextAlertID++
	s.alerts[a.ID] = a
	out := *a
	return &out
}
