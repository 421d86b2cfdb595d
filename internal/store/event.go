package store

import (
	"context"
	"time"
)

// Event is a scheduled occurrence hosted at one service and optionally tied
// to a category. StartTime and EndTime are display strings like "10:00 AM";
// Date carries the calendar day. Events are returned unsorted, callers that
// want chronological order sort by date themselves.
type Event struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	StartTime   *string   `json:"startTime,omitempty"`
	EndTime     *string   `json:"endTime,omitempty"`
	ServiceID   uint64    `json:"serviceId"`
	CategoryID  *uint64   `json:"categoryId,omitempty"`
}

// EventWithService is the composite read view: the event plus its resolved
// service and, when the event names one, its category. Dangling references
// leave the pointer nil.
type EventWithService struct {
	Event
	Service  *Service  `json:"service,omitempty"`
	Category *Category `json:"category,omitempty"`
}

// NewEvent carries the caller-supplied fields for CreateEvent.
type NewEvent struct {
	Title       string
	Description *string
	Date        time.Time
	StartTime   *string
	EndTime     *string
	ServiceID   uint64
	CategoryID  *uint64
}

// GetEvent returns the bare event record or ErrEventNotFound.
func (s *Store) GetEvent(ctx context.Context, id uint64) (*Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.events[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	out := *e
	return &out, nil
}

// GetEventWithService resolves the event together with its host service and
// optional category. A missing event fails with ErrEventNotFound; missing
// references stay nil on the view.
func (s *Store) GetEventWithService(ctx context.Context, id uint64) (*EventWithService, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.events[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	v := &EventWithService{Event: *e}
	if svc, ok := s.services[e.ServiceID]; ok {
		sc := *svc
		v.Service = &sc
	}
	if e.CategoryID != nil {
		if c, ok := s.categories[*e.CategoryID]; ok {
			cc := *c
			v.Category = &cc
		}
	}
	return v, nil
}

// GetAllEvents returns every event in insertion order.
func (s *Store) GetAllEvents(ctx context.Context) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, 0, len(s.events))
	for id := uint64(1); id < s.nextEventID; id++ {
		if e, ok := s.events[id]; ok {
			out = append(out, *e)
		}
	}
	return out
}

// GetEventsByService returns the events hosted at the given service in
// creation order.
func (s *Store) GetEventsByService(ctx context.Context, serviceID uint64) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Event{}
	for id := uint64(1); id < s.nextEventID; id++ {
		if e, ok := s.events[id]; ok && e.ServiceID == serviceID {
			out = append(out, *e)
		}
	}
	return out
}

// CreateEvent assigns the next event id and stores the record. The
// referenced service and category are not checked for existence.
func (s *Store) CreateEvent(ctx context.Context, in NewEvent) *Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := &Event{
		ID:          s.nextEventID,
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		ServiceID:   in.ServiceID,
		CategoryID:  in.CategoryID,
	}
	s.nextEventID++
	s.events[e.ID] = e
	out := *e
	return &out
}
