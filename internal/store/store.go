// Package store implements the in-memory directory store. It owns every
// entity collection (categories, services, offerings, events, parking,
// alerts, users), assigns per-collection identities and answers the
// relational and geospatial queries the HTTP layer exposes. All state lives
// in process memory for the lifetime of the server; there is no persistence.
package store

import "sync"

// Store holds all collections behind a single lock. Identity counters are
// independent per collection, start at 1 and are never reused; entities are
// immutable once created, so readers only ever observe complete records.
type Store struct {
	mu sync.RWMutex

	users      map[uint64]*User
	categories map[uint64]*Category
	services   map[uint64]*Service
	offerings  map[uint64]*Offering
	events     map[uint64]*Event
	parking    map[uint64]*Parking
	alerts     map[uint64]*Alert

	nextUserID     uint64
	nextCategoryID uint64
	nextServiceID  uint64
	nextOfferingID uint64
	nextEventID    uint64
	nextParkingID  uint64
	nextAlertID    uint64
}

// New constructs an empty store. Each server process builds exactly one and
// injects it into the handlers; tests build a fresh one per case.
func New() *Store {
	return &Store{
		users:      make(map[uint64]*User),
		categories: make(map[uint64]*Category),
		services:   make(map[uint64]*Service),
		offerings:  make(map[uint64]*Offering),
		events:     make(map[uint64]*Event),
		parking:    make(map[uint64]*Parking),
		alerts:     make(map[uint64]*Alert),

		nextUserID:     1,
		nextCategoryID: 1,
		nextServiceID:  1,
		nextOfferingID: 1,
		nextEventID:    1,
		nextParkingID:  1,
		nextAlertID:    1,
	}
}
