package store

import "context"

// Parking is a parking facility associated with one service. Type describes
// the kind of parking ("Free", "Garage", "Street"); Rate is a display string
// because real-world rates rarely reduce to a number.
type Parking struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Type      string  `json:"type"`
	Hours     *string `json:"hours,omitempty"`
	Rate      *string `json:"rate,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	ServiceID uint64  `json:"serviceId"`
}

// NewParking carries the caller-supplied fields for CreateParking.
type NewParking struct {
	Name      string
	Address   string
	Type      string
	Hours     *string
	Rate      *string
	Latitude  float64
	Longitude float64
	ServiceID uint64
}

// GetParkingByService returns the parking facilities attached to the given
// service in creation order.
func (s *Store) GetParkingByService(ctx context.Context, serviceID uint64) []Parking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parkingByServiceLocked(serviceID)
}

// CreateParking assigns the next parking id and stores the record. The
// referenced service is not checked for existence.
func (s *Store) CreateParking(ctx context.Context, in NewParking) *Parking {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &Parking{
		ID:        s.nextParkingID,
		Name:      in.Name,
		Address:   in.Address,
		Type:      in.Type,
		Hours:     in.Hours,
		Rate:      in.Rate,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		ServiceID: in.ServiceID,
	}
	s.nextParkingID++
	s.parking[p.ID] = p
	out := *p
	return &out
}

func (s *Store) parkingByServiceLocked(serviceID uint64) []Parking {
	out := []Parking{}
	for id := uint64(1); id < s.nextParkingID; id++ {
		if p, ok := s.parking[id]; ok && p.ServiceID == serviceID {
			out = append(out, *p)
		}
	}
	return out
}
