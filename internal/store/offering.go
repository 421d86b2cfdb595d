package store

import "context"

// Offering is a specific named program available at a service location, for
// example a food pantry or a job-training course. Many offerings may share a
// service and names are not unique.
type Offering struct {
	ID        uint64 `json:"id"`
	ServiceID uint64 `json:"serviceId"`
	Name      string `json:"name"`
}

// NewOffering carries the caller-supplied fields for CreateOffering.
type NewOffering struct {
	ServiceID uint64
	Name      string
}

// GetOfferingsByService returns the offerings attached to the given service
// in creation order. An unknown service yields an empty slice.
func (s *Store) GetOfferingsByService(ctx context.Context, serviceID uint64) []Offering {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.offeringsByServiceLocked(serviceID)
}

// CreateOffering assigns the next offering id and stores the record. The
// referenced service is not checked for existence.
func (s *Store) CreateOffering(ctx context.Context, in NewOffering) *Offering {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := &Offering{
		ID:        s.nextOfferingID,
		ServiceID: in.ServiceID,
		Name:      in.Name,
	}
	s.nextOfferingID++
	s.offerings[o.ID] = o
	out := *o
	return &out
}

func (s *Store) offeringsByServiceLocked(serviceID uint64) []Offering {
	out := []Offering{}
	for id := uint64(1); id < s.nextOfferingID; id++ {
		if o, ok := s.offerings[id]; ok && o.ServiceID == serviceID {
			out = append(out, *o)
		}
	}
	return out
}
