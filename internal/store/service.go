package store

import (
	"context"
	"strings"

	"github.com/atxserves/community-directory/internal/geo"
)

// DefaultNearbyRadiusMiles is applied when a nearby query does not name a
// radius of its own.
const DefaultNearbyRadiusMiles = 10

// Service is a physical location offering community assistance programs.
// Optional fields are pointers and stay absent when the creator did not
// supply them. CategoryID should reference an existing category but is not
// checked at write time; resolving a dangling reference later yields a nil
// category on the composite view.
type Service struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Phone       *string `json:"phone,omitempty"`
	Hours       *string `json:"hours,omitempty"`
	Status      string  `json:"status"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CategoryID  uint64  `json:"categoryId"`
}

// ServiceWithDetails is the composite read view: the service plus its
// resolved category and offerings. Parking is attached only by the by-id
// detail read; list queries leave it nil.
type ServiceWithDetails struct {
	Service
	Category  *Category  `json:"category,omitempty"`
	Offerings []Offering `json:"offerings"`
	Parking   []Parking  `json:"parking,omitempty"`
}

// NewService carries the caller-supplied fields for CreateService.
// Status defaults to "open" when empty.
type NewService struct {
	Name        string
	Address     string
	Phone       *string
	Hours       *string
	Status      string
	Description *string
	ImageURL    *string
	Latitude    float64
	Longitude   float64
	CategoryID  uint64
}

// GetService returns the bare service record or ErrServiceNotFound.
func (s *Store) GetService(ctx context.Context, id uint64) (*Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	svc, ok := s.services[id]
	if !ok {
		return nil, ErrServiceNotFound
	}
	out := *svc
	return &out, nil
}

// GetServiceWithDetails resolves the service, its category, its offerings and
// its parking. A missing category leaves the category field nil rather than
// failing the read; a missing service fails with ErrServiceNotFound.
func (s *Store) GetServiceWithDetails(ctx context.Context, id uint64) (*ServiceWithDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	svc, ok := s.services[id]
	if !ok {
		return nil, ErrServiceNotFound
	}
	d := s.detailsLocked(svc)
	d.Parking = s.parkingByServiceLocked(id)
	return d, nil
}

// GetAllServices returns every bare service record in insertion order.
func (s *Store) GetAllServices(ctx context.Context) []Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Service, 0, len(s.services))
	for id := uint64(1); id < s.nextServiceID; id++ {
		if svc, ok := s.services[id]; ok {
			out = append(out, *svc)
		}
	}
	return out
}

// GetServicesByCategory returns the detail view of every service whose
// CategoryID equals the argument, in insertion order.
func (s *Store) GetServicesByCategory(ctx context.Context, categoryID uint64) []ServiceWithDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []ServiceWithDetails{}
	for id := uint64(1); id < s.nextServiceID; id++ {
		svc, ok := s.services[id]
		if !ok || svc.CategoryID != categoryID {
			continue
		}
		out = append(out, *s.detailsLocked(svc))
	}
	return out
}

// GetServicesNearLocation returns the detail view of every service within
// radius miles of the given point, great-circle distance, boundary
// inclusive. A radius of zero or less falls back to the default.
func (s *Store) GetServicesNearLocation(ctx context.Context, latitude, longitude, radius float64) []ServiceWithDetails {
	if radius <= 0 {
		radius = DefaultNearbyRadiusMiles
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []ServiceWithDetails{}
	for id := uint64(1); id < s.nextServiceID; id++ {
		svc, ok := s.services[id]
		if !ok {
			continue
		}
		if geo.Distance(latitude, longitude, svc.Latitude, svc.Longitude) > radius {
			continue
		}
		out = append(out, *s.detailsLocked(svc))
	}
	return out
}

// SearchServices returns the detail view of every service whose name,
// description or address contains the query, case-insensitively. Matching is
// plain substring, no tokenization or ranking.
func (s *Store) SearchServices(ctx context.Context, query string) []ServiceWithDetails {
	q := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []ServiceWithDetails{}
	for id := uint64(1); id < s.nextServiceID; id++ {
		svc, ok := s.services[id]
		if !ok {
			continue
		}
		if !strings.Contains(strings.ToLower(svc.Name), q) &&
			!(svc.Description != nil && strings.Contains(strings.ToLower(*svc.Description), q)) &&
			!strings.Contains(strings.ToLower(svc.Address), q) {
			continue
		}
		out = append(out, *s.detailsLocked(svc))
	}
	return out
}

// CreateService assigns the next service id, applies defaults and stores the
// record. The referenced category is not checked for existence.
func (s *Store) CreateService(ctx context.Context, in NewService) *Service {
	status := in.Status
	if status == "" {
		status = "open"
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	svc := &Service{
		ID:          s.nextServiceID,
		Name:        in.Name,
		Address:     in.Address,
		Phone:       in.Phone,
		Hours:       in.Hours,
		Status:      status,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		CategoryID:  in.CategoryID,
	}
	s.nextServiceID++
	s.services[svc.ID] = svc
	out := *svc
	return &out
}

// detailsLocked assembles the category-and-offerings view of a service.
// Callers must hold at least the read lock.
func (s *Store) detailsLocked(svc *Service) *ServiceWithDetails {
	d := &ServiceWithDetails{
		Service:   *svc,
		Offerings: s.offeringsByServiceLocked(svc.ID),
	}
	if c, ok := s.categories[svc.CategoryID]; ok {
		cc := *c
		d.Category = &cc
	}
	return d
}
