package store

import "context"

// Category groups services for filtering and map styling. Names are meant to
// be unique; the store does not reject a duplicate name and a second create
// with the same name simply produces a second row. Categories are immutable,
// there is no update or delete.
type Category struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// NewCategory carries the caller-supplied fields for CreateCategory.
type NewCategory struct {
	Name  string
	Icon  string
	Color string
}

// GetCategory returns the category with the given id or ErrCategoryNotFound.
func (s *Store) GetCategory(ctx context.Context, id uint64) (*Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	out := *c
	return &out, nil
}

// GetAllCategories returns every category in insertion order. An empty result
// is how callers detect a fresh store before seeding demo data.
func (s *Store) GetAllCategories(ctx context.Context) []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Category, 0, len(s.categories))
	for id := uint64(1); id < s.nextCategoryID; id++ {
		if c, ok := s.categories[id]; ok {
			out = append(out, *c)
		}
	}
	return out
}

// CreateCategory assigns the next category id and stores the record.
func (s *Store) CreateCategory(ctx context.Context, in NewCategory) *Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := &Category{
		ID:    s.nextCategoryID,
		Name:  in.Name,
		Icon:  in.Icon,
		Color: in.Color,
	}
	s.nextCategoryID++
	s.categories[c.ID] = c
	out := *c
	return &out
}
