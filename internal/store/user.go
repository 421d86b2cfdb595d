package store

import "context"

// User is a credential record. The store treats the password as an opaque
// string; the handler layer hashes it before it ever gets here. Users take
// no part in directory queries.
type User struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// NewUser carries the caller-supplied fields for CreateUser.
type NewUser struct {
	Username string
	Password string
}

// GetUser returns the user with the given id or ErrUserNotFound.
func (s *Store) GetUser(ctx context.Context, id uint64) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	out := *u
	return &out, nil
}

// GetUserByUsername scans for a user with the given username. Usernames are
// meant to be unique; with duplicates present the earliest row wins.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for id := uint64(1); id < s.nextUserID; id++ {
		if u, ok := s.users[id]; ok && u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, ErrUserNotFound
}

// CreateUser assigns the next user id and stores the record.
func (s *Store) CreateUser(ctx context.Context, in NewUser) *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &User{
		ID:       s.nextUserID,
		Username: in.Username,
		Password: in.Password,
	}
	s.nextUserID++
	s.users[u.ID] = u
	out := *u
	return &out
}
