package bookstore

import "github.com/google/uuid"

// Session is the per-session memory of which customer is active. Lookup and
// Register write it; PlaceOrder reads it. It is never persisted.
type Session struct {
	// ID tags log records for one interactive session.
	ID string

	customerID  int64
	hasCustomer bool
	name        string
}

// NewSession returns an empty session with a fresh UUID v7 id.
func NewSession() *Session {
	id, err := uuid.NewV7()
	if err != nil {
		return &Session{ID: uuid.New().String()}
	}
	return &Session{ID: id.String()}
}

// Customer returns the current customer id, if one is resolved.
func (s *Session) Customer() (int64, bool) {
	return s.customerID, s.hasCustomer
}

// Name returns the current customer name. It stays set after a lookup that
// found nobody.
func (s *Session) Name() string {
	return s.name
}

func (s *Session) bind(id int64, name string) {
	s.customerID = id
	s.hasCustomer = true
	s.name = name
}

func (s *Session) unbind(name string) {
	s.customerID = 0
	s.hasCustomer = false
	s.name = name
}
