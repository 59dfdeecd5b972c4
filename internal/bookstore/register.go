package bookstore

import (
	"context"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/mesh-intelligence/madang/pkg/types"
)

// Register inserts a new customer and makes it the session's current
// customer. The database assigns the id: one past the current maximum, or 1
// for an empty table. A failed insert leaves the session unchanged.
func (s *Service) Register(ctx context.Context, sess *Session, name, address, phone string) (types.Customer, error) {
	if name == "" {
		s.surface.Warn("A customer name is required.")
		return types.Customer{}, types.ErrEmptyName
	}

	c := types.Customer{
		Name:    norm.NFC.String(name),
		Address: address,
		Phone:   phone,
	}
	wr, ok := s.exec.Write(ctx, stmtInsertCustomer, c.Name, c.Address, c.Phone)
	if !ok {
		return types.Customer{}, types.ErrQueryFailed
	}
	c.CustID = wr.LastInsertID

	sess.bind(c.CustID, c.Name)
	s.surface.Success(fmt.Sprintf("Customer %q registered (ID: %d).", c.Name, c.CustID))
	s.surface.Refresh()
	s.log.Info("customer registered", "session", sess.ID, "custid", c.CustID)
	return c, nil
}
