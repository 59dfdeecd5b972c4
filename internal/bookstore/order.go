package bookstore

import (
	"context"
	"fmt"

	"github.com/mesh-intelligence/madang/pkg/types"
)

// PlaceOrder records a purchase of the selected book by the session's
// current customer, dated today. Nothing is written unless a customer is
// resolved, a real book is selected, and the price meets the minimum.
//
// The rendered order history is not refreshed; a new Lookup shows the order.
func (s *Service) PlaceOrder(ctx context.Context, sess *Session, entry CatalogEntry, price int64) (types.Order, error) {
	custid, ok := sess.Customer()
	if !ok {
		s.surface.Warn("Look up or register a customer before entering a transaction.")
		return types.Order{}, types.ErrNoCustomer
	}
	if !entry.Selected {
		s.surface.Warn("Select a book.")
		return types.Order{}, types.ErrNoBook
	}
	if price < s.pricing.Min {
		s.surface.Warn(fmt.Sprintf("Sale price must be at least %d.", s.pricing.Min))
		return types.Order{}, types.ErrInvalidPrice
	}

	o := types.Order{
		CustID:    custid,
		BookID:    entry.Book.BookID,
		SalePrice: price,
		OrderDate: s.now().Format(types.OrderDateLayout),
	}
	wr, ok := s.exec.Write(ctx, stmtInsertOrder, o.CustID, o.BookID, o.SalePrice, o.OrderDate)
	if !ok {
		return types.Order{}, types.ErrQueryFailed
	}
	o.OrderID = wr.LastInsertID

	s.surface.Success(fmt.Sprintf("Transaction recorded (order ID: %d).", o.OrderID))
	s.log.Info("order placed", "session", sess.ID, "orderid", o.OrderID, "custid", o.CustID, "bookid", o.BookID)
	return o, nil
}
