package bookstore

import (
	"context"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/mesh-intelligence/madang/pkg/types"
)

// LookupResult is what the lookup view renders.
type LookupResult struct {
	Name       string               `json:"name"`
	Found      bool                 `json:"found"`
	CustomerID int64                `json:"custid"`
	History    []types.HistoryEntry `json:"history"`
}

// Lookup resolves a customer by exact name and collects their order history,
// newest first. It binds the session to the first row's customer; when several
// customers share the name that first row wins.
//
// An empty name runs nothing and returns ErrEmptyName without surfacing a
// message. A name with no match is not an error: Found is false and the
// session loses its customer but keeps the searched name.
func (s *Service) Lookup(ctx context.Context, sess *Session, name string) (LookupResult, error) {
	if name == "" {
		return LookupResult{}, types.ErrEmptyName
	}
	name = norm.NFC.String(name)

	rows, ok := s.exec.Read(ctx, stmtOrderHistory, name)
	if !ok {
		return LookupResult{}, types.ErrQueryFailed
	}

	res := LookupResult{Name: name}
	if rows.Len() == 0 {
		sess.unbind(name)
		s.surface.Warn(fmt.Sprintf("Customer %q does not exist.", name))
		s.log.Info("lookup found no customer", "session", sess.ID, "name", name)
		return res, nil
	}

	custid, _ := cellInt64(rows.Rows[0][0])
	res.Found = true
	res.CustomerID = custid

	for _, row := range rows.Rows {
		bookName, ok := cellString(row[2])
		if !ok {
			continue
		}
		date, _ := cellString(row[3])
		price, _ := cellInt64(row[4])
		res.History = append(res.History, types.HistoryEntry{
			BookName:  bookName,
			OrderDate: NormalizeDate(date),
			SalePrice: price,
		})
	}
	if len(res.History) == 0 {
		s.surface.Info(fmt.Sprintf("%s has no order history.", name))
	}

	sess.bind(custid, name)
	s.log.Info("customer resolved", "session", sess.ID, "custid", custid, "orders", len(res.History))
	return res, nil
}
