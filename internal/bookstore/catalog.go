package bookstore

import (
	"context"

	"github.com/mesh-intelligence/madang/pkg/types"
)

// NoSelectionLabel is how the sentinel entry renders.
const NoSelectionLabel = "(select a book)"

// CatalogEntry is one selectable item. The zero value is the "no selection"
// sentinel.
type CatalogEntry struct {
	Book     types.Book
	Selected bool
}

// Label renders the entry for a selector.
func (e CatalogEntry) Label() string {
	if !e.Selected {
		return NoSelectionLabel
	}
	return e.Book.Label()
}

// Catalog is the selectable book list. Index 0 is always the sentinel.
type Catalog []CatalogEntry

// Books returns the catalog without the sentinel.
func (c Catalog) Books() []types.Book {
	var out []types.Book
	for _, e := range c {
		if e.Selected {
			out = append(out, e.Book)
		}
	}
	return out
}

// Entry returns the entry at i, or the sentinel when i is out of range.
func (c Catalog) Entry(i int) CatalogEntry {
	if i < 0 || i >= len(c) {
		return CatalogEntry{}
	}
	return c[i]
}

// IndexOf returns the position of bookID, or 0 (the sentinel) if absent.
func (c Catalog) IndexOf(bookID int64) int {
	for i, e := range c {
		if e.Selected && e.Book.BookID == bookID {
			return i
		}
	}
	return 0
}

// LoadCatalog reads every book into a fresh Catalog. When the read fails the
// failure is surfaced and the catalog holds only the sentinel.
func LoadCatalog(ctx context.Context, exec *Executor) Catalog {
	catalog := Catalog{CatalogEntry{}}

	rows, ok := exec.Read(ctx, stmtCatalog)
	if !ok {
		exec.surface.Error("Could not load the book catalog. Check the database location.")
		return catalog
	}

	for i, row := range rows.Rows {
		id, idOK := cellInt64(row[0])
		name, _ := cellString(row[1])
		if !idOK {
			exec.log.Warn("skipping catalog row without a book id", "row", i)
			continue
		}
		catalog = append(catalog, CatalogEntry{
			Book:     types.Book{BookID: id, BookName: name},
			Selected: true,
		})
	}
	exec.log.Debug("catalog loaded", "books", len(catalog)-1)
	return catalog
}
