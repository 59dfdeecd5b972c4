package sqlite

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/madang/pkg/types"
)

// exportTable names one table dump: the query that reads it and the JSONL
// file it is written to.
type exportTable struct {
	name  string
	file  string
	query string
}

var exportTables = []exportTable{
	{"Book", "book.jsonl", `SELECT bookid, bookname, publisher, price FROM Book ORDER BY bookid`},
	{"Customer", "customer.jsonl", `SELECT custid, name, address, phone FROM Customer ORDER BY custid`},
	{"Orders", "orders.jsonl", `SELECT orderid, custid, bookid, saleprice, CAST(orderdate AS TEXT) AS orderdate FROM Orders ORDER BY orderid`},
}

// ExportCount reports how many rows one table dump holds.
type ExportCount struct {
	Table string `json:"table"`
	File  string `json:"file"`
	Rows  int    `json:"rows"`
}

// Export writes every table to dir as JSONL, one object per row keyed by
// column name. NULL columns are written as null. Each file is replaced
// atomically.
func (b *Backend) Export(ctx context.Context, dir string) ([]ExportCount, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}

	var counts []ExportCount
	for _, t := range exportTables {
		rs, err := b.Query(ctx, t.query)
		if err != nil {
			return counts, fmt.Errorf("reading %s: %w", t.name, err)
		}
		records, err := encodeRows(rs)
		if err != nil {
			return counts, fmt.Errorf("encoding %s: %w", t.name, err)
		}
		path := filepath.Join(dir, t.file)
		if err := writeJSONL(path, records); err != nil {
			return counts, fmt.Errorf("writing %s: %w", path, err)
		}
		counts = append(counts, ExportCount{Table: t.name, File: path, Rows: len(records)})
	}
	return counts, nil
}

// encodeRows turns each row into a JSON object.
func encodeRows(rs *types.ResultSet) ([]json.RawMessage, error) {
	records := make([]json.RawMessage, 0, rs.Len())
	for _, row := range rs.Rows {
		obj := make(map[string]any, len(rs.Columns))
		for i, col := range rs.Columns {
			v := row[i]
			if raw, ok := v.([]byte); ok {
				v = string(raw)
			}
			obj[col] = v
		}
		data, err := json.Marshal(obj)
		if err != nil {
			return nil, err
		}
		records = append(records, data)
	}
	return records, nil
}

// writeJSONL atomically writes records to a JSONL file using the temp-file,
// fsync, rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	fail := func(step string, err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", step, err)
	}

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			return fail("writing record", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fail("writing newline", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fail("flushing buffer", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("syncing temp file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
