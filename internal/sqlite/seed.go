package sqlite

import (
	"context"
	"fmt"

	"github.com/mesh-intelligence/madang/pkg/types"
)

// Madang sample data seeded by `madang init --seed`.
var (
	seedBooks = []types.Book{
		{BookID: 1, BookName: "축구의 역사", Publisher: "굿스포츠", Price: 7000},
		{BookID: 2, BookName: "축구아는 여자", Publisher: "나무수", Price: 13000},
		{BookID: 3, BookName: "축구의 이해", Publisher: "대한미디어", Price: 22000},
		{BookID: 4, BookName: "골프 바이블", Publisher: "대한미디어", Price: 35000},
		{BookID: 5, BookName: "피겨 교본", Publisher: "굿스포츠", Price: 8000},
		{BookID: 6, BookName: "역도 단계별기술", Publisher: "굿스포츠", Price: 6000},
		{BookID: 7, BookName: "야구의 추억", Publisher: "이상미디어", Price: 20000},
		{BookID: 8, BookName: "야구를 부탁해", Publisher: "이상미디어", Price: 13000},
		{BookID: 9, BookName: "올림픽 이야기", Publisher: "삼성당", Price: 7500},
		{BookID: 10, BookName: "Olympic Champions", Publisher: "Pearson", Price: 13000},
	}

	seedCustomers = []types.Customer{
		{CustID: 1, Name: "박지성", Address: "영국 맨체스타", Phone: "000-5000-0001"},
		{CustID: 2, Name: "김연아", Address: "대한민국 서울", Phone: "000-6000-0001"},
		{CustID: 3, Name: "김연경", Address: "대한민국 경기도", Phone: "000-7000-0001"},
		{CustID: 4, Name: "추신수", Address: "미국 클리블랜드", Phone: "000-8000-0001"},
		{CustID: 5, Name: "박세리", Address: "대한민국 대전"},
	}

	seedOrders = []types.Order{
		{OrderID: 1, CustID: 1, BookID: 1, SalePrice: 6000, OrderDate: "2014-07-01"},
		{OrderID: 2, CustID: 1, BookID: 3, SalePrice: 21000, OrderDate: "2014-07-03"},
		{OrderID: 3, CustID: 2, BookID: 5, SalePrice: 8000, OrderDate: "2014-07-03"},
		{OrderID: 4, CustID: 3, BookID: 6, SalePrice: 6000, OrderDate: "2014-07-04"},
		{OrderID: 5, CustID: 4, BookID: 7, SalePrice: 20000, OrderDate: "2014-07-05"},
		{OrderID: 6, CustID: 1, BookID: 2, SalePrice: 12000, OrderDate: "2014-07-07"},
		{OrderID: 7, CustID: 4, BookID: 8, SalePrice: 13000, OrderDate: "2014-07-07"},
		{OrderID: 8, CustID: 3, BookID: 10, SalePrice: 12000, OrderDate: "2014-07-08"},
		{OrderID: 9, CustID: 2, BookID: 10, SalePrice: 7000, OrderDate: "2014-07-09"},
		{OrderID: 10, CustID: 3, BookID: 8, SalePrice: 13000, OrderDate: "2014-07-10"},
	}
)

// Seed loads the Madang sample data when Book, Customer and Orders are all
// empty. It reports whether anything was written; any existing row leaves the
// database untouched.
func (b *Backend) Seed(ctx context.Context) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return false, types.ErrNotAttached
	}

	for _, table := range []string{"Book", "Customer", "Orders"} {
		var count int
		if err := b.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
			return false, fmt.Errorf("counting %s rows: %w", table, err)
		}
		if count > 0 {
			return false, nil
		}
	}

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, bk := range seedBooks {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO Book (bookid, bookname, publisher, price) VALUES (?, ?, ?, ?)",
			bk.BookID, bk.BookName, bk.Publisher, bk.Price,
		)
		if err != nil {
			return false, fmt.Errorf("seeding book %d: %w", bk.BookID, err)
		}
	}
	for _, c := range seedCustomers {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO Customer (custid, name, address, phone) VALUES (?, ?, ?, ?)",
			c.CustID, c.Name, c.Address, nullIfEmpty(c.Phone),
		)
		if err != nil {
			return false, fmt.Errorf("seeding customer %d: %w", c.CustID, err)
		}
	}
	for _, o := range seedOrders {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO Orders (orderid, custid, bookid, saleprice, orderdate) VALUES (?, ?, ?, ?, ?)",
			o.OrderID, o.CustID, o.BookID, o.SalePrice, o.OrderDate,
		)
		if err != nil {
			return false, fmt.Errorf("seeding order %d: %w", o.OrderID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing seed transaction: %w", err)
	}
	return true, nil
}

// nullIfEmpty maps "" to SQL NULL, matching the sample data's missing phone.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
