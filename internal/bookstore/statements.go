package bookstore

// SQL statements issued by the flows. Every value is bound, never interpolated.
const (
	stmtCatalog = `SELECT bookid, bookname FROM Book ORDER BY bookid`

	stmtOrderHistory = `SELECT c.custid, c.name, b.bookname, CAST(o.orderdate AS TEXT) AS orderdate, o.saleprice
FROM Customer c
LEFT JOIN Orders o ON c.custid = o.custid
LEFT JOIN Book b ON o.bookid = b.bookid
WHERE c.name = ?
ORDER BY o.orderdate DESC NULLS LAST, o.orderid DESC`

	// custid is an INTEGER PRIMARY KEY: SQLite assigns max(custid)+1, or 1
	// on an empty table, inside the insert itself.
	stmtInsertCustomer = `INSERT INTO Customer (name, address, phone) VALUES (?, ?, ?)`

	stmtInsertOrder = `INSERT INTO Orders (custid, bookid, saleprice, orderdate) VALUES (?, ?, ?, ?)`
)
