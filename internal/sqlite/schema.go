// Package sqlite implements the embedded database backend for madang.
package sqlite

// Schema DDL for the Madang tables. Statements are idempotent so Attach can
// run them against an existing database file; columns are never altered.
const (
	createBook = `CREATE TABLE IF NOT EXISTS Book (
    bookid INTEGER PRIMARY KEY,
    bookname TEXT NOT NULL,
    publisher TEXT,
    price INTEGER
);`

	createCustomer = `CREATE TABLE IF NOT EXISTS Customer (
    custid INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    address TEXT,
    phone TEXT
);`

	createOrders = `CREATE TABLE IF NOT EXISTS Orders (
    orderid INTEGER PRIMARY KEY,
    custid INTEGER NOT NULL,
    bookid INTEGER NOT NULL,
    saleprice INTEGER NOT NULL CHECK (saleprice >= 1),
    orderdate DATE,
    FOREIGN KEY (custid) REFERENCES Customer(custid),
    FOREIGN KEY (bookid) REFERENCES Book(bookid)
);`
)

// Index DDL for the lookup join.
const (
	idxCustomerName = `CREATE INDEX IF NOT EXISTS idx_customer_name ON Customer(name);`
	idxOrdersCust   = `CREATE INDEX IF NOT EXISTS idx_orders_custid ON Orders(custid);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createBook,
	createCustomer,
	createOrders,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxCustomerName,
	idxOrdersCust,
}
