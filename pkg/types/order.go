package types

// OrderDateLayout is the storage form of Orders.orderdate.
const OrderDateLayout = "2006-01-02"

// Order is one purchase of a book by a customer.
type Order struct {
	OrderID   int64  `json:"orderid"`
	CustID    int64  `json:"custid"`
	BookID    int64  `json:"bookid"`
	SalePrice int64  `json:"saleprice"`
	OrderDate string `json:"orderdate"` // YYYY-MM-DD
}

// HistoryEntry is one row of a customer's rendered order history.
// OrderDate is always in the full "YYYY-MM-DD HH:MM:SS" form.
type HistoryEntry struct {
	BookName  string `json:"bookname"`
	OrderDate string `json:"orderdate"`
	SalePrice int64  `json:"saleprice"`
}
