package types

// Customer is a registered buyer. CustID is assigned by the database on insert.
type Customer struct {
	CustID  int64  `json:"custid"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}
