package types

import "strconv"

// Book is a catalog entry. The bookstore flows never write books.
type Book struct {
	BookID    int64  `json:"bookid"`
	BookName  string `json:"bookname"`
	Publisher string `json:"publisher,omitempty"`
	Price     int64  `json:"price,omitempty"`
}

// Label renders the book the way the catalog lists it: "<bookid>,<bookname>".
func (b Book) Label() string {
	return strconv.FormatInt(b.BookID, 10) + "," + b.BookName
}
