// Package types defines the Madang entities (Book, Customer, Order), the
// narrow Database interface the bookstore flows run against, the backend
// Config, and the standard errors shared across packages.
package types
