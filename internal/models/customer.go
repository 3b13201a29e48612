package models

// Customer is a row of the customers table.
type Customer struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
}
