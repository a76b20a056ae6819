package domain

type Address struct {
	ID         int64
	CustomerID int64
	Street     string
	City       string
	State      string
	Zip        string
	IsPrimary  bool
}

type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Addresses []Address
}

// CustomerRow is one row of the customers/addresses left join. Address
// columns are nil for a customer without addresses.
type CustomerRow struct {
	ID        int64
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Street    *string
	City      *string
	State     *string
	Zip       *string
}

// Filter holds optional substring matches; empty fields are ignored.
type Filter struct {
	Name  string
	City  string
	State string
	Zip   string
}
