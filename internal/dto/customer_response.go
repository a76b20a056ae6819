package dto

type CreatedResponse struct {
	ID int64 `json:"id"`
}

// CustomerRowResponse is one joined row of GET /customers/.
type CustomerRowResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	Street    *string `json:"street"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	Zip       *string `json:"zip"`
}

type AddressResponse struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customerId"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	Zip        string `json:"zip"`
	IsPrimary  bool   `json:"isPrimary"`
}

type CustomerResponse struct {
	ID        int64             `json:"id"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Phone     string            `json:"phone"`
	Email     string            `json:"email"`
	Addresses []AddressResponse `json:"addresses"`
}
