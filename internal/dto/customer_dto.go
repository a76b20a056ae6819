package dto

import (
	"bytes"
	"encoding/json"
)

// Text is a string field that also accepts a bare JSON number, kept as
// written (1234567890 becomes "1234567890").
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] != '"' && !bytes.Equal(b, []byte("null")) {
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*t = Text(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*t = Text(s)
	return nil
}

type AddressRequest struct {
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	IsPrimary bool   `json:"isPrimary"`
}

type CreateCustomerRequest struct {
	FirstName string           `json:"firstName"`
	LastName  string           `json:"lastName"`
	Phone     Text             `json:"phone"`
	Email     string           `json:"email"`
	Addresses []AddressRequest `json:"addresses"`
}

type UpdateCustomerRequest = CreateCustomerRequest
