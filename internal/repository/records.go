package repository

import "custsvc/internal/domain"

type customerRecord struct {
	ID        int64  `gorm:"column:id;primaryKey"`
	FirstName string `gorm:"column:firstName"`
	LastName  string `gorm:"column:lastName"`
	Phone     string `gorm:"column:phone"`
	Email     string `gorm:"column:email"`
}

func (customerRecord) TableName() string { return "customers" }

type addressRecord struct {
	ID         int64  `gorm:"column:id;primaryKey"`
	CustomerID int64  `gorm:"column:customerId"`
	Street     string `gorm:"column:street"`
	City       string `gorm:"column:city"`
	State      string `gorm:"column:state"`
	Zip        string `gorm:"column:zip"`
	IsPrimary  bool   `gorm:"column:isPrimary"`
}

func (addressRecord) TableName() string { return "addresses" }

type customerRowRecord struct {
	ID        int64   `gorm:"column:id"`
	FirstName string  `gorm:"column:firstName"`
	LastName  string  `gorm:"column:lastName"`
	Phone     string  `gorm:"column:phone"`
	Email     string  `gorm:"column:email"`
	Street    *string `gorm:"column:street"`
	City      *string `gorm:"column:city"`
	State     *string `gorm:"column:state"`
	Zip       *string `gorm:"column:zip"`
}

func newAddressRecord(customerID int64, a domain.Address) addressRecord {
	return addressRecord{
		CustomerID: customerID,
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		Zip:        a.Zip,
		IsPrimary:  a.IsPrimary,
	}
}

func (r addressRecord) toDomain() domain.Address {
	return domain.Address{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		Street:     r.Street,
		City:       r.City,
		State:      r.State,
		Zip:        r.Zip,
		IsPrimary:  r.IsPrimary,
	}
}

func (r customerRowRecord) toDomain() domain.CustomerRow {
	return domain.CustomerRow{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Email:     r.Email,
		Street:    r.Street,
		City:      r.City,
		State:     r.State,
		Zip:       r.Zip,
	}
}
