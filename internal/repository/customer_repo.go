package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"custsvc/internal/domain"
)

const listColumns = `customers.id, customers."firstName", customers."lastName", customers.phone, customers.email,
	addresses.street, addresses.city, addresses.state, addresses.zip`

type CustomerRepo struct{ db *gorm.DB }

func NewCustomerRepo(db *gorm.DB) *CustomerRepo { return &CustomerRepo{db: db} }

func (r *CustomerRepo) ListCustomers(ctx context.Context, f domain.Filter) ([]domain.CustomerRow, error) {
	q := r.db.WithContext(ctx).
		Table("customers").
		Select(listColumns).
		Joins(`LEFT JOIN addresses ON customers.id = addresses."customerId"`)

	if f.Name != "" {
		p := like(f.Name)
		q = q.Where(`(customers."firstName" LIKE ? OR customers."lastName" LIKE ?)`, p, p)
	}
	if f.City != "" {
		q = q.Where("addresses.city LIKE ?", like(f.City))
	}
	if f.State != "" {
		q = q.Where("addresses.state LIKE ?", like(f.State))
	}
	if f.Zip != "" {
		q = q.Where("addresses.zip LIKE ?", like(f.Zip))
	}

	var recs []customerRowRecord
	if err := q.Order("customers.id, addresses.id").Scan(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]domain.CustomerRow, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toDomain())
	}
	return out, nil
}

func (r *CustomerRepo) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	var rec customerRecord
	err := r.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var addrs []addressRecord
	if err := r.db.WithContext(ctx).Where(`"customerId" = ?`, id).Order("id").Find(&addrs).Error; err != nil {
		return nil, err
	}
	c := domain.Customer{
		ID:        rec.ID,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Phone:     rec.Phone,
		Email:     rec.Email,
		Addresses: make([]domain.Address, 0, len(addrs)),
	}
	for _, a := range addrs {
		c.Addresses = append(c.Addresses, a.toDomain())
	}
	return &c, nil
}

func (r *CustomerRepo) CreateCustomer(ctx context.Context, c domain.Customer) (int64, error) {
	rec := customerRecord{FirstName: c.FirstName, LastName: c.LastName, Phone: c.Phone, Email: c.Email}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}
		return insertAddresses(tx, rec.ID, c.Addresses)
	})
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

// UpdateCustomer replaces the scalar fields and the whole address set.
// An unknown id is a no-op: addresses are only replaced when the customer
// row exists, so no orphan addresses are written and Postgres does not
// reject the insert on the customerId foreign key.
func (r *CustomerRepo) UpdateCustomer(ctx context.Context, id int64, c domain.Customer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&customerRecord{}).Where("id = ?", id).Updates(map[string]any{
			"firstName": c.FirstName,
			"lastName":  c.LastName,
			"phone":     c.Phone,
			"email":     c.Email,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		if err := tx.Where(`"customerId" = ?`, id).Delete(&addressRecord{}).Error; err != nil {
			return err
		}
		return insertAddresses(tx, id, c.Addresses)
	})
}

// DeleteCustomer removes the addresses first, then the customer. An
// unknown id is a no-op.
func (r *CustomerRepo) DeleteCustomer(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(`"customerId" = ?`, id).Delete(&addressRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&customerRecord{}, id).Error
	})
}

func insertAddresses(tx *gorm.DB, customerID int64, addrs []domain.Address) error {
	for _, a := range addrs {
		rec := newAddressRecord(customerID, a)
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}
	}
	return nil
}

func like(s string) string { return "%" + s + "%" }
