package validation

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"

	"custsvc/internal/domain"
)

const (
	MsgNames = "Names should only contain alphabetical characters."
	MsgPhone = "Phone number should be exactly 10 digits."
	MsgEmail = "Invalid email format."
)

var (
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
	// \s alone misses \v and Unicode spaces such as U+00A0 and U+3000
	emailRegex = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)
)

// Field order is the order rules are reported in.
type customerFields struct {
	FirstName string `validate:"alpha"`
	LastName  string `validate:"alpha"`
	Phone     string `validate:"phone10"`
	Email     string `validate:"email_simple"`
}

var fieldMsg = map[string]string{
	"FirstName": MsgNames,
	"LastName":  MsgNames,
	"Phone":     MsgPhone,
	"Email":     MsgEmail,
}

// New returns a validator with the customer rules registered.
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("email_simple", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	})
	return v
}

// ValidateCustomer returns the message of the first rule c breaks, or "".
// v must come from New.
func ValidateCustomer(v *validator.Validate, c domain.Customer) string {
	err := v.Struct(customerFields{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Email:     c.Email,
	})
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := fieldMsg[verrs[0].StructField()]; ok {
			return msg
		}
	}
	return err.Error()
}
