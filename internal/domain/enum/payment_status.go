package enum

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// PaymentStatus represents how much of an order has been paid
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "pago"
	PaymentStatusPending PaymentStatus = "pendente"
)

// IsPaid reports whether the order was paid in full
func (s PaymentStatus) IsPaid() bool {
	return s == PaymentStatusPaid
}

// Valid reports whether s is one of the known statuses
func (s PaymentStatus) Valid() bool {
	return s == PaymentStatusPaid || s == PaymentStatusPending
}

// ParsePaymentStatus normalizes user input into a PaymentStatus
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	status := PaymentStatus(strings.ToLower(strings.TrimSpace(s)))
	if status == "" {
		return PaymentStatusPending, nil
	}
	if !status.Valid() {
		return "", fmt.Errorf("unknown payment status %q", s)
	}
	return status, nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = PaymentStatusPending
	case string:
		*s = PaymentStatus(v)
	case []byte:
		*s = PaymentStatus(v)
	default:
		return fmt.Errorf("cannot scan %T into PaymentStatus", value)
	}
	return nil
}
