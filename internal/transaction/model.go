package transaction

import (
	"net/http"
	"time"

	"github.com/zenithcamp/medcamp-backend/internal/pkg/apperror"
)

var (
	ErrUIDRequired           = apperror.New(http.StatusBadRequest, "uid is required")
	ErrTransactionIDRequired = apperror.New(http.StatusBadRequest, "transaction id is required")
	ErrInvalidAmount         = apperror.New(http.StatusBadRequest, "amount cannot be negative")
	ErrRegistrationNotFound  = apperror.New(http.StatusNotFound, "registration not found")
)

// Transaction records a completed payment for a registration.
type Transaction struct {
	ID             string
	RegistrationID *string
	UID            string
	TransactionID  string
	Amount         float64
	CampName       string
	PaidAt         time.Time
}

// History is a transaction together with the current state of its registration.
// Status fields are nil when the registration no longer exists.
type History struct {
	Transaction
	PaymentStatus      *bool
	ConfirmationStatus *bool
}
