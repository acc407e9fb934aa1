package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// Repository is the appointment store. The remote appointment API is the
// only implementation in production.
type Repository interface {
	Lookup(
		ctx context.Context,
		phone string,
	) (*models.LookupResult, error)

	Create(
		ctx context.Context,
		ap models.Appointment,
	) error

	Update(
		ctx context.Context,
		phone string,
		ap models.Appointment,
	) error

	Delete(
		ctx context.Context,
		phone string,
	) error
}
