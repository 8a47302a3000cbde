package repository

import (
	"context"

	"github.com/diillson/aws-ri-expiration-alert/internal/domain/entity"
)

// ReservationRepository defines the interface for the reservation inventories.
type ReservationRepository interface {
	// ListEC2ReservedInstances returns all active compute reservations.
	ListEC2ReservedInstances(ctx context.Context) ([]entity.EC2ReservedInstance, error)
	// ListRDSReservedInstances returns all active database reservations.
	ListRDSReservedInstances(ctx context.Context) ([]entity.RDSReservedInstance, error)
}
