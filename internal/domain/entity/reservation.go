package entity

import "time"

// Service identifies the inventory a reservation came from.
type Service string

const (
	ServiceEC2 Service = "EC2"
	ServiceRDS Service = "RDS"
)

// ActiveState is the lifecycle state of a reservation currently in effect.
const ActiveState = "active"

// EC2ReservedInstance is a compute reservation as returned by the EC2 inventory.
type EC2ReservedInstance struct {
	ReservedInstancesID string
	InstanceType        string
	Scope               string
	AvailabilityZone    string // empty for regional reservations
	State               string
	End                 time.Time
}

// RDSReservedInstance is a database reservation as returned by the RDS inventory.
type RDSReservedInstance struct {
	ReservedDBInstanceID string
	DBInstanceClass      string
	ProductDescription   string
	MultiAZ              bool
	State                string
	StartTime            time.Time
	DurationSeconds      int64
}

// EndTime returns the start time plus the reservation duration, in UTC.
func (r RDSReservedInstance) EndTime() time.Time {
	return CoerceUTC(r.StartTime).Add(time.Duration(r.DurationSeconds) * time.Second)
}

// Reservation is the normalized shape shared by both services.
type Reservation struct {
	Service       Service   `json:"service"`
	ReservationID string    `json:"reservation_id"`
	InstanceType  string    `json:"instance_type"`
	Scope         string    `json:"scope"`
	RegionInfo    string    `json:"region_info"`
	EndDate       time.Time `json:"end_date"`
	DaysRemaining int       `json:"days_remaining"`
}
