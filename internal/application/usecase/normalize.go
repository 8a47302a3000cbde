package usecase

import (
	"time"

	"github.com/diillson/aws-ri-expiration-alert/internal/domain/entity"
)

const regionScopeInfo = "Region"

// NormalizeEC2 maps a compute reservation to the shared shape.
func NormalizeEC2(ri entity.EC2ReservedInstance, now time.Time) entity.Reservation {
	end := entity.CoerceUTC(ri.End)
	info := ri.AvailabilityZone
	if info == "" {
		info = regionScopeInfo
	}
	return entity.Reservation{
		Service:       entity.ServiceEC2,
		ReservationID: ri.ReservedInstancesID,
		InstanceType:  ri.InstanceType,
		Scope:         ri.Scope,
		RegionInfo:    info,
		EndDate:       end,
		DaysRemaining: entity.DaysBetween(now, end),
	}
}

// NormalizeRDS maps a database reservation to the shared shape.
func NormalizeRDS(ri entity.RDSReservedInstance, now time.Time) entity.Reservation {
	end := ri.EndTime()
	return entity.Reservation{
		Service:       entity.ServiceRDS,
		ReservationID: ri.ReservedDBInstanceID,
		InstanceType:  ri.DBInstanceClass,
		Scope:         ri.ProductDescription,
		RegionInfo:    "MultiAZ=" + pythonBool(ri.MultiAZ),
		EndDate:       end,
		DaysRemaining: entity.DaysBetween(now, end),
	}
}

func pythonBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// FilterExpiring normalizes both inventories and keeps the reservations whose
// days remaining fall within the thresholds.
func FilterExpiring(ec2RIs []entity.EC2ReservedInstance, rdsRIs []entity.RDSReservedInstance, thresholds entity.Thresholds, now time.Time) []entity.Reservation {
	results := []entity.Reservation{}
	for _, ri := range ec2RIs {
		if r := NormalizeEC2(ri, now); thresholds.Includes(r.DaysRemaining) {
			results = append(results, r)
		}
	}
	for _, ri := range rdsRIs {
		if r := NormalizeRDS(ri, now); thresholds.Includes(r.DaysRemaining) {
			results = append(results, r)
		}
	}
	return results
}
