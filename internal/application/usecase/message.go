package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/diillson/aws-ri-expiration-alert/internal/domain/entity"
)

const (
	alertTitle   = "Reserved Instance Expiration Alert"
	emptyMessage = alertTitle + "\n\nNo Reserved Instances are within the configured thresholds."
)

// BuildSubject returns the notification subject for count reservations.
func BuildSubject(count int) string {
	return fmt.Sprintf("%s (%d items)", alertTitle, count)
}

// BuildMessage renders the plain-text report. The input slice is not modified.
func BuildMessage(items []entity.Reservation, thresholds entity.Thresholds) string {
	if len(items) == 0 {
		return emptyMessage
	}

	lines := []string{
		alertTitle + "\n",
		fmt.Sprintf("Thresholds: %s\n", thresholds),
	}

	for _, item := range SortByDaysRemaining(items) {
		lines = append(lines, fmt.Sprintf(
			"- Service: %s\n"+
				"  Reservation ID: %s\n"+
				"  Instance Type: %s\n"+
				"  Scope: %s\n"+
				"  Info: %s\n"+
				"  End Date: %s\n"+
				"  Days Remaining: %d\n",
			item.Service,
			item.ReservationID,
			item.InstanceType,
			item.Scope,
			item.RegionInfo,
			entity.FormatISO(item.EndDate),
			item.DaysRemaining,
		))
	}
	return strings.Join(lines, "\n")
}

// SortByDaysRemaining returns a copy of items sorted ascending by days
// remaining; ties keep their relative order.
func SortByDaysRemaining(items []entity.Reservation) []entity.Reservation {
	sorted := make([]entity.Reservation, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DaysRemaining < sorted[j].DaysRemaining
	})
	return sorted
}
