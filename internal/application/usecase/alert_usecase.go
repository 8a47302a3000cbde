package usecase

import (
	"context"
	"time"

	"github.com/diillson/aws-ri-expiration-alert/internal/domain/entity"
	"github.com/diillson/aws-ri-expiration-alert/internal/domain/repository"
	"github.com/diillson/aws-ri-expiration-alert/internal/shared/types"
)

// AlertUseCase checks reservation expirations and notifies a topic.
type AlertUseCase struct {
	reservationRepo  repository.ReservationRepository
	notificationRepo repository.NotificationRepository
	config           types.Config
	console          types.ConsoleInterface
}

// NewAlertUseCase creates a new alert use case. The config is read-only for
// the lifetime of the use case.
func NewAlertUseCase(
	reservationRepo repository.ReservationRepository,
	notificationRepo repository.NotificationRepository,
	config types.Config,
	console types.ConsoleInterface,
) *AlertUseCase {
	return &AlertUseCase{
		reservationRepo:  reservationRepo,
		notificationRepo: notificationRepo,
		config:           config,
		console:          console,
	}
}

// Thresholds returns the configured thresholds.
func (uc *AlertUseCase) Thresholds() entity.Thresholds {
	return entity.Thresholds(uc.config.Thresholds)
}

// Evaluate fetches both inventories and builds the report as of now, without
// publishing it. Any fetch error aborts the evaluation.
func (uc *AlertUseCase) Evaluate(ctx context.Context, now time.Time) (*entity.AlertReport, error) {
	now = entity.CoerceUTC(now)

	ec2RIs, err := uc.reservationRepo.ListEC2ReservedInstances(ctx)
	if err != nil {
		return nil, err
	}
	uc.console.LogInfo("Found %d active EC2 reserved instances", len(ec2RIs))

	rdsRIs, err := uc.reservationRepo.ListRDSReservedInstances(ctx)
	if err != nil {
		return nil, err
	}
	uc.console.LogInfo("Found %d active RDS reserved instances", len(rdsRIs))

	thresholds := uc.Thresholds()
	results := FilterExpiring(ec2RIs, rdsRIs, thresholds, now)
	if len(results) > 0 {
		uc.console.LogWarning("%d reservations expire within %s days", len(results), thresholds)
	} else {
		uc.console.LogSuccess("No reservations expire within %s days", thresholds)
	}

	return &entity.AlertReport{
		Reservations: SortByDaysRemaining(results),
		Thresholds:   thresholds,
		Subject:      BuildSubject(len(results)),
		Message:      BuildMessage(results, thresholds),
	}, nil
}

// Run evaluates the reservations and always publishes the report, even when
// nothing is within the thresholds.
func (uc *AlertUseCase) Run(ctx context.Context, now time.Time) (entity.AlertResult, *entity.AlertReport, error) {
	report, err := uc.Evaluate(ctx, now)
	if err != nil {
		return entity.AlertResult{}, nil, err
	}

	messageID, err := uc.notificationRepo.Publish(ctx, uc.config.TopicARN, report.Subject, report.Message)
	if err != nil {
		return entity.AlertResult{}, nil, err
	}
	report.MessageID = messageID
	uc.console.LogSuccess("Published %q to %s (message id %s)", report.Subject, uc.config.TopicARN, messageID)

	return entity.NewAlertResult(len(report.Reservations)), report, nil
}
