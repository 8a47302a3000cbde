package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diillson/aws-ri-expiration-alert/internal/domain/entity"
	"github.com/diillson/aws-ri-expiration-alert/internal/shared/types"
	"github.com/diillson/aws-ri-expiration-alert/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReservationRepo struct {
	ec2    []entity.EC2ReservedInstance
	rds    []entity.RDSReservedInstance
	ec2Err error
	rdsErr error
	calls  []string
}

func (f *fakeReservationRepo) ListEC2ReservedInstances(context.Context) ([]entity.EC2ReservedInstance, error) {
	f.calls = append(f.calls, "ec2")
	return f.ec2, f.ec2Err
}

func (f *fakeReservationRepo) ListRDSReservedInstances(context.Context) ([]entity.RDSReservedInstance, error) {
	f.calls = append(f.calls, "rds")
	return f.rds, f.rdsErr
}

type published struct {
	topic, subject, message string
}

type fakeNotifier struct {
	sent []published
	err  error
}

func (f *fakeNotifier) Publish(_ context.Context, topic, subject, message string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, published{topic, subject, message})
	return "msg-1", nil
}

func newTestUseCase(repo *fakeReservationRepo, notifier *fakeNotifier) *AlertUseCase {
	return NewAlertUseCase(repo, notifier, types.Config{
		TopicARN:   "arn:aws:sns:us-east-1:123456789012:ri-alerts",
		Region:     "us-east-1",
		Thresholds: []int{7, 30, 60},
	}, testutil.NewRecordingConsole())
}

func TestRunPublishesExpiringReservations(t *testing.T) {
	repo := &fakeReservationRepo{
		ec2: []entity.EC2ReservedInstance{
			{ReservedInstancesID: "ri-soon", InstanceType: "m5.large", Scope: "Region", End: time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC)},
			{ReservedInstancesID: "ri-later", InstanceType: "c5.xlarge", Scope: "Region", End: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		},
		rds: []entity.RDSReservedInstance{
			{ReservedDBInstanceID: "db-1", DBInstanceClass: "db.t3.medium", ProductDescription: "mysql", StartTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), DurationSeconds: 31536000},
		},
	}
	notifier := &fakeNotifier{}

	result, report, err := newTestUseCase(repo, notifier).Run(context.Background(), testNow)
	require.NoError(t, err)

	assert.Equal(t, 200, result.StatusCode)
	assert.JSONEq(t, `{"count": 2}`, result.Body)
	assert.Equal(t, []string{"ec2", "rds"}, repo.calls)

	require.Len(t, notifier.sent, 1)
	sent := notifier.sent[0]
	assert.Equal(t, "arn:aws:sns:us-east-1:123456789012:ri-alerts", sent.topic)
	assert.Equal(t, "Reserved Instance Expiration Alert (2 items)", sent.subject)
	assert.Contains(t, sent.message, "Reservation ID: ri-soon")
	assert.Contains(t, sent.message, "Days Remaining: 5")
	assert.Contains(t, sent.message, "Reservation ID: db-1")
	assert.NotContains(t, sent.message, "ri-later")

	require.Len(t, report.Reservations, 2)
	assert.Equal(t, "ri-soon", report.Reservations[0].ReservationID)
	assert.Equal(t, "db-1", report.Reservations[1].ReservationID)
	assert.Equal(t, 16, report.Reservations[1].DaysRemaining)
	assert.Equal(t, "msg-1", report.MessageID)
}

func TestRunPublishesWhenNothingExpires(t *testing.T) {
	notifier := &fakeNotifier{}

	result, _, err := newTestUseCase(&fakeReservationRepo{}, notifier).Run(context.Background(), testNow)
	require.NoError(t, err)

	assert.JSONEq(t, `{"count": 0}`, result.Body)
	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0].subject, "(0 items)")
	assert.Equal(t, "Reserved Instance Expiration Alert\n\nNo Reserved Instances are within the configured thresholds.", notifier.sent[0].message)
}

func TestRunAbortsOnFetchError(t *testing.T) {
	boom := errors.New("throttled")

	t.Run("ec2", func(t *testing.T) {
		repo := &fakeReservationRepo{ec2Err: boom}
		notifier := &fakeNotifier{}

		_, _, err := newTestUseCase(repo, notifier).Run(context.Background(), testNow)
		require.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"ec2"}, repo.calls)
		assert.Empty(t, notifier.sent)
	})

	t.Run("rds after ec2 succeeded", func(t *testing.T) {
		repo := &fakeReservationRepo{
			ec2:    []entity.EC2ReservedInstance{{ReservedInstancesID: "ri-1", End: testNow.Add(48 * time.Hour)}},
			rdsErr: boom,
		}
		notifier := &fakeNotifier{}

		_, _, err := newTestUseCase(repo, notifier).Run(context.Background(), testNow)
		require.ErrorIs(t, err, boom)
		assert.Empty(t, notifier.sent)
	})
}

func TestRunPropagatesPublishError(t *testing.T) {
	boom := errors.New("AuthorizationError")

	_, report, err := newTestUseCase(&fakeReservationRepo{}, &fakeNotifier{err: boom}).Run(context.Background(), testNow)
	require.ErrorIs(t, err, boom)
	assert.Nil(t, report)
}

func TestEvaluateDoesNotPublish(t *testing.T) {
	notifier := &fakeNotifier{}
	repo := &fakeReservationRepo{
		ec2: []entity.EC2ReservedInstance{{ReservedInstancesID: "ri-1", End: testNow.Add(72 * time.Hour)}},
	}

	report, err := newTestUseCase(repo, notifier).Evaluate(context.Background(), testNow)
	require.NoError(t, err)

	assert.Empty(t, notifier.sent)
	assert.Equal(t, "Reserved Instance Expiration Alert (1 items)", report.Subject)
	assert.Equal(t, entity.Thresholds{7, 30, 60}, report.Thresholds)
	require.Len(t, report.Reservations, 1)
	assert.Equal(t, 3, report.Reservations[0].DaysRemaining)
}
