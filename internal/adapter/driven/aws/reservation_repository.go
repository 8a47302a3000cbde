package aws

import (
	"context"
	"fmt"
	"iter"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2Types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	rdsTypes "github.com/aws/aws-sdk-go-v2/service/rds/types"
	"github.com/diillson/aws-ri-expiration-alert/internal/domain/entity"
	"github.com/diillson/aws-ri-expiration-alert/internal/domain/repository"
)

// EC2API is the subset of the EC2 client used by the repository.
type EC2API interface {
	DescribeReservedInstances(ctx context.Context, params *ec2.DescribeReservedInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeReservedInstancesOutput, error)
}

// ReservationRepositoryImpl implementa o ReservationRepository sobre EC2 e RDS.
type ReservationRepositoryImpl struct {
	ec2Client EC2API
	rdsClient rds.DescribeReservedDBInstancesAPIClient
}

// NewReservationRepository cria o repositório a partir de uma aws.Config.
func NewReservationRepository(cfg aws.Config) repository.ReservationRepository {
	return NewReservationRepositoryWithClients(ec2.NewFromConfig(cfg), rds.NewFromConfig(cfg))
}

// NewReservationRepositoryWithClients wires explicit clients, used by tests.
func NewReservationRepositoryWithClients(ec2Client EC2API, rdsClient rds.DescribeReservedDBInstancesAPIClient) *ReservationRepositoryImpl {
	return &ReservationRepositoryImpl{
		ec2Client: ec2Client,
		rdsClient: rdsClient,
	}
}

// ListEC2ReservedInstances returns the active compute reservations. The state
// filter is applied server side.
func (r *ReservationRepositoryImpl) ListEC2ReservedInstances(ctx context.Context) ([]entity.EC2ReservedInstance, error) {
	var items []entity.EC2ReservedInstance
	for page, err := range r.ec2ReservedInstancePages(ctx) {
		if err != nil {
			return nil, fmt.Errorf("error describing EC2 reserved instances: %w", err)
		}
		for _, ri := range page {
			items = append(items, toEC2ReservedInstance(ri))
		}
	}
	return items, nil
}

// ListRDSReservedInstances returns the active database reservations. The RDS
// API has no state filter, so inactive records are dropped here.
func (r *ReservationRepositoryImpl) ListRDSReservedInstances(ctx context.Context) ([]entity.RDSReservedInstance, error) {
	var items []entity.RDSReservedInstance
	for page, err := range r.rdsReservedDBInstancePages(ctx) {
		if err != nil {
			return nil, fmt.Errorf("error describing RDS reserved instances: %w", err)
		}
		for _, ri := range page {
			if aws.ToString(ri.State) != entity.ActiveState {
				continue
			}
			items = append(items, toRDSReservedInstance(ri))
		}
	}
	return items, nil
}

// DescribeReservedInstances is not paginated by the EC2 API; the sequence
// yields exactly one page.
func (r *ReservationRepositoryImpl) ec2ReservedInstancePages(ctx context.Context) iter.Seq2[[]ec2Types.ReservedInstances, error] {
	return func(yield func([]ec2Types.ReservedInstances, error) bool) {
		output, err := r.ec2Client.DescribeReservedInstances(ctx, &ec2.DescribeReservedInstancesInput{
			Filters: []ec2Types.Filter{
				{
					Name:   aws.String("state"),
					Values: []string{entity.ActiveState},
				},
			},
		})
		if err != nil {
			yield(nil, err)
			return
		}
		yield(output.ReservedInstances, nil)
	}
}

func (r *ReservationRepositoryImpl) rdsReservedDBInstancePages(ctx context.Context) iter.Seq2[[]rdsTypes.ReservedDBInstance, error] {
	return func(yield func([]rdsTypes.ReservedDBInstance, error) bool) {
		paginator := rds.NewDescribeReservedDBInstancesPaginator(r.rdsClient, &rds.DescribeReservedDBInstancesInput{})
		for paginator.HasMorePages() {
			output, err := paginator.NextPage(ctx)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(output.ReservedDBInstances, nil) {
				return
			}
		}
	}
}

func toEC2ReservedInstance(ri ec2Types.ReservedInstances) entity.EC2ReservedInstance {
	return entity.EC2ReservedInstance{
		ReservedInstancesID: aws.ToString(ri.ReservedInstancesId),
		InstanceType:        string(ri.InstanceType),
		Scope:               string(ri.Scope),
		AvailabilityZone:    aws.ToString(ri.AvailabilityZone),
		State:               string(ri.State),
		End:                 entity.CoerceUTC(aws.ToTime(ri.End)),
	}
}

func toRDSReservedInstance(ri rdsTypes.ReservedDBInstance) entity.RDSReservedInstance {
	return entity.RDSReservedInstance{
		ReservedDBInstanceID: aws.ToString(ri.ReservedDBInstanceId),
		DBInstanceClass:      aws.ToString(ri.DBInstanceClass),
		ProductDescription:   aws.ToString(ri.ProductDescription),
		MultiAZ:              aws.ToBool(ri.MultiAZ),
		State:                aws.ToString(ri.State),
		StartTime:            entity.CoerceUTC(aws.ToTime(ri.StartTime)),
		DurationSeconds:      int64(aws.ToInt32(ri.Duration)),
	}
}
