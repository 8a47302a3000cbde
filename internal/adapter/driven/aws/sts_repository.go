package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/diillson/aws-ri-expiration-alert/internal/domain/repository"
)

type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// IdentityRepositoryImpl resolves the caller account through STS.
type IdentityRepositoryImpl struct {
	client STSAPI
}

func NewIdentityRepository(cfg aws.Config) repository.IdentityRepository {
	return NewIdentityRepositoryWithClient(sts.NewFromConfig(cfg))
}

func NewIdentityRepositoryWithClient(client STSAPI) *IdentityRepositoryImpl {
	return &IdentityRepositoryImpl{client: client}
}

func (r *IdentityRepositoryImpl) GetAccountID(ctx context.Context) (string, error) {
	result, err := r.client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting account ID: %w", err)
	}
	return aws.ToString(result.Account), nil
}
