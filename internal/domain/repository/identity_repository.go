package repository

import "context"

type IdentityRepository interface {
	GetAccountID(ctx context.Context) (string, error)
}
