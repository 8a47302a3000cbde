package repository

import (
	"github.com/diillson/aws-ri-expiration-alert/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration.
type ConfigRepository interface {
	LoadFromEnv() (*types.Config, error)
	ReadEnv() (*types.Config, error)
	LoadConfigFile(filePath string) (*types.Config, error)
}
