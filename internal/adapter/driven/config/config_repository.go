package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/diillson/aws-ri-expiration-alert/internal/domain/repository"
	"github.com/diillson/aws-ri-expiration-alert/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

const (
	EnvTopicARN      = "SNS_TOPIC_ARN"
	EnvRegion        = "REGION"
	EnvAWSRegion     = "AWS_REGION"
	EnvThresholdDays = "THRESHOLD_DAYS"

	DefaultRegion     = "us-east-1"
	DefaultThresholds = "60,30,7"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct {
	getenv func(string) string
}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{getenv: os.Getenv}
}

// LoadFromEnv reads the topic, region and thresholds from the environment.
// A missing topic or a malformed threshold list is an error.
func (r *ConfigRepositoryImpl) LoadFromEnv() (*types.Config, error) {
	cfg, err := r.ReadEnv()
	if err != nil {
		return nil, err
	}
	if cfg.TopicARN == "" {
		return nil, types.ErrMissingTopic
	}
	return cfg, nil
}

// ReadEnv is LoadFromEnv without the topic requirement.
func (r *ConfigRepositoryImpl) ReadEnv() (*types.Config, error) {
	topic := strings.TrimSpace(r.getenv(EnvTopicARN))

	region := r.getenv(EnvRegion)
	if region == "" {
		region = r.getenv(EnvAWSRegion)
	}
	if region == "" {
		region = DefaultRegion
	}

	raw := r.getenv(EnvThresholdDays)
	if raw == "" {
		raw = DefaultThresholds
	}
	thresholds, err := ParseThresholds(raw)
	if err != nil {
		return nil, err
	}

	return &types.Config{
		TopicARN:   topic,
		Region:     region,
		Thresholds: thresholds,
	}, nil
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedFormat, fileExtension)
	}

	if len(config.Thresholds) > 0 {
		thresholds, err := normalizeThresholds(config.Thresholds)
		if err != nil {
			return nil, err
		}
		config.Thresholds = thresholds
	}

	return &config, nil
}

// ParseThresholds parses a comma-separated list of day counts and returns it
// sorted ascending. Every entry must be a non-negative integer.
func ParseThresholds(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", types.ErrInvalidThreshold, part)
		}
		values = append(values, v)
	}
	return normalizeThresholds(values)
}

func normalizeThresholds(values []int) ([]int, error) {
	out := make([]int, len(values))
	for i, v := range values {
		if v < 0 {
			return nil, fmt.Errorf("%w: %d is negative", types.ErrInvalidThreshold, v)
		}
		out[i] = v
	}
	sort.Ints(out)
	return out, nil
}
