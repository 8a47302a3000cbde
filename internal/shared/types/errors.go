package types

import "errors"

var (
	ErrMissingTopic      = errors.New("SNS_TOPIC_ARN is required")
	ErrInvalidThreshold  = errors.New("invalid threshold day count")
	ErrInvalidTimestamp  = errors.New("invalid ISO-8601 timestamp")
	ErrUnsupportedFormat = errors.New("unsupported config file format")
)
