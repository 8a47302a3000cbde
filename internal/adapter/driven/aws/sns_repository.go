package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/diillson/aws-ri-expiration-alert/internal/domain/repository"
)

// SNSAPI is the subset of the SNS client used for publishing.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSNotificationRepository publishes plain-text messages to an SNS topic.
type SNSNotificationRepository struct {
	client SNSAPI
}

func NewNotificationRepository(cfg aws.Config) repository.NotificationRepository {
	return NewNotificationRepositoryWithClient(sns.NewFromConfig(cfg))
}

func NewNotificationRepositoryWithClient(client SNSAPI) *SNSNotificationRepository {
	return &SNSNotificationRepository{client: client}
}

// Publish sends message to topicARN and returns the SNS message id.
func (r *SNSNotificationRepository) Publish(ctx context.Context, topicARN, subject, message string) (string, error) {
	output, err := r.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	if err != nil {
		return "", fmt.Errorf("error publishing to %s: %w", topicARN, err)
	}
	return aws.ToString(output.MessageId), nil
}
