package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/diillson/aws-ri-expiration-alert/internal/adapter/driven/aws"
	"github.com/diillson/aws-ri-expiration-alert/internal/adapter/driven/config"
	handler "github.com/diillson/aws-ri-expiration-alert/internal/adapter/driving/lambda"
	"github.com/diillson/aws-ri-expiration-alert/internal/application/usecase"
	"github.com/diillson/aws-ri-expiration-alert/pkg/console"
)

func main() {
	consoleImpl := console.NewPlainConsole()

	// Configuração e clientes são criados uma única vez, no cold start.
	cfg, err := config.NewConfigRepository().LoadFromEnv()
	if err != nil {
		consoleImpl.LogError("Invalid configuration: %v", err)
		os.Exit(1)
	}

	awsCfg, err := aws.LoadAWSConfig(context.Background(), cfg.Region, "")
	if err != nil {
		consoleImpl.LogError("%v", err)
		os.Exit(1)
	}

	alertUseCase := usecase.NewAlertUseCase(
		aws.NewReservationRepository(awsCfg),
		aws.NewNotificationRepository(awsCfg),
		*cfg,
		consoleImpl,
	)

	lambda.Start(handler.NewHandler(alertUseCase, consoleImpl).Handle)
}
