package main

import (
	"context"
	"fmt"
	"os"

	"github.com/diillson/aws-ri-expiration-alert/internal/adapter/driven/aws"
	"github.com/diillson/aws-ri-expiration-alert/internal/adapter/driven/config"
	"github.com/diillson/aws-ri-expiration-alert/internal/adapter/driven/export"
	"github.com/diillson/aws-ri-expiration-alert/internal/adapter/driving/cli"
	"github.com/diillson/aws-ri-expiration-alert/internal/shared/types"
	"github.com/diillson/aws-ri-expiration-alert/pkg/console"
)

func main() {
	// Inicializa os repositórios
	configRepo := config.NewConfigRepository()
	exportRepo := export.NewExportRepository()
	consoleImpl := console.NewConsole()

	app := cli.NewCLIApp(configRepo, exportRepo, consoleImpl, newAWSClients)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newAWSClients(ctx context.Context, cfg types.Config) (*cli.Clients, error) {
	awsCfg, err := aws.LoadAWSConfig(ctx, cfg.Region, cfg.Profile)
	if err != nil {
		return nil, err
	}
	return &cli.Clients{
		Reservations:  aws.NewReservationRepository(awsCfg),
		Notifications: aws.NewNotificationRepository(awsCfg),
		Identity:      aws.NewIdentityRepository(awsCfg),
	}, nil
}
