package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/diillson/aws-ri-expiration-alert/internal/adapter/driven/config"
	"github.com/diillson/aws-ri-expiration-alert/internal/application/usecase"
	"github.com/diillson/aws-ri-expiration-alert/internal/domain/entity"
	"github.com/diillson/aws-ri-expiration-alert/internal/domain/repository"
	"github.com/diillson/aws-ri-expiration-alert/internal/shared/types"
	"github.com/diillson/aws-ri-expiration-alert/pkg/version"
	"github.com/spf13/cobra"
)

// Clients groups the AWS-backed repositories used by a run.
type Clients struct {
	Reservations  repository.ReservationRepository
	Notifications repository.NotificationRepository
	Identity      repository.IdentityRepository
}

// ClientFactory builds the AWS-backed repositories for a resolved config.
type ClientFactory func(ctx context.Context, cfg types.Config) (*Clients, error)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	configRepo    repository.ConfigRepository
	exportRepo    repository.ExportRepository
	console       types.ConsoleInterface
	clientFactory ClientFactory
	showBanner    bool
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(
	configRepo repository.ConfigRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
	clientFactory ClientFactory,
) *CLIApp {
	app := &CLIApp{
		configRepo:    configRepo,
		exportRepo:    exportRepo,
		console:       console,
		clientFactory: clientFactory,
		showBanner:    true,
	}

	rootCmd := &cobra.Command{
		Use:           "ri-alert",
		Short:         "Reserved Instance expiration alerts for EC2 and RDS",
		Version:       version.FormatVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate(`{{printf "RI Expiration Alert version: %s\n" .Version}}`)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Check reserved instances and publish the expiration alert",
		RunE:  app.runCommand,
	}
	runCmd.Flags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	runCmd.Flags().StringP("profile", "p", "", "AWS profile to use")
	runCmd.Flags().StringP("region", "r", "", "AWS region to inspect (default: $REGION, $AWS_REGION, us-east-1)")
	runCmd.Flags().String("topic-arn", "", "SNS topic to publish to (default: $SNS_TOPIC_ARN)")
	runCmd.Flags().StringP("thresholds", "t", "", "Comma-separated day thresholds (default: $THRESHOLD_DAYS or 60,30,7)")
	runCmd.Flags().String("now", "", "Evaluate as of this ISO-8601 instant instead of the current time")
	runCmd.Flags().Bool("dry-run", false, "Print the alert instead of publishing it")
	runCmd.Flags().StringP("report-name", "n", "ri-expiration", "Base name for exported report files")
	runCmd.Flags().StringSliceP("report-type", "y", nil, "Export the alerting reservations: csv, json, pdf")
	runCmd.Flags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "RI Expiration Alert version: %s\n", version.FormatVersion())
		},
	}

	rootCmd.AddCommand(runCmd, versionCmd)
	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	flags := cmd.Flags()
	configFile, _ := flags.GetString("config-file")
	profile, _ := flags.GetString("profile")
	region, _ := flags.GetString("region")
	topicARN, _ := flags.GetString("topic-arn")
	thresholds, _ := flags.GetString("thresholds")
	now, _ := flags.GetString("now")
	dryRun, _ := flags.GetBool("dry-run")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")

	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	return &types.CLIArgs{
		ConfigFile: configFile,
		Profile:    profile,
		Region:     region,
		TopicARN:   topicARN,
		Thresholds: thresholds,
		Now:        now,
		DryRun:     dryRun,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
	}, nil
}

// resolveConfig merges env, config file and flags, in increasing precedence.
func (app *CLIApp) resolveConfig(args *types.CLIArgs) (types.Config, error) {
	envCfg, err := app.configRepo.ReadEnv()
	if err != nil {
		return types.Config{}, err
	}
	cfg := *envCfg

	if args.ConfigFile != "" {
		fileCfg, err := app.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return types.Config{}, err
		}
		cfg = cfg.Merge(*fileCfg)
	}

	flagCfg := types.Config{
		TopicARN: args.TopicARN,
		Region:   args.Region,
		Profile:  args.Profile,
	}
	if args.Thresholds != "" {
		thresholds, err := config.ParseThresholds(args.Thresholds)
		if err != nil {
			return types.Config{}, err
		}
		flagCfg.Thresholds = thresholds
	}
	cfg = cfg.Merge(flagCfg)

	if cfg.TopicARN == "" && !args.DryRun {
		return types.Config{}, types.ErrMissingTopic
	}
	return cfg, nil
}

// runCommand é o ponto de entrada do comando run.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	if app.showBanner {
		displayWelcomeBanner()
	}

	args, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	cfg, err := app.resolveConfig(args)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if args.Now != "" {
		now, err = entity.ParseTimestamp(args.Now)
		if err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	clients, err := app.clientFactory(ctx, cfg)
	if err != nil {
		return err
	}

	if clients.Identity != nil {
		if accountID, err := clients.Identity.GetAccountID(ctx); err != nil {
			app.console.LogWarning("Could not resolve AWS account: %v", err)
		} else {
			app.console.LogInfo("Checking reserved instances for account %s in %s", accountID, cfg.Region)
		}
	}

	alertUseCase := usecase.NewAlertUseCase(clients.Reservations, clients.Notifications, cfg, app.console)

	var report *entity.AlertReport
	if args.DryRun {
		status := app.console.Status("Fetching reserved instances...")
		report, err = alertUseCase.Evaluate(ctx, now)
		status.Stop()
		if err != nil {
			return err
		}
		app.console.Println(report.Subject)
		app.console.Println(report.Message)
	} else {
		var result entity.AlertResult
		result, report, err = alertUseCase.Run(ctx, now)
		if err != nil {
			return err
		}
		app.console.LogInfo("Result: status %d, body %s", result.StatusCode, result.Body)
	}

	if len(report.Reservations) > 0 {
		app.console.Println(app.renderReservations(report.Reservations))
	}

	return app.exportReport(*report, args)
}

func (app *CLIApp) renderReservations(reservations []entity.Reservation) string {
	table := app.console.CreateTable()
	for _, col := range []string{"Service", "Reservation ID", "Instance Type", "Scope", "Info", "End Date", "Days Remaining"} {
		table.AddColumn(col)
	}
	for _, r := range reservations {
		table.AddRow(r.Service, r.ReservationID, r.InstanceType, r.Scope, r.RegionInfo, entity.FormatISO(r.EndDate), r.DaysRemaining)
	}
	return table.Render()
}

func (app *CLIApp) exportReport(report entity.AlertReport, args *types.CLIArgs) error {
	for _, reportType := range args.ReportType {
		var (
			path string
			err  error
		)
		switch strings.ToLower(strings.TrimSpace(reportType)) {
		case "csv":
			path, err = app.exportRepo.ExportToCSV(report, args.ReportName, args.Dir)
		case "json":
			path, err = app.exportRepo.ExportToJSON(report, args.ReportName, args.Dir)
		case "pdf":
			path, err = app.exportRepo.ExportToPDF(report, args.ReportName, args.Dir)
		default:
			app.console.LogWarning("Unsupported report type: %s", reportType)
			continue
		}
		if err != nil {
			return err
		}
		app.console.LogSuccess("Report saved to %s", path)
	}
	return nil
}

// SetArgs overrides the process arguments; used by tests.
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}
