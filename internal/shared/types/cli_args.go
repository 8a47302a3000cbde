package types

// CLIArgs represents the command-line arguments of the run command.
type CLIArgs struct {
	ConfigFile string
	Profile    string
	Region     string
	TopicARN   string
	Thresholds string
	Now        string
	DryRun     bool
	ReportName string
	ReportType []string
	Dir        string
}
