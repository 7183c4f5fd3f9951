package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string

	// serve
	ListenAddr  string
	TempDir     string
	MaxUploadMB int

	// analyze
	Source     string
	Live       bool
	Profile    string
	TimeRange  *int
	ReportName string
	ReportType []string
	Dir        string
}
