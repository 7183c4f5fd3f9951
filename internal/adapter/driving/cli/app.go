package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kandco/kco-finops-go/internal/application/usecase"
	"github.com/kandco/kco-finops-go/internal/domain/entity"
	"github.com/kandco/kco-finops-go/internal/domain/repository"
	"github.com/kandco/kco-finops-go/internal/shared/types"
	"github.com/kandco/kco-finops-go/pkg/version"
)

// ServerRunner abstrai o servidor HTTP para o comando serve; a montagem fica
// no main, onde todos os adapters já estão construídos.
type ServerRunner interface {
	ListenAndServe(addr string) error
}

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd        *cobra.Command
	analyzeUseCase *usecase.AnalyzeUseCase
	configRepo     repository.ConfigRepository
	console        types.ConsoleInterface
	serverFactory  func(cfg *types.Config) (ServerRunner, error)
	version        string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "kco-finops",
		Short:   "KCO FinOps cloud cost analytics",
		Version: formattedVersion,
	}
	rootCmd.SetVersionTemplate(`{{printf "KCO FinOps version: %s\n" .Version}}`)
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API for the dashboard UI",
		RunE:  app.runServe,
	}
	serveCmd.Flags().StringP("listen", "l", ":5000", "Address for the HTTP server to listen on")
	serveCmd.Flags().String("temp-dir", "", "Directory for temporary upload files (default: system temp dir)")
	serveCmd.Flags().Int("max-upload-mb", 50, "Maximum accepted upload size in megabytes")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [file|s3://bucket/key]",
		Short: "Analyze a billing CSV export or live Cost Explorer data",
		Args:  cobra.MaximumNArgs(1),
		RunE:  app.runAnalyze,
	}
	analyzeCmd.Flags().Bool("live", false, "Fetch daily costs from AWS Cost Explorer instead of reading a CSV")
	analyzeCmd.Flags().StringP("profile", "p", "default", "AWS profile to use for S3 or Cost Explorer access")
	analyzeCmd.Flags().IntP("time-range", "t", 0, "Time range for live cost data in days (default: current month)")
	analyzeCmd.Flags().StringP("report-name", "n", "", "Base name for exported report files (without extension)")
	analyzeCmd.Flags().StringSliceP("report-type", "y", nil, "Export formats: csv, json")
	analyzeCmd.Flags().StringP("dir", "d", "", "Directory to save exported files (default: current directory)")

	rootCmd.AddCommand(serveCmd, analyzeCmd)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// loadConfig carrega o arquivo de configuração, se informado, e aplica os
// valores padrão do serviço.
func (app *CLIApp) loadConfig(cmd *cobra.Command) (*types.Config, error) {
	cfg := &types.Config{}

	configFile, _ := cmd.Flags().GetString("config-file")
	if configFile != "" {
		loaded, err := app.configRepo.LoadConfigFile(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Flags vencem sobre o arquivo quando informadas explicitamente.
	if listen, _ := cmd.Flags().GetString("listen"); cmd.Flags().Changed("listen") || cfg.ListenAddr == "" {
		if listen != "" {
			cfg.ListenAddr = listen
		}
	}
	if tempDir, _ := cmd.Flags().GetString("temp-dir"); cmd.Flags().Changed("temp-dir") {
		cfg.TempDir = tempDir
	}
	if maxMB, _ := cmd.Flags().GetInt("max-upload-mb"); cmd.Flags().Changed("max-upload-mb") || cfg.MaxUploadMB == 0 {
		cfg.MaxUploadMB = maxMB
	}

	return cfg, nil
}

// runServe inicia o servidor HTTP do dashboard.
func (app *CLIApp) runServe(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)
	go version.CheckLatestVersion(app.version)

	cfg, err := app.loadConfig(cmd)
	if err != nil {
		return err
	}

	if app.serverFactory == nil {
		return errors.New("server factory not configured")
	}
	server, err := app.serverFactory(cfg)
	if err != nil {
		return err
	}

	app.console.LogInfo("Listening on %s", cfg.ListenAddr)
	return server.ListenAndServe(cfg.ListenAddr)
}

// runAnalyze roda a análise uma única vez e imprime o resumo no terminal.
func (app *CLIApp) runAnalyze(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)
	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseAnalyzeArgs(cmd, args)
	if err != nil {
		return err
	}

	ctx := context.Background()
	status := app.console.Status("Analyzing cost data...")

	var result *entity.AnalysisResult
	if cliArgs.Live {
		timeRange := 0
		if cliArgs.TimeRange != nil {
			timeRange = *cliArgs.TimeRange
		}
		result, err = app.analyzeUseCase.AnalyzeLive(ctx, cliArgs.Profile, timeRange)
	} else {
		result, err = app.analyzeUseCase.AnalyzeFile(ctx, cliArgs.Profile, cliArgs.Source)
	}
	status.Stop()
	if err != nil {
		return err
	}

	app.analyzeUseCase.DisplaySummary(result)
	app.analyzeUseCase.ExportResults(result, cliArgs)
	return nil
}

// parseAnalyzeArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseAnalyzeArgs(cmd *cobra.Command, args []string) (*types.CLIArgs, error) {
	live, _ := cmd.Flags().GetBool("live")
	profile, _ := cmd.Flags().GetString("profile")
	timeRange, _ := cmd.Flags().GetInt("time-range")
	reportName, _ := cmd.Flags().GetString("report-name")
	reportType, _ := cmd.Flags().GetStringSlice("report-type")
	dir, _ := cmd.Flags().GetString("dir")
	configFile, _ := cmd.Flags().GetString("config-file")

	source := ""
	if len(args) > 0 {
		source = args[0]
	}
	if !live && source == "" {
		return nil, errors.New("provide a CSV file (or s3:// URI) to analyze, or pass --live")
	}

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

	timeRangePtr := &timeRange
	if timeRange == 0 {
		timeRangePtr = nil
	}

	return &types.CLIArgs{
		ConfigFile: configFile,
		Source:     source,
		Live:       live,
		Profile:    profile,
		TimeRange:  timeRangePtr,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
	}, nil
}

// SetAnalyzeUseCase sets the analyze use case for the CLI app.
func (app *CLIApp) SetAnalyzeUseCase(useCase *usecase.AnalyzeUseCase) {
	app.analyzeUseCase = useCase
}

// SetConfigRepository sets the config repository for the CLI app.
func (app *CLIApp) SetConfigRepository(repo repository.ConfigRepository) {
	app.configRepo = repo
}

// SetConsole sets the console used for terminal output.
func (app *CLIApp) SetConsole(console types.ConsoleInterface) {
	app.console = console
}

// SetServerFactory sets the constructor used by the serve command.
func (app *CLIApp) SetServerFactory(factory func(cfg *types.Config) (ServerRunner, error)) {
	app.serverFactory = factory
}
