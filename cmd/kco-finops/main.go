package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/kandco/kco-finops-go/internal/adapter/driven/aws"
	"github.com/kandco/kco-finops-go/internal/adapter/driven/config"
	"github.com/kandco/kco-finops-go/internal/adapter/driven/export"
	"github.com/kandco/kco-finops-go/internal/adapter/driven/storage"
	"github.com/kandco/kco-finops-go/internal/adapter/driving/api"
	"github.com/kandco/kco-finops-go/internal/adapter/driving/cli"
	"github.com/kandco/kco-finops-go/internal/application/usecase"
	"github.com/kandco/kco-finops-go/internal/shared/types"
	"github.com/kandco/kco-finops-go/pkg/console"
	"github.com/kandco/kco-finops-go/pkg/version"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	awsRepo := aws.NewAWSRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	analyzeUseCase := usecase.NewAnalyzeUseCase(
		awsRepo,
		exportRepo,
		consoleImpl,
		logger,
	)

	app.SetAnalyzeUseCase(analyzeUseCase)
	app.SetConfigRepository(configRepo)
	app.SetConsole(consoleImpl)
	app.SetServerFactory(func(cfg *types.Config) (cli.ServerRunner, error) {
		store, err := storage.NewUploadStore(cfg.TempDir, logger)
		if err != nil {
			return nil, err
		}
		// Autenticação fica a cargo do gateway na frente do serviço.
		return api.NewServer(logger, analyzeUseCase, exportRepo, store, cfg.MaxUploadMB, nil), nil
	})

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
