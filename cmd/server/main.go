package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/cryptotax-backend/internal/adapter/grpc"
	cryptotaxv1 "github.com/simaogato/cryptotax-backend/internal/adapter/grpc/cryptotax/v1"
	"github.com/simaogato/cryptotax-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/cryptotax-backend/internal/usecase/ledger"
	"github.com/simaogato/cryptotax-backend/internal/usecase/matcher"
	"github.com/simaogato/cryptotax-backend/internal/usecase/normalizer"
	"github.com/simaogato/cryptotax-backend/internal/usecase/reporting"
	"github.com/simaogato/cryptotax-backend/internal/usecase/seeder"
	"github.com/simaogato/cryptotax-backend/internal/usecase/washsale"
)

const (
	defaultAPIToken = "dev-token"
	grpcPort        = ":8080"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	_ = godotenv.Load()

	// 1. Setup Database
	dbConnStr := os.Getenv("DB_CONN_STR")
	if dbConnStr == "" {
		// If explicit string is missing, build it from individual vars (Docker friendly)
		host := os.Getenv("DB_HOST")
		if host == "" {
			host = "localhost" // Default for local run without docker
		}
		port := os.Getenv("DB_PORT")
		if port == "" {
			port = "5432"
		}
		user := os.Getenv("DB_USER")
		if user == "" {
			user = "postgres"
		}
		password := os.Getenv("DB_PASSWORD")
		if password == "" {
			password = "postgres"
		}
		dbname := os.Getenv("DB_NAME")
		if dbname == "" {
			dbname = "cryptotax"
		}

		dbConnStr = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, port, user, password, dbname)
	}

	// Add 2-second delay to ensure Postgres is up (Simple retry)
	time.Sleep(2 * time.Second)

	db, err := postgres.NewDB(dbConnStr)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// 2. Initialize Repositories (Postgres)
	lotRepo := postgres.NewLotRepository(db)
	disposalRepo := postgres.NewDisposalRepository(db)
	violationRepo := postgres.NewWashSaleViolationRepository(db)
	checkpointRepo := postgres.NewCheckpointRepository(db)
	settingsRepo := postgres.NewTaxSettingsRepository(db)
	ruleRepo := postgres.NewJurisdictionRuleRepository(db)
	fxRateRepo := postgres.NewFXRateRepository(db)
	tokenPriceRepo := postgres.NewTokenPriceRepository(db)

	// 3. Initialize Services (Use Cases)
	ledgerService := ledger.NewLedgerService(lotRepo)
	ledgerService.Prices = tokenPriceRepo
	matcherService := matcher.NewMatcherService(ledgerService, disposalRepo, checkpointRepo, settingsRepo, ruleRepo)
	detectorService := washsale.NewDetectorService(lotRepo, disposalRepo, violationRepo, settingsRepo, ruleRepo)
	normalizerService := normalizer.NewNormalizerService(lotRepo, disposalRepo, settingsRepo, fxRateRepo)
	reportingService := reporting.NewReportingService(lotRepo, disposalRepo, violationRepo)

	// Seed the baseline jurisdiction rules and run it
	ruleSeeder := seeder.NewRuleSeeder(ruleRepo)
	ctx := context.Background()
	if err := ruleSeeder.Seed(ctx); err != nil {
		log.Fatalf("Failed to seed jurisdiction rules: %v", err)
	}
	log.Println("Jurisdiction rules seeded successfully")

	// 4. Start gRPC Server
	// Get API token from environment or use default
	apiToken := os.Getenv("API_TOKEN")
	if apiToken == "" {
		apiToken = defaultAPIToken
	}

	// Create gRPC server with AuthInterceptor
	grpcServer := grpclib.NewServer(
		grpclib.UnaryInterceptor(grpcadapter.AuthInterceptor(apiToken)),
	)

	// Register CryptoTaxServiceServer
	grpcAdapter := grpcadapter.NewServer(ledgerService, matcherService, detectorService, normalizerService, reportingService)
	cryptotaxv1.RegisterCryptoTaxServiceServer(grpcServer, grpcAdapter)

	reflection.Register(grpcServer)

	// Listen on TCP port 8080
	lis, err := net.Listen("tcp", grpcPort)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", grpcPort, err)
	}

	// Start server in a goroutine
	go func() {
		log.Printf("gRPC server listening on %s", grpcPort)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")
}
