package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	grpclib "google.golang.org/grpc"

	"github.com/junitapp/banco-backend/internal/adapter/events"
	"github.com/junitapp/banco-backend/internal/adapter/events/kafka"
	grpcadapter "github.com/junitapp/banco-backend/internal/adapter/grpc"
	"github.com/junitapp/banco-backend/internal/adapter/repository/memory"
	"github.com/junitapp/banco-backend/internal/config"
	"github.com/junitapp/banco-backend/internal/domain"
	"github.com/junitapp/banco-backend/internal/logger"
	"github.com/junitapp/banco-backend/internal/usecase/account"
	"github.com/junitapp/banco-backend/internal/usecase/seeder"
	"github.com/junitapp/banco-backend/internal/usecase/transfer"
)

func main() {
	exitCode := 0
	defer func() {
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	}()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log)
	log.Info("Starting banco server", "env", cfg.Env, "addr", cfg.GRPCAddr)

	// 2. Initialize Repositories (in memory)
	bankRepo := memory.NewBankRepository()

	// Seed the demo bank
	if cfg.Seed.Enabled {
		bankSeeder := seeder.NewBankSeeder(bankRepo, cfg.Seed.BankName)
		if err := bankSeeder.Seed(context.Background()); err != nil {
			log.Error("Failed to seed bank", "bank", cfg.Seed.BankName, "error", err)
			os.Exit(1)
		}
		log.Info("Bank seeded successfully", "bank", cfg.Seed.BankName)
	}

	// 3. Initialize the event publisher
	var publisher domain.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher := kafka.NewPublisher(cfg.Kafka.Brokers)
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				log.Error("Failed to close kafka publisher", "error", err)
			}
		}()
		publisher = kafkaPublisher
		log.Info("Publishing transfer events to kafka", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	} else {
		publisher = events.NewLogPublisher(log)
		log.Info("No kafka brokers configured, transfer events go to the log")
	}

	// 4. Initialize Services (Use Cases)
	accountService := account.NewAccountService(bankRepo)
	transferService := transfer.NewTransferService(bankRepo, publisher, cfg.Kafka.Topic, log)

	// 5. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.RecoveryInterceptor(log),
			grpcadapter.LoggingInterceptor(log),
		),
	)

	grpcAdapter := grpcadapter.NewServer(accountService, transferService)
	grpcadapter.RegisterBankServiceServer(grpcServer, grpcAdapter)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Error("Failed to listen", "addr", cfg.GRPCAddr, "error", err)
		exitCode = 1
		return
	}

	// Start server in a goroutine
	serveErr := make(chan error, 1)
	go func() {
		log.Info("gRPC server listening", "addr", lis.Addr().String())
		serveErr <- grpcServer.Serve(lis)
	}()

	// Graceful shutdown; deferred cleanup runs on both paths
	if err := waitForShutdown(log, grpcServer, serveErr); err != nil {
		log.Error("Failed to serve gRPC server", "error", err)
		exitCode = 1
	}
}

// waitForShutdown blocks until SIGTERM or SIGINT arrives, or the server stops on its own.
// On a signal it stops the server gracefully and returns nil.
func waitForShutdown(log *slog.Logger, grpcServer *grpclib.Server, serveErr <-chan error) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		log.Info("Shutting down gracefully", "signal", sig.String())
		grpcServer.GracefulStop()
		log.Info("gRPC server stopped")
		return nil
	case err := <-serveErr:
		return err
	}
}
