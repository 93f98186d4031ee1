package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/superbuilder/coreui/backend/internal/infrastructure/config"
	"github.com/superbuilder/coreui/backend/internal/infrastructure/server"
)

func main() {
	// Parse flags
	configFile := flag.String("config", "", "YAML config file (overrides env)")
	envFile := flag.String("env-file", ".env", "Dotenv file loaded before the environment is read")
	port := flag.String("port", "", "Server port")
	host := flag.String("host", "", "Listen host")
	middlewareAddr := flag.String("middleware", "", "Middleware gRPC address")
	autoConnect := flag.Bool("autoconnect", false, "Connect to the middleware on startup")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	dev := flag.Bool("dev", false, "Development mode (console logs)")
	flag.Parse()

	if err := config.LoadEnvFile(*envFile); err != nil {
		log.Fatalf("Failed to load env file: %v", err)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags given on the command line override env and file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Server.Port = *port
		case "host":
			cfg.Server.Host = *host
		case "middleware":
			cfg.Middleware.Address = *middlewareAddr
		case "autoconnect":
			cfg.Middleware.AutoConnect = *autoConnect
		case "log-level":
			cfg.Logging.Level = *logLevel
		case "dev":
			cfg.Logging.Development = *dev
		}
	})

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run()
	}()

	select {
	case <-sigChan:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}
