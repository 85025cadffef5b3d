package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/annotext/mcp-pdf-comments/internal/config"
	"github.com/annotext/mcp-pdf-comments/internal/mcp"
	"github.com/annotext/mcp-pdf-comments/internal/pdf"
	"github.com/annotext/mcp-pdf-comments/internal/session"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging keeps log output off stdout so it cannot interfere with
// the MCP protocol.
func setupLogging(cfg *config.Config) {
	log.SetOutput(os.Stderr)
	if !cfg.IsDebug() {
		log.SetOutput(os.NewFile(0, os.DevNull))
	}
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	// Load configuration from flags first
	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg)

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	if cfg.IsDebug() {
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	// Create the session and file validator
	sess := session.New(cfg.PrefsPath)
	validator := pdf.NewValidator(cfg.MaxFileSize)

	// Create MCP server
	server, err := mcp.NewServer(cfg, validator, sess)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The parent process controls our lifecycle over stdio; exit
	// cleanly when stdin closes and quietly otherwise.
	if err := server.Run(ctx); err != nil {
		if cfg.IsDebug() {
			log.Printf("Server error: %v", err)
		}
		os.Exit(1)
	}
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("MCP PDF Comments\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
