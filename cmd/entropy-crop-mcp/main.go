package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/entropy-crop-mcp/internal/config"
	"github.com/ironsheep/entropy-crop-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("entropy-crop-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("entropy-crop-mcp - MCP server for entropy-guided image cropping")
			fmt.Println()
			fmt.Println("Usage: entropy-crop-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables (also read from ./.env):")
			fmt.Println("  IMAGE_MCP_CONFIG=<file>          YAML configuration file")
			fmt.Println("  IMAGE_MCP_LOG_LEVEL=debug        Enable debug logging")
			fmt.Println("  IMAGE_MCP_MAX_ITERATIONS=<n>     Strip removals before a search gives up")
			fmt.Println("  IMAGE_MCP_STRIP_WIDTH=<px>       Pixels removed per search step")
			fmt.Println("  IMAGE_MCP_TOLERANCE=<f>          Accepted aspect ratio error")
			fmt.Println("  IMAGE_MCP_WORKERS=<n>            Concurrent searches in batch crops")
			fmt.Println("  IMAGE_MCP_BACKGROUND=<#rrggbb>   Canvas colour for layer merges")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.Debug() {
		log.Printf("Entropy Crop MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Search: max_iterations=%d strip_width=%d tolerance=%g workers=%d",
			cfg.MaxIterations, cfg.StripWidth, cfg.Tolerance, cfg.Workers)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
