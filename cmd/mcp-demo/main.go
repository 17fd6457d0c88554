// Command mcp-demo runs the FX payments code-generation MCP server and a few
// debugging subcommands for inspecting what the server sends to the code
// generator.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	mcpdemo "github.com/marvinmarnold/mcp-demo"
	"github.com/marvinmarnold/mcp-demo/internal/mcpserver"
)

func main() {
	// MCP clients exec the binary without arguments, so no subcommand
	// means serve.
	command := "serve"
	args := []string{}
	if len(os.Args) > 1 {
		command = os.Args[1]
		args = os.Args[2:]
	}

	switch command {
	case "version", "-v", "--version":
		fmt.Println(mcpdemo.BuildInfo())
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	case "serve":
		if err := handleServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "prompt":
		if err := handlePrompt(args, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "spec":
		if err := handleSpec(args, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage(os.Stderr)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: mcp-demo [command]\n\n")
	fmt.Fprintf(w, "FX payments code-generation MCP server.\n\n")
	fmt.Fprintf(w, "Commands:\n")
	fmt.Fprintf(w, "  serve     Run the MCP server over stdio (default)\n")
	fmt.Fprintf(w, "  prompt    Print the assembled prompt for an endpoint and language\n")
	fmt.Fprintf(w, "  spec      Print the API description, optionally narrowed to one endpoint\n")
	fmt.Fprintf(w, "  version   Print build details\n")
	fmt.Fprintf(w, "  help      Print this help\n\n")
	fmt.Fprintf(w, "Examples:\n")
	fmt.Fprintf(w, "  mcp-demo serve\n")
	fmt.Fprintf(w, "  mcp-demo prompt -endpoint /quotes -language python\n")
	fmt.Fprintf(w, "  mcp-demo spec -endpoint /payments -format yaml\n")
}

func handleServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
