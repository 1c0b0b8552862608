package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

const version = "0.1.0"

const usageText = `Usage: almanac <command> [flags]

Commands:
  pick      Choose a month interactively and print it as YYYY-MM
  generate  Send a prompt to the local Ollama server and print the reply
  health    Check that Ollama is reachable and the model is installed
  init      Write a config file interactively
  mcp       Serve generate_content and check_health over MCP (stdio)

Run "almanac <command> -h" for command flags.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var err error

	switch os.Args[1] {
	case "pick":
		err = pickCmd(ctx, os.Args[2:])
	case "generate":
		err = generateCmd(ctx, os.Args[2:])
	case "health":
		err = healthCmd(ctx, os.Args[2:])
	case "init":
		err = initCmd(os.Args[2:])
	case "mcp":
		err = mcpCmd(ctx, os.Args[2:])
	case "version":
		fmt.Println(version)
	case "-h", "--help", "help":
		fmt.Fprint(os.Stdout, usageText)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usageText)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newFlagSet creates a sub-command FlagSet with the global flags registered.
func newFlagSet(name, summary string, g *globalOptions) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: almanac %s [flags]\n\n%s\n\nFlags:\n", name, summary)
		fs.PrintDefaults()
	}
	g.register(fs)
	return fs
}
