package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/danmuck/kawaiictl/internal/config"
	"github.com/danmuck/kawaiictl/internal/launch"
	"github.com/danmuck/kawaiictl/internal/observability"
	"github.com/danmuck/kawaiictl/internal/server"
	"github.com/danmuck/kawaiictl/internal/tools"
	"github.com/danmuck/kawaiictl/internal/version"
)

const usage = `usage: kawaiictl <command> [flags]

commands:
  launch  -username NAME -version ID [-config PATH]
  plan    -username NAME -version ID [-config PATH]
  serve   [-config PATH]
  config  [-output PATH] [-force] | -validate [-input PATH]
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "kawaiictl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command\n%s", usage)
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "launch":
		return runLaunch(rest, false, stdout)
	case "plan":
		return runLaunch(rest, true, stdout)
	case "serve":
		return runServe(rest)
	case "config":
		return runConfig(rest, stdout)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
}

func newOrchestrator(cfg config.Config, starter tools.ProcessStarter) (*launch.Orchestrator, error) {
	l := cfg.Layout()
	return launch.New(launch.Config{
		Layout:     l,
		Fetcher:    version.NewFileFetcher(l),
		Starter:    starter,
		Executable: cfg.JavaExecutable,
	})
}

func runLaunch(args []string, dryRun bool, stdout io.Writer) error {
	name := "launch"
	if dryRun {
		name = "plan"
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	username := fs.String("username", "", "player name for the offline session")
	versionID := fs.String("version", "", "version id under <root>/versions")
	configPath := fs.String("config", "", "config path (defaults to kawaii.toml when present)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	observability.InitLogger("kawaiictl")
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	orch, err := newOrchestrator(cfg, tools.ExecStarter{})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if dryRun {
		plan, err := orch.Plan(ctx, *username, *versionID)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, plan.Executable+" "+strings.Join(plan.Args, " "))
		return nil
	}
	return orch.Launch(ctx, *username, *versionID)
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	configPath := fs.String("config", "", "config path (defaults to kawaii.toml when present)")
	timeout := fs.Duration("launch-timeout", 2*time.Minute, "bound on the fetch phase of one launch request")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := observability.InitLogger("kawaiictl")
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	orch, err := newOrchestrator(cfg, tools.ExecStarter{Reap: true})
	if err != nil {
		return err
	}
	observability.RegisterMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Config{
		Addr:          cfg.ListenAddr,
		CorsOrigins:   cfg.CorsOrigins,
		LaunchTimeout: *timeout,
	}, orch, logger)
	return srv.Serve(ctx)
}

func runConfig(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	output := fs.String("output", config.DefaultPath, "output path for config template")
	force := fs.Bool("force", false, "overwrite existing config file")
	validate := fs.Bool("validate", false, "validate an existing config file")
	input := fs.String("input", config.DefaultPath, "config path for validation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *validate {
		if _, err := config.Load(*input); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "validated config at %s\n", *input)
		return nil
	}
	if err := config.WriteTemplate(*output, *force); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote config template to %s\n", *output)
	return nil
}
