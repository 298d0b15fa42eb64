package launch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danmuck/kawaiictl/internal/layout"
	"github.com/danmuck/kawaiictl/internal/observability"
	"github.com/danmuck/kawaiictl/internal/tools"
	"github.com/danmuck/kawaiictl/internal/version"
	"github.com/rs/zerolog/log"
)

var ErrMissingFetcher = errors.New("launch: fetcher is required")

// Config wires the orchestrator to its collaborators.
type Config struct {
	Layout  layout.Layout
	Fetcher version.Fetcher
	Starter tools.ProcessStarter
	// Executable replaces the platform default runtime binary when set.
	Executable string
}

// Orchestrator runs one launch pipeline per call. Calls sharing a layout
// must be serialized by the caller.
type Orchestrator struct {
	layout     layout.Layout
	fetcher    version.Fetcher
	starter    tools.ProcessStarter
	executable string
	platform   Platform
}

func New(cfg Config) (*Orchestrator, error) {
	if cfg.Fetcher == nil {
		return nil, ErrMissingFetcher
	}
	l := cfg.Layout
	if strings.TrimSpace(l.Root) == "" {
		l = layout.New("")
	}
	starter := cfg.Starter
	if starter == nil {
		starter = tools.ExecStarter{}
	}
	return &Orchestrator{
		layout:     l,
		fetcher:    cfg.Fetcher,
		starter:    starter,
		executable: strings.TrimSpace(cfg.Executable),
		platform:   HostPlatform(),
	}, nil
}

// Layout is the installation layout this orchestrator prepares.
func (o *Orchestrator) Layout() layout.Layout {
	return o.layout
}

// Launch starts the runtime for username on versionID. Success means the
// process started, not that it ran to completion.
func (o *Orchestrator) Launch(ctx context.Context, username, versionID string) error {
	_, err := o.Start(ctx, username, versionID)
	return err
}

// Start is Launch that also returns the started process.
func (o *Orchestrator) Start(ctx context.Context, username, versionID string) (tools.Process, error) {
	plan, err := o.Plan(ctx, username, versionID)
	if err != nil {
		observability.RecordLaunch(Outcome(err))
		log.Error().Err(err).Str("username", username).Str("version", versionID).Msg("launch.abort")
		return tools.Process{}, err
	}

	log.Info().
		Str("username", username).
		Str("version", versionID).
		Msg("launch.start")

	started := time.Now()
	proc, err := o.starter.Start(plan.Executable, plan.Args)
	observability.RecordLaunchPhase("spawn", time.Since(started))
	if err != nil {
		err = &SpawnError{Executable: plan.Executable, Err: err}
		observability.RecordLaunch(Outcome(err))
		log.Error().Err(err).Str("executable", plan.Executable).Msg("launch.spawn failed")
		return tools.Process{}, err
	}
	observability.RecordLaunch(Outcome(nil))
	log.Info().Int("pid", proc.PID).Str("executable", plan.Executable).Msg("launch.spawn started")
	return proc, nil
}

// Plan prepares the layout, fetches the descriptor and assembles the
// invocation without starting anything.
func (o *Orchestrator) Plan(ctx context.Context, username, versionID string) (Plan, error) {
	username = strings.TrimSpace(username)
	versionID = strings.TrimSpace(versionID)
	if username == "" {
		return Plan{}, fmt.Errorf("%w: username is required", ErrInvalidRequest)
	}
	if versionID == "" {
		return Plan{}, fmt.Errorf("%w: version is required", ErrInvalidRequest)
	}

	if err := o.phase("prepare", o.layout.Prepare); err != nil {
		return Plan{}, err
	}

	var desc version.Descriptor
	err := o.phase("fetch", func() error {
		var fetchErr error
		desc, fetchErr = o.fetcher.Fetch(ctx, versionID)
		if fetchErr != nil {
			return &DownloadError{Version: versionID, Err: fetchErr}
		}
		return nil
	})
	if err != nil {
		return Plan{}, err
	}
	if err := ctx.Err(); err != nil {
		return Plan{}, err
	}
	if err := desc.Validate(); err != nil {
		return Plan{}, fmt.Errorf("%w: %v", ErrInvalidDescriptor, err)
	}
	if desc.ID != versionID {
		return Plan{}, fmt.Errorf("%w: requested %q, fetched %q", ErrInvalidDescriptor, versionID, desc.ID)
	}

	libraries, err := ResolveLibraries(o.layout, desc)
	if err != nil {
		return Plan{}, err
	}
	classpath := BuildClasspath(o.layout, desc.ID, libraries, o.platform)
	args := AssembleArgs(Invocation{
		Username:   username,
		Descriptor: desc,
		Layout:     o.layout,
		Classpath:  classpath,
		Platform:   o.platform,
	})

	log.Debug().
		Str("version", desc.ID).
		Int("libraries", len(libraries)).
		Int("args", len(args)).
		Msg("launch.assemble")
	return Plan{
		Executable: o.runtimeExecutable(),
		Args:       args,
		Classpath:  classpath,
	}, nil
}

func (o *Orchestrator) runtimeExecutable() string {
	if o.executable != "" {
		return o.executable
	}
	return o.platform.Executable()
}

func (o *Orchestrator) phase(name string, fn func() error) error {
	started := time.Now()
	err := fn()
	observability.RecordLaunchPhase(name, time.Since(started))
	if err != nil {
		log.Debug().Err(err).Str("phase", name).Msg("launch.phase failed")
	}
	return err
}
