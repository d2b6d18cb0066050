// Package cli implements the findbar commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"findbar/internal/config"
	"findbar/internal/domain"
	"findbar/internal/eventbus"
	"findbar/internal/logging"
	"findbar/internal/store"
	"findbar/internal/ui"
)

// ErrNotTerminal is returned when the TUI is started without a terminal
var ErrNotTerminal = errors.New("findbar needs an interactive terminal; use 'findbar query' for scripted searches")

// globalOptions are the persistent flags shared by all commands
type globalOptions struct {
	configPath string
	dataset    string
	verbose    bool
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}
	var (
		debounce time.Duration
		noMouse  bool
	)

	cmd := &cobra.Command{
		Use:   "findbar",
		Short: "Interactive search over people, files, chats and lists",
		Long: `findbar is a terminal search box. Typing filters the dataset by title
after a short debounce; tabs narrow the results by category and the
settings panel controls which categories the All tab includes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return ErrNotTerminal
			}

			bus := eventbus.New()
			defer bus.Close()
			subscribeEventLog(bus)

			cfg, err := opts.loadConfig(bus)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("debounce") {
				cfg.DebounceMs = int(debounce.Milliseconds())
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			if noMouse {
				cfg.UI.Mouse = false
			}

			closeLog := opts.setupLogging(cfg)
			defer closeLog()

			return runTUI(bus, cfg)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file (default: "+config.DefaultPath()+")")
	cmd.PersistentFlags().StringVar(&opts.dataset, "dataset", "", "Dataset file (.toml, .yaml); overrides the config")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().DurationVar(&debounce, "debounce", 0, "Delay between an edit and the search (default from config, 300ms)")
	cmd.Flags().BoolVar(&noMouse, "no-mouse", false, "Disable mouse support")

	cmd.AddCommand(newQueryCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig reads the config file, publishing on bus when it is non-nil,
// and applies the --dataset override
func (o *globalOptions) loadConfig(bus eventbus.EventBus) (*config.Config, error) {
	var cs config.ConfigService
	if bus != nil {
		cs = config.NewConfigServiceWithBus(o.configPath, bus)
	} else {
		cs = config.NewConfigService(o.configPath)
	}

	// An explicit --config must exist
	if o.configPath != "" {
		if _, err := os.Stat(o.configPath); err != nil {
			return nil, fmt.Errorf("config %s: %w", o.configPath, err)
		}
	}

	cfg, err := cs.Load()
	if err != nil {
		return nil, err
	}
	if o.dataset != "" {
		cfg.Dataset = o.dataset
	}
	return cfg, nil
}

// setupLogging configures logrus from the config and flags. The returned
// func releases the log file.
func (o *globalOptions) setupLogging(cfg *config.Config) func() {
	closer, err := logging.Setup(logging.Options{
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
		Verbose: o.verbose,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
		return func() {}
	}
	return func() { _ = closer.Close() }
}

func runTUI(bus eventbus.EventBus, cfg *config.Config) error {
	log := logging.NewLogger("main")

	rs, err := store.Open(cfg.Dataset)
	if err != nil {
		log.WithError(err).Error("failed to open dataset")
		return err
	}
	log.WithFields(logrus.Fields{
		"dataset": cfg.Dataset,
		"items":   rs.Len(),
	}).Info("dataset loaded")

	model := ui.NewModel(bus, cfg, rs, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case sig := <-sigChan:
			log.WithField("signal", sig).Info("shutting down")
			cancel()
		case <-ctx.Done():
		}
	}()

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			model.Session().Close()
			return nil
		}
		log.WithError(err).Error("program exited with error")
		return fmt.Errorf("error running program: %w", err)
	}
	log.Info("exited")
	return nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// subscribeEventLog logs search lifecycle events
func subscribeEventLog(bus eventbus.EventBus) {
	log := logging.NewLogger("events")
	types := []eventbus.EventType{
		eventbus.EventSearchStarted,
		eventbus.EventSearchSettled,
		eventbus.EventSearchCleared,
		eventbus.EventTabChanged,
		eventbus.EventVisibilityChanged,
		eventbus.EventSettingsToggled,
		eventbus.EventItemOpened,
		eventbus.EventConfigLoaded,
	}
	for _, t := range types {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			log.WithField("event", e.Type()).Debugf("%+v", e)
		})
	}
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if ev, ok := e.(domain.ErrorEvent); ok {
			log.WithError(ev.Err).Error(ev.Message)
		}
	})
}
