// Package cli provides the cobra command tree for the helper binary.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marikraa/metropolia-first-year-helper/internal/adapters/driven/ai"
	"github.com/marikraa/metropolia-first-year-helper/internal/adapters/driven/config/file"
	"github.com/marikraa/metropolia-first-year-helper/internal/adapters/driven/registry"
	"github.com/marikraa/metropolia-first-year-helper/internal/core/domain"
	"github.com/marikraa/metropolia-first-year-helper/internal/core/ports/driving"
	"github.com/marikraa/metropolia-first-year-helper/internal/core/services"
	"github.com/marikraa/metropolia-first-year-helper/internal/logger"
)

var (
	version = "dev"

	verbose    bool
	configPath string
	topicsPath string

	// askService answers questions. Wired in initServices, replaceable
	// for tests via SetAskService.
	askService driving.AskService

	// appConfig holds the loaded configuration for commands that need
	// more than the ask service (serve reads the listen address).
	appConfig file.Config
)

var rootCmd = &cobra.Command{
	Use:   "helper",
	Short: "First-year student helper for Metropolia",
	Long: `Helper answers common first-year questions about studying at
Metropolia. It matches your question against a curated topic registry
and, when an AI provider is configured, generates a short answer
grounded in the matched topics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if askService != nil {
			return nil
		}
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.helper/config.toml)")
	rootCmd.PersistentFlags().StringVar(&topicsPath, "topics", "", "path to a topics TOML file (default: embedded registry)")
}

// Execute runs the root command with the given build version.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}

// SetAskService replaces the wired ask service. Used by tests.
func SetAskService(s driving.AskService) {
	askService = s
}

// initServices wires the adapters into the core service: config file,
// topic registry, prompt store and the configured answer provider.
func initServices() error {
	cfg, err := file.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	appConfig = cfg

	reg, err := loadRegistry(cfg)
	if err != nil {
		return fmt.Errorf("load topics: %w", err)
	}

	prompts, err := file.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("create prompt store: %w", err)
	}

	settings, err := cfg.GeneratorSettings()
	if err != nil {
		return err
	}

	generator, err := ai.CreateGenerator(settings, prompts)
	if err != nil {
		return fmt.Errorf("create generator: %w", err)
	}
	if generator == nil {
		logger.Debug("no AI provider configured, running topics-only")
	}

	askService = services.NewAskService(reg, generator)
	return nil
}

func loadRegistry(cfg file.Config) (*domain.Registry, error) {
	switch {
	case topicsPath != "":
		return registry.LoadFile(topicsPath)
	case cfg.TopicsFile != "":
		return registry.LoadFile(cfg.TopicsFile)
	default:
		return registry.Default()
	}
}
