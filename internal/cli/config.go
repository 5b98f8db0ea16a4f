package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/duke/internal/app"
	"github.com/runoshun/duke/internal/domain"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(s *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Inspect or create the duke configuration file.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(s))
	cmd.AddCommand(newConfigTemplateCommand())
	cmd.AddCommand(newConfigInitCommand(s))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(s *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective configuration after applying defaults,
the config file and command-line flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.LoadConfig(s.opts)
			if err != nil {
				return err
			}
			info := app.NewConfigManager(s.opts).GetConfigInfo()

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, "[Loaded from]")
			if info.Exists {
				_, _ = fmt.Fprintf(w, "- %s\n", info.Path)
			} else {
				_, _ = fmt.Fprintf(w, "- %s (not found)\n", info.Path)
			}
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Effective Config]")
			if err := formatEffectiveConfig(w, cfg); err != nil {
				return err
			}

			for _, warning := range cfg.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", warning)
			}
			return nil
		},
	}
}

// formatEffectiveConfig writes cfg as TOML.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// newConfigTemplateCommand creates the config template subcommand.
func newConfigTemplateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), domain.RenderConfigTemplate(domain.NewDefaultConfig()))
			return err
		},
	}
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(s *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a config file with defaults",
		Long: `Create the config file with default values and comments.

The file is written to --config if given, otherwise to
$XDG_CONFIG_HOME/duke/config.toml. --data sets storage.path in the new file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := domain.NewDefaultConfig()
			if s.opts.DataPath != "" {
				cfg.Storage.Path = s.opts.DataPath
			}

			manager := app.NewConfigManager(s.opts)
			if err := manager.InitConfig(cfg); err != nil {
				if errors.Is(err, domain.ErrConfigExists) {
					return fmt.Errorf("%w (remove it first to regenerate)", err)
				}
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", manager.GetConfigInfo().Path)
			return nil
		},
	}
}
