package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
)

const configHierarchy = `Configuration hierarchy (highest to lowest priority):
  1. CLI flags
  2. Environment variables (CREDCHECK_*, e.g. CREDCHECK_LLM_PROVIDER)
  3. Config file (./credcheck.yaml, then ~/.credcheck/config.yaml)
  4. Defaults
API keys may also come from GROQ_API_KEY, OPENAI_API_KEY or ANTHROPIC_API_KEY,
read from the environment or a .env file.`

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage credcheck configuration",
	Long:  "Manage credcheck configuration files and settings.\n\n" + configHierarchy,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}

		if file := viper.ConfigFileUsed(); file != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Configuration file: %s\n\n", file)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "No configuration file found (using defaults)\n\n")
		}

		if err := writeConfig(cmd.OutOrStdout(), redact(*cfg)); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "\n%s\n", configHierarchy)
		return nil
	},
}

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default configuration file",
	Long:  `Create a configuration file with every option at its default. Without a path, ~/.credcheck/config.yaml is written.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("find home directory: %w", err)
			}
			path = defaultConfigPath(home)
		}

		if _, statErr := os.Stat(path); statErr == nil && !configInitForce {
			return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create config file: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close config file: %w", closeErr)
			}
		}()

		if _, err := fmt.Fprintf(f, "# credcheck configuration\n#\n# %s\n\n", "Set llm.provider to groq, openai, anthropic or ollama to enable adjudication."); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		if err := writeConfig(f, model.DefaultConfig()); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created default configuration: %s\n", path)
		return nil
	},
}

func writeConfig(w io.Writer, cfg model.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return enc.Close()
}

// redact hides the API key in printed configs.
func redact(cfg model.Config) model.Config {
	if k := cfg.LLM.APIKey; k != "" {
		if len(k) > 4 {
			cfg.LLM.APIKey = "****" + k[len(k)-4:]
		} else {
			cfg.LLM.APIKey = "****"
		}
	}
	return cfg
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing file")
}
