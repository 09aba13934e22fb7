package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ppiankov/floatchat/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// registerDefaults makes every config key known to viper so that
// environment variables can override keys absent from the config file
func registerDefaults(v *viper.Viper) {
	d := model.DefaultConfig()
	v.SetDefault("chat.delay", d.Chat.Delay)
	v.SetDefault("chat.default_role", string(d.Chat.DefaultRole))
	v.SetDefault("chat.catalog_file", d.Chat.CatalogFile)
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("cache.cleanup_interval", d.Cache.CleanupInterval)
	v.SetDefault("concurrency.workers", d.Concurrency.Workers)
	v.SetDefault("rate_limiting.requests_per_second", d.RateLimiting.RequestsPerSecond)
	v.SetDefault("rate_limiting.burst_size", d.RateLimiting.BurstSize)
	v.SetDefault("output.verbose", d.Output.Verbose)
	v.SetDefault("output.include_footer", d.Output.IncludeFooter)
}

// loadConfig merges defaults, config file and environment
func loadConfig(v *viper.Viper) (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	role, err := model.ParseRole(string(cfg.Chat.DefaultRole))
	if err != nil {
		return nil, fmt.Errorf("chat.default_role: %w", err)
	}
	cfg.Chat.DefaultRole = role

	if cfg.Chat.Delay < 0 {
		return nil, fmt.Errorf("chat.delay must not be negative: %v", cfg.Chat.Delay)
	}

	return cfg, nil
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage FloatChat configuration",
	Long: `Manage FloatChat configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (FLOATCHAT_*)
3. Config file (~/.floatchat/config.yaml)
4. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the effective configuration after merging defaults, config file and environment variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}

		if used := viper.ConfigFileUsed(); used != "" {
			fmt.Fprintf(os.Stderr, "Configuration file: %s\n\n", used)
		} else {
			fmt.Fprintf(os.Stderr, "No configuration file found (using defaults)\n\n")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "═══════════════════════════════════════════════════════════")
		fmt.Fprintln(out, "  Current Configuration")
		fmt.Fprintln(out, "═══════════════════════════════════════════════════════════")
		fmt.Fprintln(out)

		yamlData, err := yaml.Marshal(configView(cfg))
		if err != nil {
			return fmt.Errorf("error marshaling config: %w", err)
		}

		fmt.Fprintln(out, string(yamlData))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize default configuration file",
	Long:  `Create a default configuration file at ~/.floatchat/config.yaml with all available options.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("error finding home directory: %w", err)
		}

		configDir := filepath.Join(home, ".floatchat")
		configPath := filepath.Join(configDir, "config.yaml")

		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("config file already exists: %s\nUse 'floatchat config show' to view it, or delete it first to recreate", configPath)
		}

		if err := writeDefaultConfig(configDir, configPath); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Created default configuration: %s\n", configPath)
		return nil
	},
}

// configFile is the YAML shape of the config, with durations as strings
type configFile struct {
	Chat struct {
		Delay       string `yaml:"delay"`
		DefaultRole string `yaml:"default_role"`
		CatalogFile string `yaml:"catalog_file"`
	} `yaml:"chat"`
	Cache struct {
		Enabled         bool   `yaml:"enabled"`
		TTL             string `yaml:"ttl"`
		CleanupInterval string `yaml:"cleanup_interval"`
	} `yaml:"cache"`
	Concurrency  model.ConcurrencyConfig  `yaml:"concurrency"`
	RateLimiting model.RateLimitingConfig `yaml:"rate_limiting"`
	Output       model.OutputConfig       `yaml:"output"`
}

func configView(cfg *model.Config) configFile {
	var f configFile
	f.Chat.Delay = cfg.Chat.Delay.String()
	f.Chat.DefaultRole = string(cfg.Chat.DefaultRole)
	f.Chat.CatalogFile = cfg.Chat.CatalogFile
	f.Cache.Enabled = cfg.Cache.Enabled
	f.Cache.TTL = cfg.Cache.TTL.String()
	f.Cache.CleanupInterval = cfg.Cache.CleanupInterval.String()
	f.Concurrency = cfg.Concurrency
	f.RateLimiting = cfg.RateLimiting
	f.Output = cfg.Output
	return f
}

func writeDefaultConfig(configDir, configPath string) (err error) {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	yamlData, err := yaml.Marshal(configView(model.DefaultConfig()))
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close config file: %w", closeErr)
		}
	}()

	header := `# FloatChat Configuration File
#
# Configuration hierarchy (highest to lowest priority):
#   1. CLI flags
#   2. Environment variables (FLOATCHAT_*, e.g. FLOATCHAT_CHAT_DELAY=0s)
#   3. This config file
#   4. Built-in defaults

`
	if _, err := f.WriteString(header); err != nil {
		return fmt.Errorf("error writing config: %w", err)
	}
	if _, err := f.Write(yamlData); err != nil {
		return fmt.Errorf("error writing config: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
