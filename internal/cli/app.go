package cli

import (
	"fmt"

	"github.com/ppiankov/floatchat/internal/cache"
	"github.com/ppiankov/floatchat/internal/catalog"
	"github.com/ppiankov/floatchat/internal/chat"
	"github.com/ppiankov/floatchat/internal/model"
	"github.com/ppiankov/floatchat/internal/resolve"
	"github.com/ppiankov/floatchat/internal/worker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flags shared by the question-answering commands
var (
	roleName    string
	catalogPath string
	delay       string
	noCache     bool
	noFooter    bool
)

func addAnswerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&roleName, "role", "", "answer role: Scientist, Policymaker or Student (default from config)")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML response catalog (default: built-in demo catalog)")
	cmd.Flags().StringVar(&delay, "delay", "", "simulated analysis delay, e.g. 0s or 1.5s (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the answer cache")
	cmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown output")
}

// commandConfig loads the config and applies the flags the user set
func commandConfig(cmd *cobra.Command) (*model.Config, error) {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Lookup("role") != nil && flags.Changed("role") {
		role, err := model.ParseRole(roleName)
		if err != nil {
			return nil, err
		}
		cfg.Chat.DefaultRole = role
	}
	if flags.Lookup("catalog") != nil && flags.Changed("catalog") {
		cfg.Chat.CatalogFile = catalogPath
	}
	if flags.Lookup("delay") != nil && flags.Changed("delay") {
		d, err := parseDelay(delay)
		if err != nil {
			return nil, err
		}
		cfg.Chat.Delay = d
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if noFooter {
		cfg.Output.IncludeFooter = false
	}
	cfg.Output.Verbose = cfg.Output.Verbose || verbose

	return cfg, nil
}

// loadCatalog returns the configured catalog or the built-in one
func loadCatalog(cfg *model.Config) (*catalog.Catalog, error) {
	if cfg.Chat.CatalogFile == "" {
		return catalog.Default(), nil
	}

	c, err := catalog.LoadFile(cfg.Chat.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", cfg.Chat.CatalogFile, err)
	}
	logf("✓ Loaded %d catalog entries from %s\n", c.Len(), cfg.Chat.CatalogFile)
	return c, nil
}

// newService wires resolver, cache and rate limiter from the config
func newService(cfg *model.Config) (*chat.Service, error) {
	c, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	opts := chat.Options{
		Delay:   cfg.Chat.Delay,
		Limiter: worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize),
	}
	if cfg.Cache.Enabled {
		opts.Cache = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
		opts.CacheTTL = cfg.Cache.TTL
	}

	return chat.NewService(resolve.New(c), opts), nil
}
