package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newCacheCmd creates the cache command group.
func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the render cache",
		Long: `Manage the render cache.

Layouts and rendered artifacts are cached between runs. The cache is
safe to clear at any time; entries are rebuilt on the next render.`,
	}

	cmd.AddCommand(newCacheClearCmd())
	cmd.AddCommand(newCachePathCmd())

	return cmd
}

func newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached layouts and artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Cache.Backend != "file" {
				printWarning("Only the file cache can be cleared here (backend is %q)", cfg.Cache.Backend)
				return nil
			}

			if _, err := os.Stat(cfg.Cache.Dir); os.IsNotExist(err) {
				printInfo("The cache is already empty")
				return nil
			}
			if err := os.RemoveAll(cfg.Cache.Dir); err != nil {
				return fmt.Errorf("clearing cache: %w", err)
			}
			printSuccess("Cleared cache at %s", cfg.Cache.Dir)
			return nil
		},
	}
}

func newCachePathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			switch cfg.Cache.Backend {
			case "redis":
				fmt.Println("redis://" + cfg.Cache.RedisAddr)
			case "off":
				printInfo("Caching is disabled")
			default:
				fmt.Println(cfg.Cache.Dir)
			}
			return nil
		},
	}
}
