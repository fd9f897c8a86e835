package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"folio/internal/config"
)

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigShowCommand())
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "show",
		Short:       "Show the active configuration",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if flag := cmd.Flags().Lookup("config"); flag != nil {
				path = flag.Value.String()
			}
			cfg, resolved, exists, err := config.Load(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if exists {
				fmt.Fprintf(out, "Configuration file: %s\n\n", resolved)
			} else {
				fmt.Fprintln(out, "No configuration file found, showing defaults.")
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "data_dir:             %s\n", cfg.Paths.DataDir)
			fmt.Fprintf(out, "log_dir:              %s\n", cfg.Paths.LogDir)
			fmt.Fprintf(out, "llm.base_url:         %s\n", cfg.LLM.BaseURL)
			fmt.Fprintf(out, "llm.model:            %s\n", valueOrUnset(cfg.LLM.Model))
			fmt.Fprintf(out, "llm.api_key:          %s\n", maskSecret(cfg.LLM.APIKey))
			fmt.Fprintf(out, "chunk_size:           %d\n", cfg.Summarizer.ChunkSize)
			fmt.Fprintf(out, "chunk_overlap:        %d\n", cfg.Summarizer.ChunkOverlap)
			fmt.Fprintf(out, "direct_threshold:     %d\n", cfg.Summarizer.DirectThreshold)
			fmt.Fprintf(out, "map_rate_limit:       %d\n", cfg.Summarizer.MapRateLimit)
			fmt.Fprintf(out, "map_workers:          %d\n", cfg.Summarizer.MapWorkers)
			fmt.Fprintf(out, "cache_retention_days: %d\n", cfg.Summarizer.CacheRetentionDays)
			fmt.Fprintf(out, "logging:              %s/%s\n", cfg.Logging.Format, cfg.Logging.Level)
			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Edit the file to set llm.api_key and llm.model before summarizing.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func valueOrUnset(v string) string {
	if strings.TrimSpace(v) == "" {
		return "(unset)"
	}
	return v
}

func maskSecret(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "(unset)"
	}
	if len(v) <= 8 {
		return "****"
	}
	return v[:4] + "…" + v[len(v)-4:]
}
