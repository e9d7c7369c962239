package cli

import (
	"fmt"
	"strings"

	"github.com/amirulhakim/waktu-solat/internal/config"
	"github.com/spf13/cobra"
)

// newConfigCmd creates the `config` command with get/set/reset
// subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage persistent configuration",
		Long: "Get, set, or reset configuration stored at ~/.config/waktu-solat/config.json.\n" +
			"Valid keys: " + strings.Join(config.ValidKeys, ", "),
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigResetCmd())

	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Show one config value, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadedConfig
			if cfg == nil {
				cfg = &config.Config{}
			}

			if len(args) == 1 {
				val, err := cfg.Get(args[0])
				if err != nil {
					return err
				}
				fmt.Println(val)
				return nil
			}

			for _, key := range config.ValidKeys {
				val, _ := cfg.Get(key)
				if val == "" {
					val = "(unset)"
				}
				fmt.Printf("%-14s %s\n", key, val)
			}
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadedConfig
			if cfg == nil {
				cfg = &config.Config{}
			}

			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := cfg.Save(); err != nil {
				return err
			}

			val, _ := cfg.Get(args[0])
			fmt.Printf("%s = %s\n", args[0], val)
			return nil
		},
	}
}

func newConfigResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Reset(); err != nil {
				return err
			}
			fmt.Println("configuration reset")
			return nil
		},
	}
}
