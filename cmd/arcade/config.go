package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetress/internal/config"
	"github.com/vovakirdan/tetress/internal/games/tetress"
)

var (
	flagConfigOutput string
	flagConfigUser   bool
	flagConfigForce  bool
	flagConfigRaw    bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or save the effective Tetress configuration",
	Long: `Print the Tetress configuration as YAML after loading, applying the
difficulty preset and clamping invalid values.

The configuration is searched in this order:
  1. --config <path>
  2. ~/.arcade/configs/tetress.yaml
  3. ./configs/tetress.yaml
  4. built-in defaults

Examples:
  arcade config
  arcade config --difficulty hard
  arcade config --defaults
  arcade config --user                 # write ~/.arcade/configs/tetress.yaml
  arcade config --output ./tetress.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.Flags().StringVarP(&flagConfigOutput, "output", "o", "", "Write the configuration to this file")
	configCmd.Flags().BoolVar(&flagConfigUser, "user", false, "Write the configuration to the user config path")
	configCmd.Flags().BoolVar(&flagConfigForce, "force", false, "Overwrite an existing file")
	configCmd.Flags().BoolVar(&flagConfigRaw, "defaults", false, "Print the built-in default configuration")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigRaw {
		fmt.Print(string(config.GetDefaultYAML(tetress.ID)))
		return nil
	}

	cfg, problems := tetress.ResolveConfig(flagConfig, flagDifficulty)
	warnProblems(problems)

	out := flagConfigOutput
	if flagConfigUser {
		out = config.UserTetressPath()
		if out == "" {
			return errors.New("cannot determine the user config path")
		}
	}

	if out == "" {
		data, err := config.MarshalTetress(cfg)
		if err != nil {
			return err
		}
		fmt.Printf("# source: %s\n", config.TetressSource(flagConfig))
		fmt.Print(string(data))
		return nil
	}

	if _, err := os.Stat(out); err == nil && !flagConfigForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", out)
	}
	if err := config.SaveTetress(out, cfg); err != nil {
		return err
	}
	logger.Info("configuration saved", "path", out)
	return nil
}
