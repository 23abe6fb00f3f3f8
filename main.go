package main

import (
	"calcgrid/app"
	"calcgrid/config"
	"calcgrid/inspect"
	"calcgrid/log"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version     = "0.3.0"
	noColorFlag bool
	noMouseFlag bool
	gapFlag     int
	widthFlag   int
	heightFlag  int
	formatFlag  string

	rootCmd = &cobra.Command{
		Use:   "calcgrid",
		Short: "calcgrid - a scientific calculator for the terminal",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColorFlag {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close(false)
			log.InitDebug()
			defer log.CloseDebug()

			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("calcgrid needs a terminal; use 'calcgrid eval' for scripted input")
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return app.Run(context.Background(), cfg)
		},
	}

	evalCmd = &cobra.Command{
		Use:   "eval <keys>...",
		Short: "Press keys on a headless calculator and print the display",
		Long: "Press keys on a headless calculator and print the display.\n" +
			"Each argument is a run of key characters such as '12+5=' or a named key: enter, esc, backspace, delete.",
		Example: "  calcgrid eval '2^10='\n  calcgrid eval 12+3 esc 4=",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close(true)

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out, err := app.Evaluate(cfg, args...)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	layoutCmd = &cobra.Command{
		Use:   "layout",
		Short: "Print the keypad geometry for a terminal size",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close(true)

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			snapshot, err := app.LayoutSnapshot(cfg, widthFlag, heightFlag)
			if err != nil {
				return err
			}
			return printSnapshot(snapshot, formatFlag)
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Restore the default configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close(true)

			if err := config.SaveConfig(config.DefaultConfig()); err != nil {
				return fmt.Errorf("failed to reset config: %w", err)
			}
			fmt.Println("Config has been reset to defaults")
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close(true)

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Printf("Log file: %s\n", log.FileName())
			fmt.Printf("Set %s=1 to trace to %s\n", log.DebugEnv, filepath.Join(os.TempDir(), "calcgrid-debug.log"))
			fmt.Printf("Set %s=1 to write UI snapshots to %s\n", inspect.InspectEnv, filepath.Join(os.TempDir(), "calcgrid-inspect.json"))

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of calcgrid",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("calcgrid version %s\n", version)
		},
	}
)

// loadConfig reads the config file and applies command line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.LoadConfig()
	if cmd.Flags().Changed("gap") {
		cfg.Gap = gapFlag
	}
	if noMouseFlag {
		cfg.Mouse = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printSnapshot(s *inspect.Snapshot, format string) error {
	switch strings.ToLower(format) {
	case "text":
		fmt.Print(s.ToText())
	case "json":
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := s.ToYAML()
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	default:
		return fmt.Errorf("invalid format: %s (must be 'text', 'json' or 'yaml')", format)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Render without colors")
	rootCmd.PersistentFlags().IntVarP(&gapFlag, "gap", "g", 1, "Cells between keypad buttons (overrides config)")
	rootCmd.Flags().BoolVar(&noMouseFlag, "no-mouse", false, "Disable mouse input")

	layoutCmd.Flags().IntVar(&widthFlag, "width", 80, "Terminal width")
	layoutCmd.Flags().IntVar(&heightFlag, "height", 24, "Terminal height")
	layoutCmd.Flags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text, json or yaml")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
