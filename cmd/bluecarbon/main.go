package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/bluecarbon/cmd/bluecarbon/ui"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon"
	"github.com/BrandonKowalski/bluecarbon/pkg/bluecarbon/constants"
)

var (
	// Global flags
	configPath string
	appName    string
	locale     string
	logLevel   string
	logPath    string
)

// rootCmd runs the terminal shell
var rootCmd = &cobra.Command{
	Use:   "bluecarbon",
	Short: "Blue carbon registry platform demo shell",
	Long: `Runs the four platform apps side by side in the terminal:
the community mobile app, the registry admin portal, the corporate
marketplace and the government portal. Each app keeps its own session.

Keys:
  tab / shift+tab   switch app
  esc               back
  ctrl+l            sign out of the current app
  [key]             trigger an action listed on screen
  q / ctrl+c        quit`,
	SilenceUsage: true,
	RunE:         runShell,
}

// iconsCmd exports the screen icons
var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Export every screen icon as PNG",
	RunE:  runIcons,
}

var (
	iconsOut  string
	iconsSize int
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv(constants.ConfigPathEnvVar), "config file (TOML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-path", "", "log file path")
	rootCmd.Flags().StringVar(&appName, "app", "", "app shown first: mobile, admin, marketplace, government")
	rootCmd.Flags().StringVar(&locale, "locale", "", "display language, e.g. en or hi")

	iconsCmd.Flags().StringVar(&iconsOut, "out", "icons", "output directory")
	iconsCmd.Flags().IntVar(&iconsSize, "size", constants.DefaultIconSize, "icon size in pixels")

	rootCmd.AddCommand(iconsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runShell(cmd *cobra.Command, args []string) error {
	platform, err := bluecarbon.Init(bluecarbon.Options{
		ConfigPath:     configPath,
		LogPath:        logPath,
		LogLevel:       logLevel,
		Locale:         locale,
		DefaultApp:     appName,
		DisableConsole: true,
	})
	if err != nil {
		return err
	}
	defer bluecarbon.Close()

	var tabs []ui.Tab
	start := 0
	for i, surface := range platform.Surfaces() {
		if surface.ID() == platform.DefaultApp() {
			start = i
		}
		tabs = append(tabs, ui.Tab{Title: platform.AppTitle(surface.ID()), Surface: surface})
	}

	shell := ui.NewShell(tabs, start, bluecarbon.GetLogger())
	if _, err := tea.NewProgram(shell, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run shell: %w", err)
	}
	return nil
}

func runIcons(cmd *cobra.Command, args []string) error {
	if iconsSize <= 0 {
		return fmt.Errorf("--size must be positive, got %d", iconsSize)
	}

	written, err := bluecarbon.ExportIcons(iconsOut, iconsSize)
	for _, path := range written {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return err
}
