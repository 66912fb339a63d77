package cmd

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const repositorySlug = "s0up4200/tmdbkit"

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records the build information injected by main
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = v
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	// no config needed
	PersistentPreRunE:  func(*cobra.Command, []string) error { return nil },
	PersistentPostRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tmdbkit %s (built %s, %s/%s)\n", version, buildTime, runtime.GOOS, runtime.GOARCH)
	},
}

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:                "update",
	Short:              "Update tmdbkit to the latest release",
	Args:               cobra.NoArgs,
	PersistentPreRunE:  func(*cobra.Command, []string) error { return nil },
	PersistentPostRunE: func(*cobra.Command, []string) error { return nil },
	RunE:               runUpdate,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	current, err := semver.ParseTolerant(version)
	if err != nil {
		return fmt.Errorf("cannot update a development build (%s): %w", version, err)
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repositorySlug))
	if err != nil {
		return fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found {
		return errors.New("no release found for this platform")
	}

	latestVersion, err := semver.ParseTolerant(latest.Version())
	if err != nil {
		return fmt.Errorf("invalid release version %q: %w", latest.Version(), err)
	}
	if latestVersion.LTE(current) {
		fmt.Printf("✓ tmdbkit %s is up to date\n", current)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}

	fmt.Printf("Updating %s → %s...\n", current, latestVersion)
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update: %w", err)
	}

	fmt.Printf("✓ Updated to %s\n", latestVersion)
	return nil
}
