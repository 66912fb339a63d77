package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbkit/endpoints"
)

var endpointsOutput string

// endpointsCmd groups the endpoint configuration commands
var endpointsCmd = &cobra.Command{
	Use:   "endpoints",
	Short: "Inspect and persist the endpoint configuration",
	Long: `The endpoint configuration maps every operation and parameter to its wire
name. Dump it to a file, edit it, and point tmdb.endpoints_file at it to adapt
to API changes without rebuilding.`,
}

var endpointsDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Write the active endpoint configuration as YAML",
	Args:  cobra.NoArgs,
	RunE:  runEndpointsDump,
}

var endpointsRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Write the built-in default endpoint configuration as YAML",
	Args:  cobra.NoArgs,
	RunE:  runEndpointsRestore,
}

func init() {
	rootCmd.AddCommand(endpointsCmd)
	endpointsCmd.AddCommand(endpointsDumpCmd)
	endpointsCmd.AddCommand(endpointsRestoreCmd)

	endpointsCmd.PersistentFlags().StringVarP(&endpointsOutput, "output", "o", "", "write to file instead of stdout")
}

func runEndpointsDump(cmd *cobra.Command, args []string) error {
	return writeEndpoints(endpoint)
}

func runEndpointsRestore(cmd *cobra.Command, args []string) error {
	restored := endpoint
	restored.RestoreDefaults("")
	return writeEndpoints(restored)
}

func writeEndpoints(ec endpoints.Config) error {
	if endpointsOutput != "" {
		if err := endpoints.Save(endpointsOutput, ec); err != nil {
			return err
		}
		logger.Info().Str("path", endpointsOutput).Msg("Endpoint configuration written")
		return nil
	}

	data, err := endpoints.Serialize(ec)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	if err != nil {
		return fmt.Errorf("failed to write endpoint configuration: %w", err)
	}
	return nil
}
