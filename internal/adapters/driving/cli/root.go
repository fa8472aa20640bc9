package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/resp2seed/internal/core/domain"
	"github.com/custodia-labs/resp2seed/internal/core/ports/driven"
	"github.com/custodia-labs/resp2seed/internal/core/ports/driving"
	"github.com/custodia-labs/resp2seed/internal/logger"
)

var (
	version = "dev"
	verbose bool

	conversionService driving.ConversionService
	configStore       driven.ConfigStore
)

var rootCmd = &cobra.Command{
	Use:   "resp2seed",
	Short: "Convert RESP instrument responses into SEED groups",
	Long: `resp2seed reads RESP response files, the text form of SEED station
metadata, and rebuilds the header, abbreviation and station groups they
describe. Missing fields are filled from the group templates.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output")
}

// SetServices wires the core service and the configuration store into the
// commands. Either may be nil.
func SetServices(svc driving.ConversionService, cfg driven.ConfigStore) {
	conversionService = svc
	configStore = cfg
}

// currentSettings resolves the configured defaults; without a store every
// setting is at its zero value.
func currentSettings() domain.Settings {
	if configStore == nil {
		return domain.Settings{}
	}
	return configStore.Settings()
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command. Command output goes to stdout, warnings
// and errors to stderr.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
	return rootCmd.Execute()
}
