package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pdfnamer",
	Short: "Name exported business documents from configurable patterns.",
	Long: `Name exported business documents from configurable patterns.

Patterns are set per document type in config.yaml, e.g.

  pdffilenamer:
    pattern_FacturaCliente: "{year}-{month}-{day} {code} {customer}"

Provide a configuration file using one of the following methods:
1. Use the --config <path> or -c <path> flag.
2. Place a config.yaml file in the default user configuration directory (e.g., ~/.config/pdfnamer/).
3. Place a config.yaml file a folder inside your home directory (e.g., ~/.pdfnamer/).
4. Place a config.yaml file in the working directory.`,
	SilenceUsage: true,
}

func init() {
	initRootFlags()
	initRenderFlags()
	initExportFlags()
	initServeFlags()

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(patternCmd)

	patternCmd.AddCommand(patternShowCmd)
	patternCmd.AddCommand(patternSetCmd)
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
