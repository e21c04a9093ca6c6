package cmd

import (
	"fmt"

	"pdfnamer/internal/buildinfo"
	"pdfnamer/internal/config"
	"pdfnamer/internal/domain"
	"pdfnamer/internal/filename"
	"pdfnamer/internal/logger"
	"pdfnamer/internal/templater"
	"pdfnamer/internal/tokens"

	"github.com/spf13/cobra"
)

var patternCmd = &cobra.Command{
	Use:   "pattern",
	Short: "Show or change the naming pattern of a document type",
}

var patternShowCmd = &cobra.Command{
	Use:   "show <DocType>",
	Short: "Print the pattern configured for a document type",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := config.New(configPath, buildinfo.Version)
		if err != nil {
			return err
		}

		fmt.Println(cfg.Setting(filename.SettingsPlugin, filename.SettingKey(args[0]), ""))

		return nil
	},
}

var patternSetCmd = &cobra.Command{
	Use:   "set <DocType> <pattern>",
	Short: "Save the pattern for a document type to config.yaml",
	Long: `Save the pattern for a document type to config.yaml.

An empty pattern restores the default naming for that type.
A running "pdfnamer serve" picks the change up without a restart.`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := config.New(configPath, buildinfo.Version)
		if err != nil {
			return err
		}

		log := logger.New(cfg.Config)

		docType, p := args[0], args[1]

		known := domain.TokenMap{}
		for _, name := range tokens.Vocabulary {
			known.Set(name, "")
		}
		for _, name := range templater.Unknown(p, known) {
			log.Warn().Str("doctype", docType).Msgf("{%s} is not a known token and will be kept as written", name)
		}

		if err := cfg.SaveSetting(filename.SettingsPlugin, filename.SettingKey(docType), p); err != nil {
			return err
		}

		log.Info().Str("doctype", docType).Str("pattern", p).Msg("pattern saved")

		return nil
	},
}
