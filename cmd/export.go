package cmd

import (
	"fmt"
	"path/filepath"

	"pdfnamer/internal/export"
	"pdfnamer/internal/files"
	"pdfnamer/internal/records"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a record to pdf and save it under its configured name",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		dir := outputDirectory
		if dir == "" {
			dir = a.cfg.Config.OutputDirectory
		}
		if dir == "" {
			return errors.New("no output directory, use --outputDirectory or set outputDirectory in config")
		}

		if err := files.IsValidLocation(dir); err != nil {
			return errors.Wrap(err, "invalid location")
		}

		record, err := records.Load(ctx, recordLocation)
		if err != nil {
			return err
		}

		exp := export.NewPDF(a.builder, files.NewPDFRenderer())
		if err := exp.AddDocument(ctx, record); err != nil {
			return err
		}

		pdfPath := filepath.Join(dir, exp.FileName()+".pdf")
		if err := files.WritePDF(pdfPath, exp.Document()); err != nil {
			return err
		}

		a.log.Info().Str("doctype", record.DocType).Str("code", record.Code).Msgf("exported %q", pdfPath)
		fmt.Println(pdfPath)

		return nil
	},
}
