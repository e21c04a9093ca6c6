package cmd

import (
	"fmt"

	"pdfnamer/internal/records"
	"pdfnamer/internal/templater"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the file name a record would be exported with",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		record, err := records.Load(ctx, recordLocation)
		if err != nil {
			return err
		}

		p := pattern
		if p == "" {
			p = a.builder.Pattern(record.DocType)
		}

		toks := a.builder.Tokens(ctx, record)

		if explain {
			fmt.Printf("pattern: %q\n", p)
			for _, t := range toks.Tokens() {
				fmt.Printf("  {%s} = %q\n", t.Name, t.Value)
			}
			for _, name := range templater.Unknown(p, toks) {
				fmt.Printf("  {%s} is not a known token and is kept as written\n", name)
			}
		}

		name := a.builder.Format(p, toks)
		if name == "" {
			a.log.Debug().Str("doctype", record.DocType).Msg("no pattern configured, default naming applies")
		}

		fmt.Println(name)

		return nil
	},
}
