package cmd

var (
	configPath string

	recordLocation  string
	pattern         string
	explain         bool
	outputDirectory string
	listenAddr      string
)

func initRootFlags() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"specifies the path to your config directory",
	)
}

func initRenderFlags() {
	renderCmd.Flags().StringVarP(
		&recordLocation,
		"record",
		"r",
		"",
		"specifies the record file or URL (yaml or json)",
	)
	renderCmd.Flags().StringVarP(
		&pattern,
		"pattern",
		"p",
		"",
		"specifies the naming pattern, overriding the configured one",
	)
	renderCmd.Flags().BoolVarP(
		&explain,
		"explain",
		"e",
		false,
		"print every token and its value",
	)

	_ = renderCmd.MarkFlagRequired("record")
}

func initExportFlags() {
	exportCmd.Flags().StringVarP(
		&recordLocation,
		"record",
		"r",
		"",
		"specifies the record file or URL (yaml or json)",
	)
	exportCmd.Flags().StringVarP(
		&outputDirectory,
		"outputDirectory",
		"d",
		"",
		"specifies the directory the pdf is written to. default: outputDirectory from config",
	)

	_ = exportCmd.MarkFlagRequired("record")
}

func initServeFlags() {
	serveCmd.Flags().StringVarP(
		&listenAddr,
		"listen",
		"l",
		"",
		"specifies the address to listen on. default: listenAddr from config",
	)
}
