package buildinfo

// set at build time with -ldflags "-X pdfnamer/internal/buildinfo.Version=..."
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)
