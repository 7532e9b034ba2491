package version

// Version is set at build time with -ldflags "-X github.com/bnema/techsillies-cli/internal/version.Version=...".
var Version = "dev"
