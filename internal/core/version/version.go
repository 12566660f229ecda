// Package version reports build metadata for the API binary
package version

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// set with -ldflags "-X paysystem/internal/core/version.version=v1.2.0 -X ...commit=abcd -X ...date=2026-01-31"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build information
func Info() BuildInfo {
	return BuildInfo{
		Service: "paysystem-api",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}
