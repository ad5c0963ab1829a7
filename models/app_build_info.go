package models

// AppBuildInfo describes the running binary: version, build date and commit.
// Values are injected at link time and default to "N/A" when absent.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
