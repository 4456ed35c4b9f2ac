package version

import "fmt"

var (
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
)

func GetVersion() string {
	return fmt.Sprintf("minihttp %s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

func GetShortVersion() string {
	return Version
}

// ServerName is the value sent in the Server response header.
func ServerName() string {
	return "MiniHTTP/" + GetShortVersion()
}
