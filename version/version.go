package version

import "fmt"

// Set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info describes the running build.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Get returns the build information.
func Get() Info {
	return Info{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
	}
}

func (i Info) String() string {
	return fmt.Sprintf("dpxver %s (commit %s, built %s)", i.Version, i.Commit, i.Date)
}
