// Package buildinfo holds version information injected at build time via ldflags:
//
//	go build -ldflags "-X github.com/eyecare-io/eyecare/internal/buildinfo.Version=v1.2.0"
package buildinfo

var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// Short returns the version with an abbreviated commit, e.g. "v1.2.0 (3f2a9c1)".
func Short() string {
	commit := CommitHash
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return Version + " (" + commit + ")"
}
