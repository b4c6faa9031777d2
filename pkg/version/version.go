// Package version stamps builds with the git revision they were cut from.
// An -ldflags override wins, then VCS metadata from the build info, then
// "dev" for plain go test runs.
package version

import "runtime/debug"

// AppName prefixes version strings in logs and user agents.
const AppName = "windlass"

// gitCommitOverride is injected with -ldflags for container builds that
// compile outside a git checkout.
var gitCommitOverride string

// GitCommit is the short (8 char) revision, or "dev" when unknown.
var GitCommit = resolveCommit()

func resolveCommit() string {
	if gitCommitOverride != "" {
		return short(gitCommitOverride)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return short(s.Value)
			}
		}
	}
	return "dev"
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "windlass/<commit>".
func Full() string {
	return AppName + "/" + GitCommit
}
