// Package version derives the build identity reported in health responses
// and user-agent strings. An -ldflags override wins over embedded VCS info;
// builds without either report "dev".
package version

import "runtime/debug"

// AppName is the application name used in version strings.
const AppName = "strand"

// gitCommitOverride is set via -ldflags for container builds where the .git
// directory is not part of the build context.
var gitCommitOverride string

// GitCommit is the short commit hash of the running build, or "dev" when no
// VCS metadata is available (go test, builds outside a checkout).
var GitCommit = resolveCommit()

func resolveCommit() string {
	if gitCommitOverride != "" {
		return shorten(gitCommitOverride)
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	revision, modified := "", false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if revision == "" {
		return "dev"
	}
	if modified {
		return shorten(revision) + "-dirty"
	}
	return shorten(revision)
}

func shorten(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "strand/<commit>" for user-agent strings and startup logs.
func Full() string {
	return AppName + "/" + GitCommit
}
