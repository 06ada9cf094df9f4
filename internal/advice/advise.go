// Package advice derives the post-scaffold instruction sequence from the
// identity of the invoking package manager.
//
// The package manager is inferred from the npm user-agent environment
// string (npm_config_user_agent), which package managers set to
// "name/version extra..." when they launch a child process. The tool
// only prints what would run — it never executes install commands.
package advice

import (
	"path/filepath"
	"strings"
)

// UserAgentEnv is the environment variable carrying the invoking package
// manager's identification string.
const UserAgentEnv = "npm_config_user_agent"

// DefaultManager is the canonical fallback when no user agent is present
// or the string cannot be parsed.
const DefaultManager = "npm"

// PackageManager identifies the package manager that launched the CLI.
type PackageManager struct {
	Name    string
	Version string
}

// ParseUserAgent extracts the package manager from a user-agent string
// such as "yarn/1.22.19 npm/? node/v18.0.0 darwin x64". Only the first
// token matters; it has the form "name/version". Returns false for an
// empty or unparsable string.
func ParseUserAgent(userAgent string) (PackageManager, bool) {
	if userAgent == "" {
		return PackageManager{}, false
	}

	token, _, _ := strings.Cut(userAgent, " ")
	name, version, found := strings.Cut(token, "/")
	if !found || name == "" {
		return PackageManager{}, false
	}

	return PackageManager{Name: name, Version: version}, true
}

// Advise produces the instruction lines printed after a successful
// materialization: a change-directory step when the project root differs
// from the working directory, then an install step and a run step
// spelled for the resolved package manager.
//
// yarn uses its ecosystem's bare spellings ("yarn" / "yarn dev"); every
// other manager shares the uniform "<pm> install" / "<pm> run dev" pair.
func Advise(projectRoot, workingDir, userAgent string) []string {
	manager := DefaultManager
	if pm, ok := ParseUserAgent(userAgent); ok {
		manager = pm.Name
	}

	var steps []string

	if projectRoot != workingDir {
		steps = append(steps, "cd "+cdTarget(projectRoot, workingDir))
	}

	switch manager {
	case "yarn":
		steps = append(steps, "yarn", "yarn dev")
	default:
		steps = append(steps, manager+" install", manager+" run dev")
	}

	return steps
}

// cdTarget renders the path argument of the change-directory step: the
// project root relative to the working directory, double-quoted when it
// contains whitespace so the printed command is copy-pasteable.
func cdTarget(projectRoot, workingDir string) string {
	rel, err := filepath.Rel(workingDir, projectRoot)
	if err != nil {
		// Roots on different volumes cannot be made relative; fall back
		// to the absolute path.
		rel = projectRoot
	}
	if strings.ContainsAny(rel, " \t") {
		return `"` + rel + `"`
	}
	return rel
}
