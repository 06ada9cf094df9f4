package advice

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserAgent(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		wantName  string
		wantOK    bool
	}{
		{"yarn classic", "yarn/1.22.19 npm/? node/v18.0.0 darwin x64", "yarn", true},
		{"pnpm", "pnpm/8.6.1 npm/? node/v18.16.0 linux x64", "pnpm", true},
		{"npm", "npm/9.5.1 node/v18.16.0 linux x64 workspaces/false", "npm", true},
		{"bun", "bun/1.0.0 npm/? node/v18.0.0", "bun", true},
		{"single token", "yarn/1.22.19", "yarn", true},
		{"empty", "", "", false},
		{"no slash", "not-a-user-agent", "", false},
		{"leading slash", "/1.0.0", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm, ok := ParseUserAgent(tt.userAgent)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantName, pm.Name)
			}
		})
	}
}

func TestParseUserAgent_Version(t *testing.T) {
	pm, ok := ParseUserAgent("pnpm/8.6.1 npm/? node/v18.16.0")
	require.True(t, ok)
	assert.Equal(t, "8.6.1", pm.Version)
}

// TestAdvise_YarnBareInstall verifies yarn's alternate spelling: the
// install step is bare "yarn" rather than "yarn install".
func TestAdvise_YarnBareInstall(t *testing.T) {
	steps := Advise("/work/my-app", "/work", "yarn/1.22.19 node/v18")
	assert.Equal(t, []string{"cd my-app", "yarn", "yarn dev"}, steps)
}

func TestAdvise_UniformSpelling(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		manager   string
	}{
		{"pnpm", "pnpm/8.6.1 npm/? node/v18.16.0", "pnpm"},
		{"npm explicit", "npm/9.5.1 node/v18.16.0", "npm"},
		{"absent agent falls back to npm", "", "npm"},
		{"unparsable agent falls back to npm", "garbage", "npm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := Advise("/work/my-app", "/work", tt.userAgent)
			assert.Equal(t, []string{
				"cd my-app",
				tt.manager + " install",
				tt.manager + " run dev",
			}, steps)
		})
	}
}

// TestAdvise_NoChangeDirectoryWhenInPlace verifies that scaffolding into
// the working directory itself omits the cd step entirely.
func TestAdvise_NoChangeDirectoryWhenInPlace(t *testing.T) {
	steps := Advise("/work", "/work", "")
	assert.Equal(t, []string{"npm install", "npm run dev"}, steps)
}

// TestAdvise_QuotesWhitespacePaths verifies that a relative path
// containing whitespace is double-quoted so the printed command stays
// copy-pasteable.
func TestAdvise_QuotesWhitespacePaths(t *testing.T) {
	root := filepath.Join("/work", "my app")
	steps := Advise(root, "/work", "")
	assert.Equal(t, `cd "my app"`, steps[0])
}

func TestAdvise_NestedRelativePath(t *testing.T) {
	root := filepath.Join("/work", "projects", "my-app")
	steps := Advise(root, "/work", "")
	assert.Equal(t, "cd "+filepath.Join("projects", "my-app"), steps[0])
}
