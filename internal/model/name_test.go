package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValidPackageName covers the package identifier grammar: lowercase
// letters, digits, and - . _ ~, with an optional @scope/ prefix, and
// "." / "_" disallowed as leading characters of either segment.
func TestValidPackageName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		// Plain names.
		{"my-app", true},
		{"myapp", true},
		{"my.app", true},
		{"my_app", true},
		{"app2", true},
		{"~app", true},
		{"-leading-hyphen", true},

		// Scoped names.
		{"@scope/my-app", true},
		{"@s2/pkg.name", true},

		// Leading "." or "_" is rejected for both segments.
		{".hidden", false},
		{"_private", false},
		{"@.scope/app", false},
		{"@scope/.app", false},

		// Case and character set violations.
		{"My-App", false},
		{"my app", false},
		{"my-app!", false},
		{"", false},

		// Malformed scopes.
		{"@/app", false},
		{"@scope/", false},
		{"@scope", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidPackageName(tt.name),
				"ValidPackageName(%q)", tt.name)
		})
	}
}

// TestDerivePackageName verifies the suggestion derivation: trim,
// lowercase, whitespace runs to a single hyphen, strip one leading
// "." or "_", collapse disallowed runs to a single hyphen.
func TestDerivePackageName(t *testing.T) {
	tests := []struct {
		candidate string
		want      string
	}{
		{"My App!", "my-app-"},
		{"  spaced out  ", "spaced-out"},
		{"already-valid", "already-valid"},
		{".hidden", "hidden"},
		{"_private", "private"},
		{"Weird***Chars", "weird-chars"},
		{"tabs\tand\nnewlines", "tabs-and-newlines"},
		{"UPPER", "upper"},
	}

	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			assert.Equal(t, tt.want, DerivePackageName(tt.candidate))
		})
	}
}

// TestDerivePackageName_ProducesPromptDefaults verifies the derived
// suggestion is what the name prompt presents: it need not itself be
// grammar-valid in degenerate cases, but for typical directory names it
// should validate cleanly.
func TestDerivePackageName_ProducesPromptDefaults(t *testing.T) {
	for _, candidate := range []string{"My Project", "hello_world", "Foo.Bar"} {
		derived := DerivePackageName(candidate)
		assert.True(t, ValidPackageName(derived),
			"derived name %q from %q should satisfy the grammar", derived, candidate)
	}
}

func TestValidatePackageName(t *testing.T) {
	assert.NoError(t, ValidatePackageName("my-app"))
	assert.Error(t, ValidatePackageName(""))
	assert.Error(t, ValidatePackageName("My App"))
}
