// name.go implements the package identifier grammar and the derivation
// of a conforming suggestion from an arbitrary directory name.
//
// The grammar follows the npm package name rules in their restricted
// form: an optional @scope/ prefix, lowercase letters, digits, and the
// characters - . _ ~, where neither segment may start with "." or "_".

package model

import (
	"fmt"
	"regexp"
	"strings"
)

// packageNameRegex validates package identifiers. Both the scope and the
// name segment are restricted to lowercase letters, digits, and - . _ ~,
// with "." and "_" disallowed as the leading character of either segment.
var packageNameRegex = regexp.MustCompile(`^(?:@[a-z0-9\-~][a-z0-9\-._~]*/)?[a-z0-9\-~][a-z0-9\-._~]*$`)

// whitespaceRun matches one or more consecutive whitespace characters.
var whitespaceRun = regexp.MustCompile(`\s+`)

// disallowedRun matches one or more consecutive characters outside the
// conservative derivation alphabet. Derivation deliberately excludes
// "." and "_" so the suggested name never needs leading-character fixups
// after the initial strip.
var disallowedRun = regexp.MustCompile(`[^a-z0-9\-~]+`)

// ValidPackageName reports whether name satisfies the package identifier
// grammar. A valid name is returned unchanged by the resolver, with no
// prompt shown.
func ValidPackageName(name string) bool {
	return packageNameRegex.MatchString(name)
}

// ValidatePackageName checks a candidate package identifier and returns
// a descriptive error when it violates the grammar. This is the
// validator wired into the interactive name prompt, so the message is
// written as inline prompt feedback.
func ValidatePackageName(name string) error {
	if name == "" {
		return fmt.Errorf("package name must not be empty")
	}
	if !ValidPackageName(name) {
		return fmt.Errorf("invalid package.json name")
	}
	return nil
}

// DerivePackageName converts an arbitrary directory name into a
// grammar-conforming suggestion:
//
//  1. Trim surrounding whitespace and lowercase.
//  2. Collapse internal whitespace runs to a single hyphen.
//  3. Strip a single leading "." or "_".
//  4. Collapse any run of remaining disallowed characters to a single hyphen.
//
// The result is presented as the default value of the name prompt; it is
// a suggestion, not a silent substitution, except in non-interactive
// runs where no prompt can be shown.
func DerivePackageName(candidate string) string {
	name := strings.ToLower(strings.TrimSpace(candidate))
	name = whitespaceRun.ReplaceAllString(name, "-")
	if len(name) > 0 && (name[0] == '.' || name[0] == '_') {
		name = name[1:]
	}
	return disallowedRun.ReplaceAllString(name, "-")
}
