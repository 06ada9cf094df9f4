// rewrite.go handles the single transformed file of a materialization:
// the package descriptor. The descriptor is parsed into a generic map so
// every field the template author wrote survives the round trip — the
// only mutation is the name field.

package scaffold

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
)

// DescriptorName is the package descriptor file at the template root
// whose name field is rewritten during materialization.
const DescriptorName = "package.json"

// RewriteDescriptor takes the raw bytes of a package descriptor, replaces
// its name field with packageName, and returns the re-serialized bytes.
//
// The function works in three phases:
//  1. Strip JSONC comments and trailing commas, then parse into a
//     generic map. Template descriptors occasionally carry comments, and
//     a map (rather than a typed struct) preserves every unknown field.
//  2. Overwrite the name field with the resolved package identifier.
//  3. Re-serialize with two-space indentation and a trailing newline.
func RewriteDescriptor(raw []byte, packageName string) ([]byte, error) {
	cleanJSON := jsonc.ToJSON(raw)

	var descriptor map[string]interface{}
	if err := json.Unmarshal(cleanJSON, &descriptor); err != nil {
		return nil, fmt.Errorf("failed to parse %s for rewriting: %w", DescriptorName, err)
	}

	descriptor["name"] = packageName

	result, err := json.MarshalIndent(descriptor, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize rewritten %s: %w", DescriptorName, err)
	}

	// Trailing newline so the generated file satisfies POSIX text tools
	// and the linters a fresh project is likely to run.
	result = append(result, '\n')

	return result, nil
}
