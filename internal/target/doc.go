// Package target resolves and reconciles the scaffold target directory.
//
// It implements the first half of the scaffolding pipeline:
//   - Normalize: canonicalize the raw user-supplied directory string
//   - Classify: probe the directory and classify its on-disk state
//   - Reconcile: decide whether to proceed, clear and proceed, or abort
//
// All probes operate on the immediate directory listing only — the
// classifier never recurses into subdirectories. Clearing removes every
// entry except the version-control metadata directory (.git) and is
// best-effort per entry: a failed deletion surfaces as an error with no
// rollback of entries already removed.
package target
