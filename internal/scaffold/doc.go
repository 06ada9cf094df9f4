// Package scaffold materializes a template tree into the target directory.
//
// The template tree is consumed through the io/fs abstraction, so the
// same materializer serves embedded templates (embed.FS) and external
// template directories (os.DirFS) alike. The walk is depth-first and
// strictly sequential; fs.WalkDir visits a directory before its
// contents, which guarantees directory creation precedes the writes of
// the files inside it.
//
// Every entry is copied byte-for-byte with two exceptions:
//   - the package descriptor (package.json) at the template root is
//     parsed, has its name field replaced, and is re-serialized
//   - a small set of placeholder file names is renamed on the way out
//     (_gitignore → .gitignore), since packaging tools mangle dotfiles
//
// There is no merging, diffing, or conflict detection: a same-named
// pre-existing file in the target is overwritten in place. A copy that
// fails partway leaves the target in its partial state — partial
// materialization is an accepted gap, not a transactional boundary.
package scaffold
