package target

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmr-tortoise/sprout/internal/model"
)

// Chooser is the interactive suspension point invoked when the target
// directory conflicts and overwriting was not forced. It blocks until
// the user picks a Choice or cancels, in which case it returns an error
// satisfying errors.Is(err, model.ErrCancelled).
type Chooser func() (model.Choice, error)

// Reconcile decides how to handle the classified target directory state.
//
// Decision table:
//   - No conflict (absent / empty / ignorable) → OutcomeProceed, no prompt.
//   - Conflict with force=true → Clear the directory, then OutcomeProceed.
//   - Conflict with force=false → invoke choose:
//     ChoiceCancel (or a cancelled prompt) → OutcomeAborted with
//     model.ErrCancelled; ChoiceClear → Clear then OutcomeProceed;
//     ChoiceIgnore → OutcomeProceed without clearing, letting the
//     materializer overwrite same-named files in place.
//
// An aborted outcome terminates the whole run; no side effects are
// attempted after it. Side effects already performed (a completed clear)
// are not rolled back.
func Reconcile(path string, state model.DirectoryState, force bool, choose Chooser) (model.Outcome, error) {
	if !state.HasConflict() {
		return model.OutcomeProceed, nil
	}

	if force {
		if err := Clear(path); err != nil {
			return model.OutcomeAborted, err
		}
		return model.OutcomeProceed, nil
	}

	choice, err := choose()
	if err != nil {
		return model.OutcomeAborted, err
	}

	switch choice {
	case model.ChoiceClear:
		if err := Clear(path); err != nil {
			return model.OutcomeAborted, err
		}
		return model.OutcomeProceed, nil
	case model.ChoiceIgnore:
		return model.OutcomeProceed, nil
	default:
		// ChoiceCancel and any unexpected value abort the run.
		return model.OutcomeAborted, model.ErrCancelled
	}
}

// Clear removes every entry of the directory at path except the
// version-control metadata directory, recursively and with force
// semantics (os.RemoveAll). Clearing is best-effort per entry: the first
// failed deletion stops the loop and surfaces as an error, with no
// rollback of entries already removed.
func Clear(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("failed to list target directory %s for clearing: %w", path, err)
	}

	for _, entry := range entries {
		if entry.Name() == vcsMetadataDir {
			continue
		}
		entryPath := filepath.Join(path, entry.Name())
		if err := os.RemoveAll(entryPath); err != nil {
			return fmt.Errorf("failed to remove %s: %w", entryPath, err)
		}
	}

	return nil
}
