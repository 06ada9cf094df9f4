// scaffold.go is the orchestration of the scaffolding pipeline:
//
//	Normalize → Classify → Reconcile → ResolveName → Materialize → Advise
//
// Each stage is blocking and strictly sequential; any abort (a cancelled
// prompt, an explicit Cancel choice, a filesystem failure) short-circuits
// the remaining stages. Prompts are cooperative suspension points gated
// on params.Interactive, with documented non-interactive fallbacks.

package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmr-tortoise/sprout/internal/advice"
	"github.com/mmr-tortoise/sprout/internal/model"
	"github.com/mmr-tortoise/sprout/internal/prompt"
	"github.com/mmr-tortoise/sprout/internal/scaffold"
	"github.com/mmr-tortoise/sprout/internal/target"
	"github.com/mmr-tortoise/sprout/templates"
)

// defaultTargetDir is the project name offered when the user supplies no
// directory argument.
const defaultTargetDir = "my-project"

// stepStyle renders the next-step command lines.
var stepStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

// params carries one run's configuration. The values are resolved once
// by the command layer (flags, environment, working directory, TTY
// detection) so the pipeline itself is deterministic and testable.
type params struct {
	// TargetArg is the raw positional argument, "" when absent.
	TargetArg string

	// Overwrite forces conflict clearing without prompting.
	Overwrite bool

	// Template names the template to use; "" means prompt (or default).
	Template string

	// TemplateDir points at an external template root; "" means the
	// embedded registry.
	TemplateDir string

	// Interactive reports whether prompts may be shown.
	Interactive bool

	// WorkingDir is the process working directory, read once at startup.
	WorkingDir string

	// UserAgent is the invoking package manager's identification string.
	UserAgent string

	// Out receives all user-facing output.
	Out io.Writer
}

// run executes the full scaffolding pipeline.
func run(p params) error {
	// Stage 1: resolve the target directory from argument or prompt.
	targetDir := target.Normalize(p.TargetArg)
	if targetDir == "" {
		if p.Interactive {
			raw, err := prompt.Input("Project name:", defaultTargetDir, nil)
			if err != nil {
				return err
			}
			targetDir = target.Normalize(raw)
		}
		if targetDir == "" {
			targetDir = defaultTargetDir
		}
	}

	root := targetDir
	if !filepath.IsAbs(root) {
		root = filepath.Join(p.WorkingDir, root)
	}
	root = filepath.Clean(root)
	logger.Debug("resolved target", "dir", targetDir, "root", root)

	// Stage 2: classify the directory's current state.
	state, err := target.Classify(root)
	if err != nil {
		return err
	}
	logger.Debug("classified target", "state", state)

	// Stage 3: reconcile. A cancelled chooser aborts the whole run here.
	if _, err := target.Reconcile(root, state, p.Overwrite, p.conflictChooser(targetDir)); err != nil {
		return err
	}

	// Stage 4: validate or derive the package identifier from the
	// directory name. A valid name passes through without a prompt.
	pkgName := filepath.Base(root)
	if !model.ValidPackageName(pkgName) {
		suggestion := model.DerivePackageName(pkgName)
		if p.Interactive {
			pkgName, err = prompt.Input("Package name:", suggestion, model.ValidatePackageName)
			if err != nil {
				return err
			}
		} else {
			pkgName = suggestion
		}
	}
	logger.Debug("resolved package name", "name", pkgName)

	// Stage 5: pick the template and materialize it.
	registry, err := loadRegistry(p.TemplateDir)
	if err != nil {
		return err
	}
	tmpl, err := pickTemplate(registry, p.Template, p.Interactive)
	if err != nil {
		return err
	}
	logger.Debug("selected template", "template", tmpl.Name)

	fmt.Fprintf(p.Out, "\nScaffolding project in %s...\n", root)
	if err := scaffold.Materialize(tmpl.Tree(), scaffold.Options{
		TargetDir:   root,
		PackageName: pkgName,
	}); err != nil {
		return err
	}

	// Stage 6: derive and print the next steps.
	printNextSteps(p.Out, advice.Advise(root, p.WorkingDir, p.UserAgent))
	return nil
}

// conflictChooser returns the interactive suspension point the
// reconciliation policy invokes for a conflicting directory. In
// non-interactive runs no prompt can be shown, so the chooser fails with
// an error naming the --overwrite escape hatch.
func (p params) conflictChooser(displayDir string) target.Chooser {
	return func() (model.Choice, error) {
		if !p.Interactive {
			return "", model.NewCLIError(model.ExitGeneralError,
				fmt.Sprintf("target directory %q is not empty (re-run with --overwrite to clear it)", displayDir))
		}

		label := fmt.Sprintf("Target directory %q", displayDir)
		if displayDir == "." {
			label = "Current directory"
		}
		return prompt.ConflictChoice(label + " is not empty. Please choose how to proceed:")
	}
}

// loadRegistry loads the embedded template registry, or an external one
// when --template-dir was given.
func loadRegistry(templateDir string) (*templates.Registry, error) {
	if templateDir != "" {
		return templates.LoadDir(templateDir)
	}
	return templates.Load()
}

// pickTemplate resolves the template for this run: an explicit flag
// value must exist in the registry; otherwise an interactive run shows
// the selection prompt and a non-interactive run takes the registry
// default.
func pickTemplate(registry *templates.Registry, name string, interactive bool) (templates.Template, error) {
	if name != "" {
		tmpl, ok := registry.Get(name)
		if !ok {
			return templates.Template{}, model.NewCLIError(model.ExitTemplateNotFound,
				fmt.Sprintf("unknown template %q (available: %s)", name, strings.Join(registry.Names(), ", ")))
		}
		return tmpl, nil
	}

	if !interactive {
		return registry.Default(), nil
	}

	options := make([]huh.Option[string], 0, len(registry.All()))
	for _, tmpl := range registry.All() {
		options = append(options, huh.NewOption(tmpl.Label(), tmpl.Name))
	}

	selected, err := prompt.SelectString("Select a template:", options)
	if err != nil {
		return templates.Template{}, err
	}

	tmpl, ok := registry.Get(selected)
	if !ok {
		// The prompt only offers registry names; reaching this means the
		// registry changed mid-run, which the single-shot model excludes.
		return templates.Template{}, model.NewCLIError(model.ExitTemplateNotFound,
			fmt.Sprintf("template %q disappeared from the registry", selected))
	}
	return tmpl, nil
}

// printNextSteps writes the completion advice: the commands the user
// runs to install dependencies and start the dev server. sprout prints
// them, it never executes them.
func printNextSteps(out io.Writer, steps []string) {
	fmt.Fprintln(out, "\nDone. Now run:")
	fmt.Fprintln(out)
	for _, step := range steps {
		fmt.Fprintf(out, "  %s\n", stepStyle.Render(step))
	}
	fmt.Fprintln(out)
}
