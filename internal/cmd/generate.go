package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/luuuc/readmegen/internal/config"
	"github.com/luuuc/readmegen/internal/detect"
	"github.com/luuuc/readmegen/internal/fs"
	"github.com/luuuc/readmegen/internal/logging"
	"github.com/luuuc/readmegen/internal/readme"
	"github.com/luuuc/readmegen/internal/wizard"
	"github.com/spf13/cobra"
)

// generateOptions carries the flags and streams of one generate run.
type generateOptions struct {
	dir    string
	output string
	yes    bool
	plain  bool
	year   int

	name        string
	description string
	audience    string
	tone        string
	detail      string

	in          io.Reader
	stdout      io.Writer
	prompts     io.Writer
	interactive bool
}

var genOpts generateOptions

func init() {
	rootCmd.AddCommand(generateCmd)

	f := generateCmd.Flags()
	f.StringVar(&genOpts.dir, "dir", ".", "Project root to inspect")
	f.StringVarP(&genOpts.output, "output", "o", "", "Output file, or - for stdout (default from config, README.md)")
	f.BoolVarP(&genOpts.yes, "yes", "y", false, "Overwrite an existing output file without asking")
	f.BoolVar(&genOpts.plain, "plain", false, "Use plain line prompts instead of the interactive UI")
	f.IntVar(&genOpts.year, "year", 0, "Year printed in the proprietary license notice (default current year)")
	f.StringVar(&genOpts.name, "name", "", "Project name (skips the question)")
	f.StringVar(&genOpts.description, "description", "", "Project description (skips the question)")
	f.StringVar(&genOpts.audience, "audience", "", "Audience: developers, end-users, enterprise, open-source")
	f.StringVar(&genOpts.tone, "tone", "", "Tone: professional, friendly, technical, creative")
	f.StringVar(&genOpts.detail, "detail", "", "Detail: brief, standard, comprehensive")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Detect the project and write a README",
	Long: `Inspects the project manifests, asks five questions and writes a README.

Questions answered by flags are skipped. Choice flags accept the short key
or the full option label.

Examples:
  readmegen generate
  readmegen generate --dir ./app -o -
  readmegen generate --audience open-source --tone technical --detail comprehensive`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := genOpts
		opts.in = os.Stdin
		opts.stdout = os.Stdout
		opts.prompts = os.Stderr
		opts.interactive = isInteractive()

		if err := runGenerate(opts); err != nil {
			return fmt.Errorf("failed to generate README: %w", err)
		}
		return nil
	},
}

// presetAnswers resolves the answers given on the command line.
func presetAnswers(opts generateOptions) (readme.Answers, error) {
	a := readme.Answers{
		ProjectName: opts.name,
		Description: opts.description,
	}

	choices := []struct {
		flag   string
		value  string
		set    []readme.Choice
		answer *string
	}{
		{"audience", opts.audience, readme.Audiences, &a.Audience},
		{"tone", opts.tone, readme.Tones, &a.Tone},
		{"detail", opts.detail, readme.Details, &a.Detail},
	}
	for _, c := range choices {
		if c.value == "" {
			continue
		}
		label, err := readme.Resolve(c.set, c.value)
		if err != nil {
			return a, fmt.Errorf("invalid --%s: %w", c.flag, err)
		}
		*c.answer = label
	}

	return a, nil
}

// outputPath resolves where the README goes. "-" means stdout.
func outputPath(root, flag string, cfg *config.Config) string {
	out := flag
	if out == "" {
		out = cfg.Output
	}
	if out == "-" || filepath.IsAbs(out) {
		return out
	}
	return filepath.Join(root, out)
}

// newPrompter picks line prompts or the Bubble Tea UI.
func newPrompter(opts generateOptions, cfg *config.Config, reader *bufio.Reader) wizard.Prompter {
	useTUI := opts.interactive && !opts.plain
	switch cfg.Interface {
	case config.InterfacePlain:
		useTUI = false
	case config.InterfaceTUI:
		useTUI = opts.interactive
	}

	if useTUI {
		logging.Debug("using interactive prompts")
		return wizard.NewTUIPrompter(nil, opts.prompts)
	}
	logging.Debug("using line prompts")
	return wizard.NewLinePrompter(reader, opts.prompts)
}

func runGenerate(opts generateOptions) error {
	root := opts.dir
	if root == "" {
		root = "."
	}
	if !fs.DirExists(root) {
		return fmt.Errorf("directory '%s' not found", root)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	preset, err := presetAnswers(opts)
	if err != nil {
		return err
	}

	logging.UserInfo("🔍 Analyzing your project...")
	sig := detect.Detect(root)
	logging.Debug("signals detected", "type", sig.ProjectType, "framework", sig.Framework, "dependencies", len(sig.Dependencies))
	if sig.ProjectType == detect.Unknown {
		logging.UserWarning("No supported manifest found, using generic sections")
	}

	reader := bufio.NewReader(opts.in)

	output := outputPath(root, opts.output, cfg)
	if output != "-" && fs.FileExists(output) && !opts.yes {
		if !Confirm(reader, opts.prompts, fmt.Sprintf("%s already exists. Overwrite?", output)) {
			logging.UserInfo("Cancelled: %s left unchanged", output)
			return nil
		}
	}

	audience, tone, detail := cfg.DefaultIndices()
	w := &wizard.Wizard{
		Prompter: newPrompter(opts, cfg, reader),
		Defaults: wizard.Defaults{Audience: audience, Tone: tone, Detail: detail},
		Notify: func(format string, args ...any) {
			logging.UserInfo("📱 "+format, args...)
		},
	}

	answers, err := w.Run(sig, preset)
	if errors.Is(err, wizard.ErrCancelled) {
		logging.Debug("wizard cancelled")
		return nil
	}
	if err != nil {
		return err
	}

	content := readme.Render(answers, sig,
		readme.WithYear(opts.year),
		readme.WithHolder(cfg.License.Holder),
	)

	if output == "-" {
		if _, err := io.WriteString(opts.stdout, content); err != nil {
			return fmt.Errorf("failed to write README: %w", err)
		}
	} else {
		if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", filepath.Dir(output), err)
		}
		if err := os.WriteFile(output, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write README: %w", err)
		}
		logging.Debug("README written", "path", output, "sections", readme.Sections(answers, sig))
	}

	logging.UserSuccess("✨ Smart README generated for %s!", answers.ProjectName)
	return nil
}
