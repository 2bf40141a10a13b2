package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/luuuc/readmegen/internal/config"
	"github.com/luuuc/readmegen/internal/fs"
	"github.com/spf13/cobra"
)

var (
	initDir   string
	initForce bool
)

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initDir, "dir", ".", "Project root to write the config into")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing .readmegen.yaml")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .readmegen.yaml",
	Long: `Creates .readmegen.yaml in the project root.

The file sets the output path, the prompt interface, the license holder used
for proprietary projects and the pre-selected wizard answers:

  version: 1
  output: README.md
  interface: auto   # auto | tui | plain
  license:
    holder: Your Company Name
  defaults:
    audience: developers
    tone: friendly
    detail: standard`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(os.Stdout, initDir, initForce)
	},
}

func runInit(w io.Writer, dir string, force bool) error {
	if dir == "" {
		dir = "."
	}
	if !fs.DirExists(dir) {
		return fmt.Errorf("directory '%s' not found", dir)
	}

	if config.Exists(dir) && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", config.ConfigFile)
	}

	if err := config.Default().Save(dir); err != nil {
		return err
	}

	fmt.Fprintf(w, "Created %s\n", config.Path(dir))
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "  Edit the defaults to match your project")
	fmt.Fprintln(w, "  readmegen generate     Write README.md")

	return nil
}
