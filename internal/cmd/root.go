package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/luuuc/readmegen/internal/logging"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

var (
	verbose bool
	logJSON bool
)

var rootCmd = &cobra.Command{
	Use:   "readmegen",
	Short: "Generate a README from your project's manifests",
	Long: `readmegen inspects the manifest files of a project, asks a few questions
about the audience, tone and level of detail you want, and writes a README
tailored to the answers.

Supported manifests: package.json, requirements.txt, Cargo.toml, pubspec.yaml.

Quick start:
  readmegen generate         Detect, ask, write README.md
  readmegen detect           Show what was detected
  readmegen init             Write a .readmegen.yaml with default answers`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, logJSON, os.Stderr)
	},
}

// Execute runs the root command and reports any error once.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logging.UserError("%v", err)
	}
	return err
}

var versionJSON bool

func init() {
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)
	rootCmd.SetVersionTemplate("readmegen {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Output version information as JSON")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if versionJSON {
			_ = json.NewEncoder(os.Stdout).Encode(map[string]string{
				"version": version,
				"commit":  commit,
			})
			return
		}
		fmt.Printf("readmegen %s (%s)\n", version, commit)
	},
}
