package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/luuuc/readmegen/internal/detect"
	"github.com/luuuc/readmegen/internal/fs"
	"github.com/spf13/cobra"
)

var (
	detectDir  string
	detectJSON bool
)

func init() {
	rootCmd.AddCommand(detectCmd)
	detectCmd.Flags().StringVar(&detectDir, "dir", ".", "Project root to inspect")
	detectCmd.Flags().BoolVar(&detectJSON, "json", false, "Output as JSON")
}

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show what readmegen detects in a project",
	Long: `Reads package.json, requirements.txt, Cargo.toml and pubspec.yaml in the
project root, in that order, and prints the resulting project signals.
When several manifests exist, the last one read decides the project type.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDetect(os.Stdout, detectDir, detectJSON)
	},
}

func runDetect(w io.Writer, dir string, asJSON bool) error {
	if dir == "" {
		dir = "."
	}
	if !fs.DirExists(dir) {
		return fmt.Errorf("directory '%s' not found", dir)
	}

	s := detect.Detect(dir)

	if asJSON {
		data, err := s.JSON()
		if err != nil {
			return fmt.Errorf("failed to encode signals: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	// Human-readable output
	if s.ProjectType == detect.Unknown {
		fmt.Fprintln(w, "No supported manifest found (package.json, requirements.txt, Cargo.toml, pubspec.yaml)")
		return nil
	}

	fmt.Fprintln(w, "Detected project:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Type:        %s\n", s.ProjectType)
	fmt.Fprintf(w, "  Language:    %s\n", s.Language)
	if s.Framework != "" {
		fmt.Fprintf(w, "  Framework:   %s\n", s.Framework)
	}
	if s.ProjectName != "" {
		fmt.Fprintf(w, "  Name:        %s\n", s.ProjectName)
	}
	if s.Description != "" {
		fmt.Fprintf(w, "  Description: %s\n", s.Description)
	}
	if s.RepositoryURL != "" {
		fmt.Fprintf(w, "  Repository:  %s\n", s.RepositoryURL)
	}
	fmt.Fprintln(w)

	if s.Scripts.Len() > 0 {
		fmt.Fprintln(w, "Scripts:")
		for pair := s.Scripts.Oldest(); pair != nil; pair = pair.Next() {
			fmt.Fprintf(w, "  %s: %s\n", pair.Key, pair.Value)
		}
		fmt.Fprintln(w)
	}

	if len(s.Dependencies) > 0 {
		fmt.Fprintln(w, "Dependencies:")
		for _, dep := range s.Dependencies {
			fmt.Fprintf(w, "  %s\n", dep)
		}
		fmt.Fprintln(w)
	}

	return nil
}
