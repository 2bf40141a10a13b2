package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/luuuc/readmegen/internal/config"
	"github.com/luuuc/readmegen/internal/detect"
	"github.com/luuuc/readmegen/internal/fs"
	"github.com/luuuc/readmegen/internal/logging"
	"github.com/luuuc/readmegen/internal/readme"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server wraps the MCP server with the readme detection and rendering tools
type Server struct {
	mcp *server.MCPServer
}

// NewServer creates a new MCP server reporting the given version
func NewServer(version string) *Server {
	s := server.NewMCPServer(
		"readmegen",
		version,
		server.WithToolCapabilities(true),
	)

	srv := &Server{mcp: s}
	srv.registerTools()

	return srv
}

// ServeStdio starts the server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) registerTools() {
	detectTool := mcp.NewTool("detect_project",
		mcp.WithDescription("Inspect a project's manifest files and report its type, framework, name, scripts and dependencies"),
		mcp.WithString("path",
			mcp.Description("Project root directory (defaults to the current directory)"),
		),
	)
	s.mcp.AddTool(detectTool, s.handleDetectProject)

	generateTool := mcp.NewTool("generate_readme",
		mcp.WithDescription("Render a README for a project. Missing answers fall back to the detected manifest values and the project's .readmegen.yaml defaults"),
		mcp.WithString("path",
			mcp.Description("Project root directory (defaults to the current directory)"),
		),
		mcp.WithString("name",
			mcp.Description("Project name (defaults to the detected name)"),
		),
		mcp.WithString("description",
			mcp.Description("One-line project description (defaults to the detected description)"),
		),
		mcp.WithString("audience",
			mcp.Description("Who will use the project"),
			mcp.Enum(readme.Keys(readme.Audiences)...),
		),
		mcp.WithString("tone",
			mcp.Description("Tone of the README"),
			mcp.Enum(readme.Keys(readme.Tones)...),
		),
		mcp.WithString("detail",
			mcp.Description("How detailed the README should be"),
			mcp.Enum(readme.Keys(readme.Details)...),
		),
		mcp.WithNumber("year",
			mcp.Description("Year printed in the proprietary license notice (defaults to the current year)"),
		),
	)
	s.mcp.AddTool(generateTool, s.handleGenerateReadme)
}

func rootArg(request mcp.CallToolRequest) (string, error) {
	root := request.GetString("path", ".")
	if root == "" {
		root = "."
	}
	if !fs.DirExists(root) {
		return "", fmt.Errorf("directory '%s' not found", root)
	}
	return root, nil
}

func (s *Server) handleDetectProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := rootArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	sig := detect.Detect(root)
	data, err := sig.JSON()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode signals: %v", err)), nil
	}

	logging.Debug("mcp detect_project", "path", root, "type", sig.ProjectType)
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleGenerateReadme(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := rootArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cfg, err := config.Load(root)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	sig := detect.Detect(root)

	answers, err := answersFromRequest(request, sig, cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out := readme.Render(answers, sig,
		readme.WithYear(request.GetInt("year", 0)),
		readme.WithHolder(cfg.License.Holder),
	)

	logging.Debug("mcp generate_readme", "path", root, "sections", readme.Sections(answers, sig))
	return mcp.NewToolResultText(out), nil
}

// answersFromRequest fills the wizard answers from tool arguments, then the
// detected signals, then the config defaults.
func answersFromRequest(request mcp.CallToolRequest, sig *detect.Signals, cfg *config.Config) (readme.Answers, error) {
	a := readme.Answers{
		ProjectName: strings.TrimSpace(request.GetString("name", sig.ProjectName)),
		Description: strings.TrimSpace(request.GetString("description", sig.Description)),
	}
	if a.ProjectName == "" {
		return a, fmt.Errorf("missing required parameter: name (no project name detected)")
	}
	if a.Description == "" {
		return a, fmt.Errorf("missing required parameter: description (no description detected)")
	}

	choices := []struct {
		arg      string
		fallback string
		set      []readme.Choice
		answer   *string
	}{
		{"audience", cfg.Defaults.Audience, readme.Audiences, &a.Audience},
		{"tone", cfg.Defaults.Tone, readme.Tones, &a.Tone},
		{"detail", cfg.Defaults.Detail, readme.Details, &a.Detail},
	}
	for _, c := range choices {
		label, err := readme.Resolve(c.set, request.GetString(c.arg, c.fallback))
		if err != nil {
			return a, fmt.Errorf("invalid %s: %w", c.arg, err)
		}
		*c.answer = label
	}

	return a, nil
}
