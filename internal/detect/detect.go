package detect

import (
	"encoding/json"

	"github.com/luuuc/readmegen/internal/fs"
	"github.com/luuuc/readmegen/internal/logging"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ProjectType is the kind of project inferred from the workspace manifests.
type ProjectType string

const (
	Unknown    ProjectType = "unknown"
	JavaScript ProjectType = "javascript"
	Python     ProjectType = "python"
	Rust       ProjectType = "rust"
	Flutter    ProjectType = "flutter"
)

// Framework names reported for JavaScript projects.
const (
	FrameworkReact   = "React"
	FrameworkVue     = "Vue.js"
	FrameworkExpress = "Express.js"
	FrameworkNext    = "Next.js"
)

// Signals holds what was learned about a workspace
type Signals struct {
	ProjectType   ProjectType                            `json:"projectType"`
	Language      string                                 `json:"language,omitempty"`
	Framework     string                                 `json:"framework,omitempty"`
	ProjectName   string                                 `json:"projectName,omitempty"`
	Description   string                                 `json:"description,omitempty"`
	Dependencies  []string                               `json:"dependencies"`
	Scripts       *orderedmap.OrderedMap[string, string] `json:"scripts"`
	RepositoryURL string                                 `json:"repositoryUrl,omitempty"`
}

// NewSignals returns an empty bundle for an unknown project.
func NewSignals() *Signals {
	return &Signals{
		ProjectType:  Unknown,
		Dependencies: []string{},
		Scripts:      orderedmap.New[string, string](),
	}
}

// JSON returns the signals as indented JSON
func (s *Signals) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Summary returns a human-readable summary, e.g. "JavaScript/Node.js with React".
// Returns an empty string when no manifest was recognised.
func (s *Signals) Summary() string {
	if s.Language == "" {
		return ""
	}
	if s.Framework != "" {
		return s.Language + " with " + s.Framework
	}
	return s.Language
}

// FileReader reads a file relative to the workspace root.
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}

type options struct {
	reader     FileReader
	repository bool
}

// Option configures Detect.
type Option func(*options)

// WithReader replaces the on-disk reader used by the manifest probes.
func WithReader(r FileReader) Option {
	return func(o *options) {
		o.reader = r
	}
}

// WithRepository toggles the git remote lookup.
func WithRepository(enabled bool) Option {
	return func(o *options) {
		o.repository = enabled
	}
}

// Detect inspects the workspace at root and returns its signals.
//
// Detect never fails: a manifest that is missing or cannot be parsed is
// treated as absent. Probes run in a fixed order and each successful probe
// overwrites the project type set by earlier ones, so the last recognised
// manifest wins.
func Detect(root string, opts ...Option) *Signals {
	s := NewSignals()
	if root == "" {
		return s
	}

	o := &options{
		reader:     fs.Dir(root),
		repository: true,
	}
	for _, opt := range opts {
		opt(o)
	}

	for _, p := range probes {
		u := p.run(o.reader)
		if u == nil {
			continue
		}
		logging.Debug("manifest detected", "file", p.file, "type", u.projectType)
		u.apply(s)
	}

	if o.repository {
		s.RepositoryURL = repositoryURL(root)
	}

	return s
}
