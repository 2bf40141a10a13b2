// Package readme renders a README from wizard answers and detected project signals.
package readme

import (
	"regexp"
	"strings"
	"time"

	"github.com/luuuc/readmegen/internal/detect"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DefaultHolder is the copyright holder used in the proprietary license notice.
const DefaultHolder = "Your Company Name"

// RepositoryPlaceholder stands in for the clone URL when none was detected.
const RepositoryPlaceholder = "<repository-url>"

type options struct {
	year   int
	holder string
}

// Option configures Render.
type Option func(*options)

// WithYear pins the year printed in the proprietary license notice.
func WithYear(year int) Option {
	return func(o *options) {
		if year > 0 {
			o.year = year
		}
	}
}

// WithHolder sets the copyright holder of the proprietary license notice.
func WithHolder(holder string) Option {
	return func(o *options) {
		if holder != "" {
			o.holder = holder
		}
	}
}

// doc is everything a section builder may read.
type doc struct {
	Answers
	flags
	sig    *detect.Signals
	year   int
	holder string
}

// section is one row of the gating table.
type section struct {
	name  string
	when  func(d *doc) bool
	build func(d *doc) string
}

func always(*doc) bool { return true }

// sections is evaluated top to bottom; the order is the document order.
var sections = []section{
	{"title", always, titleSection},
	{"badges", func(d *doc) bool { return d.professional || d.technical }, badgesSection},
	{"features", func(d *doc) bool { return !d.brief }, featuresSection},
	{"installation", always, installationSection},
	{"scripts", func(d *doc) bool {
		return d.sig.ProjectType == detect.JavaScript && d.sig.Scripts.Len() > 0
	}, scriptsSection},
	{"usage", always, usageSection},
	{"built-with", func(d *doc) bool {
		return d.comprehensive && (d.developers || d.technical)
	}, builtWithSection},
	{"dependencies", func(d *doc) bool {
		return !d.brief && d.developers && len(d.sig.Dependencies) > 0
	}, dependenciesSection},
	{"contributing", func(d *doc) bool { return d.standard || d.comprehensive }, contributingSection},
	{"license", always, licenseSection},
}

func newDoc(a Answers, s *detect.Signals, opts []Option) *doc {
	o := &options{
		year:   time.Now().Year(),
		holder: DefaultHolder,
	}
	for _, opt := range opts {
		opt(o)
	}

	if s == nil {
		s = detect.NewSignals()
	} else if s.Scripts == nil {
		c := *s
		c.Scripts = orderedmap.New[string, string]()
		s = &c
	}

	return &doc{
		Answers: a,
		flags:   classify(a),
		sig:     s,
		year:    o.year,
		holder:  o.holder,
	}
}

// Render builds the README text. It has no side effects and never fails:
// missing optional signals just leave their sections out. Output is
// byte-identical for identical inputs once the year is pinned with WithYear.
func Render(a Answers, s *detect.Signals, opts ...Option) string {
	d := newDoc(a, s, opts)

	var b strings.Builder
	for _, sec := range sections {
		if sec.when(d) {
			b.WriteString(sec.build(d))
		}
	}
	return b.String()
}

// Sections returns the names of the sections Render would emit, in order.
func Sections(a Answers, s *detect.Signals, opts ...Option) []string {
	d := newDoc(a, s, opts)

	var names []string
	for _, sec := range sections {
		if sec.when(d) {
			names = append(names, sec.name)
		}
	}
	return names
}

var slugRegexp = regexp.MustCompile(`[^a-z0-9-]`)

// Slugify lowercases name and replaces every character outside [a-z0-9-]
// with a hyphen. Runs are not collapsed and edges are not trimmed.
func Slugify(name string) string {
	return slugRegexp.ReplaceAllString(strings.ToLower(name), "-")
}
