package detect

import (
	"regexp"
	"strings"

	"github.com/luuuc/readmegen/internal/logging"
	"github.com/tidwall/gjson"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// update is the partial result of a single probe. Nil pointers and nil
// collections leave the corresponding field untouched.
type update struct {
	projectType  ProjectType
	language     string
	name         *string
	description  *string
	framework    *string
	scripts      *orderedmap.OrderedMap[string, string]
	dependencies []string
}

func (u *update) apply(s *Signals) {
	s.ProjectType = u.projectType
	s.Language = u.language
	if u.name != nil {
		s.ProjectName = *u.name
	}
	if u.description != nil {
		s.Description = *u.description
	}
	if u.framework != nil {
		s.Framework = *u.framework
	}
	if u.scripts != nil {
		s.Scripts = u.scripts
	}
	if u.dependencies != nil {
		s.Dependencies = u.dependencies
	}
}

type probe struct {
	file string
	run  func(r FileReader) *update
}

// The order is historical, not a priority ranking. Keep it.
var probes = []probe{
	{"package.json", probePackageJSON},
	{"requirements.txt", probeRequirements},
	{"Cargo.toml", probeCargo},
	{"pubspec.yaml", probePubspec},
}

// frameworks is checked in order; the first declared dependency wins.
var frameworks = []struct {
	dep  string
	name string
}{
	{"react", FrameworkReact},
	{"vue", FrameworkVue},
	{"express", FrameworkExpress},
	{"next", FrameworkNext},
}

func probePackageJSON(r FileReader) *update {
	data, err := r.ReadFile("package.json")
	if err != nil {
		return nil
	}
	if !gjson.ValidBytes(data) {
		logging.Warn("skipping malformed manifest", "file", "package.json")
		return nil
	}
	pkg := gjson.ParseBytes(data)

	u := &update{
		projectType:  JavaScript,
		language:     "JavaScript/Node.js",
		scripts:      orderedmap.New[string, string](),
		dependencies: []string{},
	}

	if v := pkg.Get("name"); v.Exists() {
		name := v.String()
		u.name = &name
	}
	if v := pkg.Get("description"); v.Exists() {
		desc := v.String()
		u.description = &desc
	}

	if scripts := pkg.Get("scripts"); scripts.IsObject() {
		scripts.ForEach(func(key, value gjson.Result) bool {
			u.scripts.Set(key.String(), value.String())
			return true
		})
	}

	// Only runtime dependencies count; devDependencies are ignored.
	if deps := pkg.Get("dependencies"); deps.IsObject() {
		seen := make(map[string]bool)
		deps.ForEach(func(key, _ gjson.Result) bool {
			name := key.String()
			if !seen[name] {
				seen[name] = true
				u.dependencies = append(u.dependencies, name)
			}
			return true
		})
	}

	framework := ""
	for _, fw := range frameworks {
		if contains(u.dependencies, fw.dep) {
			framework = fw.name
			break
		}
	}
	u.framework = &framework

	return u
}

func probeRequirements(r FileReader) *update {
	if _, err := r.ReadFile("requirements.txt"); err != nil {
		return nil
	}
	return &update{projectType: Python, language: "Python"}
}

func probeCargo(r FileReader) *update {
	if _, err := r.ReadFile("Cargo.toml"); err != nil {
		return nil
	}
	return &update{projectType: Rust, language: "Rust"}
}

var (
	pubspecName        = regexp.MustCompile(`(?m)^name:\s*(.+)$`)
	pubspecDescription = regexp.MustCompile(`(?m)^description:\s*(.+)$`)
)

// probePubspec matches raw lines rather than parsing YAML.
func probePubspec(r FileReader) *update {
	data, err := r.ReadFile("pubspec.yaml")
	if err != nil {
		return nil
	}
	text := string(data)

	u := &update{projectType: Flutter, language: "Dart/Flutter"}
	if m := pubspecName.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(m[1])
		u.name = &name
	}
	if m := pubspecDescription.FindStringSubmatch(text); m != nil {
		desc := strings.TrimSpace(m[1])
		u.description = &desc
	}
	return u
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
