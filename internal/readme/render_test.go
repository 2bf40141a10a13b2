package readme

import (
	"reflect"
	"strings"
	"testing"

	"github.com/luuuc/readmegen/internal/detect"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

func signals(pt detect.ProjectType, framework string, deps []string, scripts ...string) *detect.Signals {
	s := detect.NewSignals()
	s.ProjectType = pt
	s.Framework = framework
	if deps != nil {
		s.Dependencies = deps
	}
	for i := 0; i+1 < len(scripts); i += 2 {
		s.Scripts.Set(scripts[i], scripts[i+1])
	}
	return s
}

func answers(audience, tone, detail string) Answers {
	return Answers{
		ProjectName: "demo",
		Description: "desc",
		Audience:    audience,
		Tone:        tone,
		Detail:      detail,
	}
}

func TestRender_DemoScenario(t *testing.T) {
	a := answers(AudienceDevelopers, ToneFriendly, DetailStandard)
	s := signals(detect.JavaScript, detect.FrameworkExpress, []string{"express"}, "start", "node index.js")

	want := "# demo\n\ndesc\n\n" +
		"## ✨ Features\n\n" +
		"- 🚀 Fast and reliable performance\n" +
		"- 📦 Easy installation and setup\n" +
		"- 🔧 Highly configurable and extensible\n" +
		"- 🛡️ Secure and well-tested\n\n" +
		"## 🚀 Installation\n\n" +
		"```bash\n# Clone the repository\ngit clone <repository-url>\ncd demo\n\n# Install dependencies\nnpm install\n\n# Start development server\nnpm start\n```\n\n" +
		"## 📜 Available Scripts\n\n" +
		"- `npm run start` - node index.js\n\n" +
		"## 📖 Usage\n\n" +
		"Detailed usage instructions and examples go here.\n\nInclude common use cases, configuration options, and troubleshooting tips.\n\n" +
		"## 📦 Dependencies\n\n" +
		"Key dependencies:\n" +
		"- `express`\n\n" +
		"## 🤝 Contributing\n\n" +
		"Contributions are welcome! Feel free to:\n\n" +
		"- 🐛 Report bugs\n" +
		"- 💡 Suggest features\n" +
		"- 🔧 Submit pull requests\n" +
		"- 📖 Improve documentation\n\n" +
		"## 📄 License\n\n" +
		"This project is licensed under the MIT License - see the [LICENSE](LICENSE) file for details.\n\n"

	got := Render(a, s, WithYear(2024))
	if got != want {
		t.Errorf("Render() mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}

	wantSections := []string{"title", "features", "installation", "scripts", "usage", "dependencies", "contributing", "license"}
	if names := Sections(a, s); !reflect.DeepEqual(names, wantSections) {
		t.Errorf("Sections() = %v, want %v", names, wantSections)
	}
}

func TestRender_Idempotent(t *testing.T) {
	a := answers(AudienceTeams, ToneTechnical, DetailComprehensive)
	s := signals(detect.JavaScript, detect.FrameworkReact, []string{"react", "react-dom"}, "build", "vite build")

	first := Render(a, s, WithYear(2030))
	second := Render(a, s, WithYear(2030))
	if first != second {
		t.Error("Render() should be byte-identical for identical inputs")
	}
}

func TestRender_BriefGating(t *testing.T) {
	deps := []string{"a", "b"}
	for _, audience := range Labels(Audiences) {
		for _, tone := range Labels(Tones) {
			for _, pt := range []detect.ProjectType{detect.Unknown, detect.JavaScript, detect.Python, detect.Rust, detect.Flutter} {
				s := signals(pt, "", deps)
				names := Sections(answers(audience, tone, DetailBrief), s)
				for _, n := range names {
					if n == "features" || n == "dependencies" || n == "built-with" || n == "contributing" {
						t.Errorf("audience=%q tone=%q type=%s: brief detail emitted %q", audience, tone, pt, n)
					}
				}
			}
		}
	}
}

func TestRender_EnterpriseLicense(t *testing.T) {
	for _, tone := range Labels(Tones) {
		for _, detail := range Labels(Details) {
			out := Render(answers(AudienceTeams, tone, detail), signals(detect.JavaScript, "", nil), WithYear(2031), WithHolder("Acme Corp"))

			idx := strings.Index(out, "## 📄 License")
			if idx < 0 {
				t.Fatalf("tone=%q detail=%q: no license section", tone, detail)
			}
			license := out[idx:]
			if !strings.Contains(license, "proprietary") {
				t.Errorf("tone=%q detail=%q: license should be proprietary, got %q", tone, detail, license)
			}
			if strings.Contains(license, "MIT") {
				t.Errorf("tone=%q detail=%q: license should not mention MIT", tone, detail)
			}
			if !strings.Contains(license, "© 2031 Acme Corp.") {
				t.Errorf("tone=%q detail=%q: expected pinned year and holder, got %q", tone, detail, license)
			}
		}
	}
}

func TestRender_DefaultHolder(t *testing.T) {
	out := Render(answers(AudienceTeams, ToneFriendly, DetailBrief), nil, WithYear(2025))
	if !strings.Contains(out, "© 2025 Your Company Name.") {
		t.Errorf("expected default holder, got:\n%s", out)
	}
}

func TestRender_Badges(t *testing.T) {
	tests := []struct {
		name     string
		audience string
		tone     string
		sig      *detect.Signals
		want     []string
		notWant  []string
	}{
		{
			name:     "friendly tone has no badges",
			audience: AudienceOpenSource,
			tone:     ToneFriendly,
			sig:      signals(detect.JavaScript, detect.FrameworkReact, nil),
			notWant:  []string{"img.shields.io"},
		},
		{
			name:     "react project",
			audience: AudienceDevelopers,
			tone:     ToneProfessional,
			sig:      signals(detect.JavaScript, detect.FrameworkReact, nil),
			want:     []string{"[![Node.js]", "[![React]"},
			notWant:  []string{"[![License]"},
		},
		{
			name:     "vue project gets only node badge",
			audience: AudienceDevelopers,
			tone:     ToneTechnical,
			sig:      signals(detect.JavaScript, detect.FrameworkVue, nil),
			want:     []string{"[![Node.js]"},
			notWant:  []string{"[![React]"},
		},
		{
			name:     "open source adds license badge",
			audience: AudienceOpenSource,
			tone:     ToneTechnical,
			sig:      signals(detect.Python, "", nil),
			want:     []string{"[![Python]", "[![License](https://img.shields.io/badge/License-MIT-green.svg?style=for-the-badge)](LICENSE)"},
		},
		{
			name:     "flutter",
			audience: AudienceEndUsers,
			tone:     ToneProfessional,
			sig:      signals(detect.Flutter, "", nil),
			want:     []string{"[![Flutter]"},
		},
		{
			name:     "rust has no badge",
			audience: AudienceEndUsers,
			tone:     ToneProfessional,
			sig:      signals(detect.Rust, "", nil),
			notWant:  []string{"img.shields.io"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Render(Answers{ProjectName: "x", Description: "y", Audience: tt.audience, Tone: tt.tone, Detail: DetailBrief}, tt.sig)
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("expected %q in output:\n%s", w, out)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("did not expect %q in output:\n%s", w, out)
				}
			}
		})
	}
}

func TestRender_UnknownProfessionalBadgesBlockIsBlankLine(t *testing.T) {
	out := Render(answers(AudienceDevelopers, ToneProfessional, DetailBrief), nil)
	if !strings.HasPrefix(out, "# demo\n\ndesc\n\n\n## 🚀 Installation") {
		t.Errorf("unexpected prefix:\n%q", out[:60])
	}
}

func TestRender_ReactSpecifics(t *testing.T) {
	s := signals(detect.JavaScript, detect.FrameworkReact, []string{"react"})
	out := Render(answers(AudienceDevelopers, ToneTechnical, DetailComprehensive), s)

	for _, w := range []string{
		"- ⚛️ Built with React for modern UI\n",
		"The app will open at [http://localhost:3000](http://localhost:3000).",
		"### Building for Production",
		"- **[React](https://reactjs.org)** - Frontend framework\n",
	} {
		if !strings.Contains(out, w) {
			t.Errorf("expected %q in output", w)
		}
	}

	// No scripts were detected, so the scripts section is skipped.
	if strings.Contains(out, "Available Scripts") {
		t.Error("scripts section should need at least one script")
	}
}

func TestRender_UsageOnlySpecialCasesReact(t *testing.T) {
	out := Render(answers(AudienceDevelopers, ToneFriendly, DetailBrief), signals(detect.JavaScript, detect.FrameworkNext, nil))
	if !strings.Contains(out, "Detailed usage instructions and examples go here.") {
		t.Error("non-React JavaScript project should use the generic usage text")
	}
}

func TestRender_FlutterSections(t *testing.T) {
	out := Render(answers(AudienceEndUsers, ToneCreative, DetailStandard), signals(detect.Flutter, "", nil))

	for _, w := range []string{
		"- 📱 Cross-platform mobile application\n",
		"### Prerequisites\n\n- Flutter SDK (>=3.0.0)\n",
		"flutter pub get",
		"### Development Commands",
		"flutter build ios --release",
	} {
		if !strings.Contains(out, w) {
			t.Errorf("expected %q in output", w)
		}
	}
}

func TestRender_InstallationSnippets(t *testing.T) {
	tests := []struct {
		pt   detect.ProjectType
		want string
	}{
		{detect.JavaScript, "npm install"},
		{detect.Python, "source venv/bin/activate  # On Windows: venv\\Scripts\\activate\n"},
		{detect.Rust, "cargo build --release"},
		{detect.Flutter, "flutter run"},
		{detect.Unknown, "# Follow setup instructions"},
	}

	for _, tt := range tests {
		t.Run(string(tt.pt), func(t *testing.T) {
			a := answers(AudienceEndUsers, ToneFriendly, DetailBrief)
			a.ProjectName = "My Cool App!"
			out := Render(a, signals(tt.pt, "", nil))

			if !strings.Contains(out, tt.want) {
				t.Errorf("expected %q in output:\n%s", tt.want, out)
			}
			if !strings.Contains(out, "cd my-cool-app-\n") {
				t.Errorf("expected slugified cd line in output:\n%s", out)
			}
		})
	}
}

func TestRender_RepositoryURL(t *testing.T) {
	s := signals(detect.Rust, "", nil)
	s.RepositoryURL = "git@github.com:acme/crab.git"

	out := Render(answers(AudienceDevelopers, ToneFriendly, DetailBrief), s)
	if !strings.Contains(out, "git clone git@github.com:acme/crab.git\n") {
		t.Errorf("expected detected repository URL, got:\n%s", out)
	}
	if strings.Contains(out, RepositoryPlaceholder) {
		t.Error("placeholder should be replaced when a URL is known")
	}
}

func TestRender_BuiltWithGating(t *testing.T) {
	s := signals(detect.Python, "", nil)

	tests := []struct {
		audience string
		tone     string
		detail   string
		want     bool
	}{
		{AudienceDevelopers, ToneFriendly, DetailComprehensive, true},
		{AudienceEndUsers, ToneTechnical, DetailComprehensive, true},
		{AudienceEndUsers, ToneFriendly, DetailComprehensive, false},
		{AudienceDevelopers, ToneTechnical, DetailStandard, false},
	}

	for _, tt := range tests {
		out := Render(answers(tt.audience, tt.tone, tt.detail), s)
		got := strings.Contains(out, "## 🛠️ Built With")
		if got != tt.want {
			t.Errorf("audience=%q tone=%q detail=%q: built with = %v, want %v", tt.audience, tt.tone, tt.detail, got, tt.want)
		}
	}
}

func TestRender_BuiltWithFrameworkLinks(t *testing.T) {
	for _, framework := range []string{detect.FrameworkReact, detect.FrameworkVue, detect.FrameworkExpress, detect.FrameworkNext} {
		t.Run(framework, func(t *testing.T) {
			out := Render(answers(AudienceDevelopers, ToneFriendly, DetailComprehensive), signals(detect.JavaScript, framework, nil))

			want := "- **[" + framework + "](https://reactjs.org)** - Frontend framework\n"
			if !strings.Contains(out, want) {
				t.Errorf("expected %q in output:\n%s", want, out)
			}
		})
	}
}

func TestRender_RustBadgeBlockIsBlankLine(t *testing.T) {
	out := Render(answers(AudienceEndUsers, ToneProfessional, DetailBrief), signals(detect.Rust, "", nil))
	if !strings.HasPrefix(out, "# demo\n\ndesc\n\n\n## 🚀 Installation") {
		t.Errorf("rust badge block should be a single blank line, got:\n%s", out)
	}
}

func TestRender_DependenciesTruncated(t *testing.T) {
	deps := []string{"d1", "d2", "d3", "d4", "d5", "d6", "d7", "d8", "d9", "d10", "d11"}
	out := Render(answers(AudienceDevelopers, ToneFriendly, DetailStandard), signals(detect.JavaScript, "", deps))

	if !strings.Contains(out, "- `d8`\n- ... and 3 more\n") {
		t.Errorf("expected first 8 dependencies then a remainder line, got:\n%s", out)
	}
	if strings.Contains(out, "`d9`") {
		t.Error("ninth dependency should not be listed")
	}
}

func TestRender_DependenciesNeedDevelopers(t *testing.T) {
	s := signals(detect.JavaScript, "", []string{"express"})

	for _, audience := range []string{AudienceEndUsers, AudienceTeams, AudienceOpenSource} {
		names := Sections(answers(audience, ToneTechnical, DetailComprehensive), s)
		for _, n := range names {
			if n == "dependencies" {
				t.Errorf("audience=%q should not list dependencies", audience)
			}
		}
	}
}

func TestRender_OpenSourceContributing(t *testing.T) {
	out := Render(answers(AudienceOpenSource, ToneCreative, DetailComprehensive), nil)

	if !strings.Contains(out, "1. Fork the Project\n") {
		t.Error("expected the fork checklist for open source")
	}
	if !strings.Contains(out, "5. Open a Pull Request\n\n") {
		t.Error("expected the pull request step")
	}
	if strings.Contains(out, "Contributions are welcome!") {
		t.Error("open source should not use the short contributing list")
	}
}

func TestRender_NilScriptsMap(t *testing.T) {
	s := &detect.Signals{ProjectType: detect.JavaScript}
	out := Render(answers(AudienceDevelopers, ToneFriendly, DetailStandard), s)
	if strings.Contains(out, "Available Scripts") {
		t.Error("nil scripts should behave like an empty map")
	}
}

func TestRender_ScriptsOrder(t *testing.T) {
	s := detect.NewSignals()
	s.ProjectType = detect.JavaScript
	s.Scripts = orderedmap.New[string, string]()
	s.Scripts.Set("test", "jest")
	s.Scripts.Set("build", "tsc")

	out := Render(answers(AudienceEndUsers, ToneFriendly, DetailBrief), s)
	if !strings.Contains(out, "- `npm run test` - jest\n- `npm run build` - tsc\n\n") {
		t.Errorf("scripts should keep bundle order, got:\n%s", out)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"My Cool App!", "my-cool-app-"},
		{"demo", "demo"},
		{"already-a-slug-42", "already-a-slug-42"},
		{"Hello  World", "hello--world"},
		{"snake_case.name", "snake-case-name"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Slugify(tt.input)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := Slugify(got); again != got {
				t.Errorf("Slugify should be idempotent: Slugify(%q) = %q", got, again)
			}
		})
	}
}
