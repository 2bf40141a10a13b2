package readme

import (
	"fmt"
	"strings"

	"github.com/luuuc/readmegen/internal/detect"
)

func titleSection(d *doc) string {
	return fmt.Sprintf("# %s\n\n%s\n\n", d.ProjectName, d.Description)
}

func badgesSection(d *doc) string {
	var b strings.Builder

	switch d.sig.ProjectType {
	case detect.JavaScript:
		b.WriteString("[![Node.js](https://img.shields.io/badge/Node.js-43853D?style=for-the-badge&logo=node.js&logoColor=white)](https://nodejs.org/)\n")
		if d.sig.Framework == detect.FrameworkReact {
			b.WriteString("[![React](https://img.shields.io/badge/React-20232A?style=for-the-badge&logo=react&logoColor=61DAFB)](https://reactjs.org/)\n")
		}
	case detect.Flutter:
		b.WriteString("[![Flutter](https://img.shields.io/badge/Flutter-02569B?style=for-the-badge&logo=flutter&logoColor=white)](https://flutter.dev)\n")
	case detect.Python:
		b.WriteString("[![Python](https://img.shields.io/badge/Python-3776AB?style=for-the-badge&logo=python&logoColor=white)](https://python.org)\n")
	}

	if d.openSource {
		b.WriteString("[![License](https://img.shields.io/badge/License-MIT-green.svg?style=for-the-badge)](LICENSE)\n")
	}
	b.WriteString("\n")

	return b.String()
}

func featuresSection(d *doc) string {
	var b strings.Builder
	b.WriteString("## ✨ Features\n\n")

	switch d.sig.ProjectType {
	case detect.Flutter:
		b.WriteString("- 📱 Cross-platform mobile application\n")
		b.WriteString("- 🎨 Beautiful and intuitive user interface\n")
		b.WriteString("- ⚡ Fast performance and smooth animations\n")
		b.WriteString("- 🔒 Secure data handling and privacy protection\n")
		b.WriteString("- 🌙 Dark mode and theme customization\n")
	case detect.JavaScript:
		b.WriteString("- 🚀 Fast and reliable performance\n")
		b.WriteString("- 📦 Easy installation and setup\n")
		b.WriteString("- 🔧 Highly configurable and extensible\n")
		b.WriteString("- 🛡️ Secure and well-tested\n")
		if d.sig.Framework == detect.FrameworkReact {
			b.WriteString("- ⚛️ Built with React for modern UI\n")
		}
	default:
		b.WriteString("- 🚀 Fast and reliable performance\n")
		b.WriteString("- 📦 Easy to install and configure\n")
		b.WriteString("- 🔧 Highly customizable\n")
		b.WriteString("- 🛡️ Secure and tested\n")
	}

	b.WriteString("\n")
	return b.String()
}

func installationSection(d *doc) string {
	repo := d.sig.RepositoryURL
	if repo == "" {
		repo = RepositoryPlaceholder
	}
	slug := Slugify(d.ProjectName)

	var b strings.Builder
	b.WriteString("## 🚀 Installation\n\n")

	switch d.sig.ProjectType {
	case detect.JavaScript:
		fmt.Fprintf(&b, "```bash\n# Clone the repository\ngit clone %s\ncd %s\n\n# Install dependencies\nnpm install\n\n# Start development server\nnpm start\n```\n\n", repo, slug)
	case detect.Python:
		fmt.Fprintf(&b, "```bash\n# Clone the repository\ngit clone %s\ncd %s\n\n# Create virtual environment\npython -m venv venv\nsource venv/bin/activate  # On Windows: venv\\Scripts\\activate\n\n# Install dependencies\npip install -r requirements.txt\n\n# Run the application\npython main.py\n```\n\n", repo, slug)
	case detect.Flutter:
		b.WriteString("### Prerequisites\n\n")
		b.WriteString("- Flutter SDK (>=3.0.0)\n")
		b.WriteString("- Dart SDK (>=2.17.0)\n")
		b.WriteString("- Android Studio / VS Code\n")
		b.WriteString("- iOS development: Xcode (Mac only)\n\n")
		b.WriteString("### Setup\n\n")
		fmt.Fprintf(&b, "```bash\n# Clone the repository\ngit clone %s\ncd %s\n\n# Get dependencies\nflutter pub get\n\n# Run the app\nflutter run\n```\n\n", repo, slug)
	case detect.Rust:
		fmt.Fprintf(&b, "```bash\n# Clone the repository\ngit clone %s\ncd %s\n\n# Build the project\ncargo build --release\n\n# Run the project\ncargo run\n```\n\n", repo, slug)
	default:
		fmt.Fprintf(&b, "```bash\ngit clone %s\ncd %s\n# Follow setup instructions\n```\n\n", repo, slug)
	}

	return b.String()
}

func scriptsSection(d *doc) string {
	var b strings.Builder
	b.WriteString("## 📜 Available Scripts\n\n")
	for pair := d.sig.Scripts.Oldest(); pair != nil; pair = pair.Next() {
		fmt.Fprintf(&b, "- `npm run %s` - %s\n", pair.Key, pair.Value)
	}
	b.WriteString("\n")
	return b.String()
}

func usageSection(d *doc) string {
	var b strings.Builder
	b.WriteString("## 📖 Usage\n\n")

	switch {
	case d.sig.ProjectType == detect.Flutter:
		b.WriteString("### Development Commands\n\n")
		b.WriteString("```bash\n# Run in debug mode\nflutter run\n\n# Run with hot reload\nflutter run --hot\n\n# Build for Android\nflutter build apk --release\n\n# Build for iOS\nflutter build ios --release\n\n# Run tests\nflutter test\n```\n\n")
	case d.sig.ProjectType == detect.JavaScript && d.sig.Framework == detect.FrameworkReact:
		b.WriteString("After installation, start the development server:\n\n```bash\nnpm start\n```\n\nThe app will open at [http://localhost:3000](http://localhost:3000).\n\n### Building for Production\n\n```bash\nnpm run build\n```\n\n")
	default:
		b.WriteString("Detailed usage instructions and examples go here.\n\nInclude common use cases, configuration options, and troubleshooting tips.\n\n")
	}

	return b.String()
}

func builtWithSection(d *doc) string {
	var b strings.Builder
	b.WriteString("## 🛠️ Built With\n\n")

	switch d.sig.ProjectType {
	case detect.Flutter:
		b.WriteString("- **[Flutter](https://flutter.dev)** - UI toolkit for building natively compiled applications\n")
		b.WriteString("- **[Dart](https://dart.dev)** - Programming language optimized for apps\n")
	case detect.JavaScript:
		b.WriteString("- **[Node.js](https://nodejs.org)** - JavaScript runtime environment\n")
		// Every framework links to the React homepage.
		if d.sig.Framework != "" {
			fmt.Fprintf(&b, "- **[%s](https://reactjs.org)** - Frontend framework\n", d.sig.Framework)
		}
	case detect.Python:
		b.WriteString("- **[Python](https://python.org)** - Programming language\n")
	case detect.Rust:
		b.WriteString("- **[Rust](https://rust-lang.org)** - Systems programming language\n")
	}

	b.WriteString("\n")
	return b.String()
}

// maxDependencies is how many dependency names are listed before truncating.
const maxDependencies = 8

func dependenciesSection(d *doc) string {
	deps := d.sig.Dependencies

	var b strings.Builder
	b.WriteString("## 📦 Dependencies\n\n")
	b.WriteString("Key dependencies:\n")
	for i, dep := range deps {
		if i == maxDependencies {
			break
		}
		fmt.Fprintf(&b, "- `%s`\n", dep)
	}
	if len(deps) > maxDependencies {
		fmt.Fprintf(&b, "- ... and %d more\n", len(deps)-maxDependencies)
	}
	b.WriteString("\n")
	return b.String()
}

func contributingSection(d *doc) string {
	var b strings.Builder
	b.WriteString("## 🤝 Contributing\n\n")

	if d.openSource {
		b.WriteString("Contributions are what make the open source community amazing! Any contributions you make are **greatly appreciated**.\n\n")
		b.WriteString("1. Fork the Project\n")
		b.WriteString("2. Create your Feature Branch (`git checkout -b feature/AmazingFeature`)\n")
		b.WriteString("3. Commit your Changes (`git commit -m 'Add some AmazingFeature'`)\n")
		b.WriteString("4. Push to the Branch (`git push origin feature/AmazingFeature`)\n")
		b.WriteString("5. Open a Pull Request\n\n")
	} else {
		b.WriteString("Contributions are welcome! Feel free to:\n\n")
		b.WriteString("- 🐛 Report bugs\n")
		b.WriteString("- 💡 Suggest features\n")
		b.WriteString("- 🔧 Submit pull requests\n")
		b.WriteString("- 📖 Improve documentation\n\n")
	}

	return b.String()
}

func licenseSection(d *doc) string {
	var b strings.Builder
	b.WriteString("## 📄 License\n\n")

	if d.teams {
		b.WriteString("This project is proprietary software. All rights reserved.\n\n")
		fmt.Fprintf(&b, "© %d %s. Unauthorized copying or distribution is prohibited.\n", d.year, d.holder)
	} else {
		b.WriteString("This project is licensed under the MIT License - see the [LICENSE](LICENSE) file for details.\n\n")
	}

	return b.String()
}
