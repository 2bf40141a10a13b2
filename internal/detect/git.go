package detect

import (
	"github.com/go-git/go-git/v5"
)

// repositoryURL returns the first URL of the origin remote, or "" when the
// workspace is not inside a git repository or has no origin.
func repositoryURL(root string) string {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ""
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return ""
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return ""
	}
	return urls[0]
}
