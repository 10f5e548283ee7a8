package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// GitInfoAdapter implements domain.GitInfo using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

func open(root string) (*git.Repository, error) {
	// A package root is often a subdirectory of the repository.
	return git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
}

func (g *GitInfoAdapter) IsGitRepo(root string) bool {
	_, err := open(root)
	return err == nil
}

func (g *GitInfoAdapter) CommitHash(root string) (string, error) {
	repo, err := open(root)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}
