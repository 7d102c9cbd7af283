package project

import (
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// CheckoutInfo describes the project checkout the engine is about to edit.
type CheckoutInfo struct {
	Root   string
	Branch string
	Clean  bool
	IsGit  bool
}

// DetectCheckout inspects the given directory for a Git checkout. A plain
// directory without one is not an error: the engine then operates on the
// directory as-is, without worktree warnings.
func DetectCheckout(path string) (*CheckoutInfo, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return &CheckoutInfo{Root: path, Clean: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %q: %w", path, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve worktree: %w", err)
	}

	info := &CheckoutInfo{
		Root:  worktree.Filesystem.Root(),
		IsGit: true,
	}

	// A detached or unborn HEAD leaves the branch empty; that is fine.
	if head, headErr := repo.Head(); headErr == nil {
		info.Branch = head.Name().Short()
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to read worktree status: %w", err)
	}
	info.Clean = status.IsClean()

	return info, nil
}
