package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	logger "github.com/sirupsen/logrus"
)

const (
	modernizeBranchName   = "chore/modernize-java-21"
	modernizeCommitTitle  = "chore: modernize to Java 21 and Spring Boot 3.x"
	modernizeCommitAuthor = "modernize"
	modernizeCommitEmail  = "modernize@rios0rios0.io"
)

// commitChanges stages the written files and commits them on a dedicated
// branch. A project that is not a Git repository is not an error; the files
// are already updated on disk.
func commitChanges(root string, paths []string) error {
	repo, err := git.PlainOpen(root)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		logger.Warnf("%s is not a git repository, skipping commit", root)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open git repository at %q: %w", root, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}

	branchRef := plumbing.NewBranchReferenceName(modernizeBranchName)
	checkoutErr := worktree.Checkout(&git.CheckoutOptions{
		Branch: branchRef,
		Create: true,
		Keep:   true,
	})
	if checkoutErr != nil {
		// Branch left over from an earlier run; reuse it.
		checkoutErr = worktree.Checkout(&git.CheckoutOptions{
			Branch: branchRef,
			Keep:   true,
		})
	}
	if checkoutErr != nil {
		return fmt.Errorf("failed to checkout branch %q: %w", modernizeBranchName, checkoutErr)
	}

	for _, path := range paths {
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return fmt.Errorf("failed to resolve %q against %q: %w", path, root, relErr)
		}
		if _, addErr := worktree.Add(rel); addErr != nil {
			return fmt.Errorf("failed to stage %q: %w", rel, addErr)
		}
	}

	hash, err := worktree.Commit(modernizeCommitTitle, &git.CommitOptions{
		Author: &object.Signature{
			Name:  modernizeCommitAuthor,
			Email: modernizeCommitEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	logger.Infof("Created commit %s on branch %q", hash.String()[:8], modernizeBranchName)
	return nil
}
