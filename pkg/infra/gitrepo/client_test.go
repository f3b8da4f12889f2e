package gitrepo_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/m-mizutani/gt"
	"github.com/secondbrain-app/secondbrain/pkg/domain/types"
	"github.com/secondbrain-app/secondbrain/pkg/infra/gitrepo"
)

func testSignature() *object.Signature {
	return &object.Signature{
		Name:  "tester",
		Email: "tester@example.com",
		When:  time.Now(),
	}
}

// initRepo creates a repository with one committed file and returns its path.
func initRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	gt.NoError(t, err)

	gt.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# test\n"), 0o644))

	wt, err := repo.Worktree()
	gt.NoError(t, err)
	_, err = wt.Add("README.md")
	gt.NoError(t, err)
	_, err = wt.Commit("initial commit", &git.CommitOptions{Author: testSignature()})
	gt.NoError(t, err)

	return dir, repo
}

func TestIsRepository(t *testing.T) {
	ctx := context.Background()
	client := gitrepo.New()

	dir, _ := initRepo(t)
	ok, err := client.IsRepository(ctx, dir)
	gt.NoError(t, err)
	gt.B(t, ok).True()

	// Not-a-repo is a normal false result, not an error
	ok, err = client.IsRepository(ctx, t.TempDir())
	gt.NoError(t, err)
	gt.B(t, ok).False()
}

func TestStatus(t *testing.T) {
	ctx := context.Background()
	client := gitrepo.New()
	dir, _ := initRepo(t)

	status, err := client.Status(ctx, dir)
	gt.NoError(t, err)
	gt.V(t, status.Branch).Equal(types.BranchName("master"))
	gt.A(t, status.Staged).Length(0)
	gt.A(t, status.Unstaged).Length(0)
	gt.A(t, status.Untracked).Length(0)

	gt.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("hello\n"), 0o644))

	status, err = client.Status(ctx, dir)
	gt.NoError(t, err)
	gt.A(t, status.Untracked).Length(1)
	gt.V(t, status.Untracked[0]).Equal("new.txt")
}

func TestStageAndUnstageRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := gitrepo.New()
	dir, _ := initRepo(t)

	gt.NoError(t, os.WriteFile(filepath.Join(dir, "note.txt"), []byte("draft\n"), 0o644))

	before, err := client.Status(ctx, dir)
	gt.NoError(t, err)
	gt.A(t, before.Untracked).Length(1)
	gt.A(t, before.Staged).Length(0)

	gt.NoError(t, client.StageFiles(ctx, dir, []string{"note.txt"}))

	staged, err := client.Status(ctx, dir)
	gt.NoError(t, err)
	gt.A(t, staged.Staged).Length(1)
	gt.V(t, staged.Staged[0]).Equal("note.txt")
	gt.A(t, staged.Untracked).Length(0)

	gt.NoError(t, client.UnstageFiles(ctx, dir, []string{"note.txt"}))

	after, err := client.Status(ctx, dir)
	gt.NoError(t, err)
	gt.A(t, after.Staged).Length(0)
	gt.A(t, after.Untracked).Length(1)
	gt.V(t, after.Untracked[0]).Equal("note.txt")
}

func TestStageMissingFile(t *testing.T) {
	ctx := context.Background()
	client := gitrepo.New()
	dir, _ := initRepo(t)

	err := client.StageFiles(ctx, dir, []string{"no-such-file.txt"})
	gt.Error(t, err)
	gt.B(t, errors.Is(err, types.ErrNotFound)).True()

	// The index is untouched
	status, err := client.Status(ctx, dir)
	gt.NoError(t, err)
	gt.A(t, status.Staged).Length(0)
}

func TestStageDeletedFile(t *testing.T) {
	ctx := context.Background()
	client := gitrepo.New()
	dir, _ := initRepo(t)

	// Deleting a tracked file and staging the deletion is allowed
	gt.NoError(t, os.Remove(filepath.Join(dir, "README.md")))
	gt.NoError(t, client.StageFiles(ctx, dir, []string{"README.md"}))

	status, err := client.Status(ctx, dir)
	gt.NoError(t, err)
	gt.A(t, status.Staged).Length(1)
}

func TestDeleteBranch(t *testing.T) {
	ctx := context.Background()
	client := gitrepo.New()

	t.Run("merged branch deletes without force", func(t *testing.T) {
		dir, repo := initRepo(t)

		head, err := repo.Head()
		gt.NoError(t, err)
		ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName("merged"), head.Hash())
		gt.NoError(t, repo.Storer.SetReference(ref))

		gt.NoError(t, client.DeleteBranch(ctx, dir, "merged", false))

		status, err := client.Status(ctx, dir)
		gt.NoError(t, err)
		gt.V(t, status.Branch).Equal(types.BranchName("master"))

		_, err = repo.Reference(plumbing.NewBranchReferenceName("merged"), true)
		gt.Error(t, err)
	})

	t.Run("unmerged branch requires force", func(t *testing.T) {
		dir, repo := initRepo(t)

		wt, err := repo.Worktree()
		gt.NoError(t, err)

		// Branch off, add a commit, switch back
		branchRef := plumbing.NewBranchReferenceName("feature")
		gt.NoError(t, wt.Checkout(&git.CheckoutOptions{Branch: branchRef, Create: true}))
		gt.NoError(t, os.WriteFile(filepath.Join(dir, "feature.txt"), []byte("wip\n"), 0o644))
		_, err = wt.Add("feature.txt")
		gt.NoError(t, err)
		_, err = wt.Commit("feature work", &git.CommitOptions{Author: testSignature()})
		gt.NoError(t, err)
		gt.NoError(t, wt.Checkout(&git.CheckoutOptions{Branch: plumbing.NewBranchReferenceName("master")}))

		// Not merged into master: refused without force
		err = client.DeleteBranch(ctx, dir, "feature", false)
		gt.Error(t, err)
		gt.B(t, errors.Is(err, types.ErrValidationFailed)).True()

		_, err = repo.Reference(branchRef, true)
		gt.NoError(t, err)

		// force=true deletes unconditionally
		gt.NoError(t, client.DeleteBranch(ctx, dir, "feature", true))

		_, err = repo.Reference(branchRef, true)
		gt.Error(t, err)
	})

	t.Run("missing branch is NotFound", func(t *testing.T) {
		dir, _ := initRepo(t)

		err := client.DeleteBranch(ctx, dir, "ghost", true)
		gt.Error(t, err)
		gt.B(t, errors.Is(err, types.ErrNotFound)).True()
	})

	t.Run("checked out branch is refused", func(t *testing.T) {
		dir, _ := initRepo(t)

		err := client.DeleteBranch(ctx, dir, "master", true)
		gt.Error(t, err)
		gt.B(t, errors.Is(err, types.ErrValidationFailed)).True()
	})
}
