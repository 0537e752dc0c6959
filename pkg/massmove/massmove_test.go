// pkg/massmove/massmove_test.go
// TEST TYPE: Business Logic Test
// DEPENDENCIES: afero in-memory filesystem
// PURPOSE: Test planning, conflict detection and sequential execution

package massmove_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/mmv/pkg/errors"
	"github.com/arthur-debert/mmv/pkg/filesystem"
	"github.com/arthur-debert/mmv/pkg/massmove"
	"github.com/arthur-debert/mmv/pkg/testutil"
	"github.com/arthur-debert/mmv/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleFiles = []string{
	"some_A_filename.bin",
	"some_A_filename.jpg",
	"some_B_filename.bin",
	"some_B_filename.jpg",
}

func TestRunMovesAndRenames(t *testing.T) {
	fsys, mem := filesystem.NewMemory()
	testutil.CreateFiles(t, mem, "/src", sampleFiles...)
	require.NoError(t, mem.MkdirAll("/dst", 0755))

	result, err := massmove.New(fsys, massmove.Options{}).Run(context.Background(), massmove.Request{
		Source: "/src/some_*_filename.*",
		Target: "/dst/changed_#1_filename.#2",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, result.Succeeded)
	assert.Equal(t, 4, result.Moved())
	assert.Nil(t, result.Failed)
	assert.Equal(t, []string{
		"changed_A_filename.bin",
		"changed_A_filename.jpg",
		"changed_B_filename.bin",
		"changed_B_filename.jpg",
	}, testutil.Names(t, mem, "/dst"))
	assert.Empty(t, testutil.Names(t, mem, "/src"))

	for _, op := range result.Operations {
		assert.Equal(t, types.StatusMoved, op.Status)
	}
}

func TestPlanOrderAndPaths(t *testing.T) {
	fsys, mem := filesystem.NewMemory()
	testutil.CreateFiles(t, mem, "/src", "b.txt", "a.txt", "c.log")

	plan, err := massmove.New(fsys, massmove.Options{}).Plan(context.Background(), massmove.Request{
		Source: "/src/*.txt",
		Target: "/src/#1.md",
	})
	require.NoError(t, err)

	require.Len(t, plan.Operations, 2)
	assert.Equal(t, "/src/a.txt", plan.Operations[0].Source)
	assert.Equal(t, "/src/a.md", plan.Operations[0].Destination)
	assert.Equal(t, "a.md", plan.Operations[0].DestinationName)
	assert.Equal(t, "/src/b.txt", plan.Operations[1].Source)
	assert.Equal(t, types.StatusReady, plan.Operations[1].Status)
	assert.Equal(t, "*.txt", plan.SourcePattern)
	assert.Equal(t, "#1.md", plan.TargetTemplate)

	// Planning touches nothing
	assert.Equal(t, []string{"a.txt", "b.txt", "c.log"}, testutil.Names(t, mem, "/src"))
}

func TestPlanRejectsMalformedSpecs(t *testing.T) {
	fsys, _ := filesystem.NewMemory()
	m := massmove.New(fsys, massmove.Options{})

	_, err := m.Plan(context.Background(), massmove.Request{Source: "", Target: ""})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidSpec))
	assert.Contains(t, err.Error(), "incorrect source")

	_, err = m.Plan(context.Background(), massmove.Request{Source: "/src/*", Target: "#1"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidSpec))
	assert.Contains(t, err.Error(), "incorrect target")
}

func TestPlanRejectsOutOfRangeTemplateBeforeListing(t *testing.T) {
	fsys, _ := filesystem.NewMemory()

	// The source directory does not exist: the template error must win.
	_, err := massmove.New(fsys, massmove.Options{}).Plan(context.Background(), massmove.Request{
		Source: "/nowhere/*.txt",
		Target: "/dst/#1_#2",
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPlaceholderRange))
	index, _ := errors.GetDetail(err, "index")
	assert.Equal(t, 2, index)
}

func TestPlanNoMatches(t *testing.T) {
	fsys, mem := filesystem.NewMemory()
	testutil.CreateFiles(t, mem, "/src", "a.txt")

	_, err := massmove.New(fsys, massmove.Options{}).Plan(context.Background(), massmove.Request{
		Source: "/src/*.jpg",
		Target: "/src/#1.png",
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoMatches))
}

func TestPlanUnreadableSource(t *testing.T) {
	fsys, _ := filesystem.NewMemory()

	_, err := massmove.New(fsys, massmove.Options{}).Plan(context.Background(), massmove.Request{
		Source: "/missing/*",
		Target: "/dst/#1",
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirRead))
}

func TestPlanRejectsExistingDestination(t *testing.T) {
	fsys, mem := filesystem.NewMemory()
	testutil.CreateFiles(t, mem, "/src", "a.txt", "b.txt")
	testutil.CreateFiles(t, mem, "/dst", "b.md")

	req := massmove.Request{Source: "/src/*.txt", Target: "/dst/#1.md"}

	_, err := massmove.New(fsys, massmove.Options{}).Run(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDestinationExists))
	assert.Contains(t, err.Error(), "/dst/b.md")

	// Nothing was moved
	assert.Equal(t, []string{"a.txt", "b.txt"}, testutil.Names(t, mem, "/src"))

	req.Overwrite = true
	result, err := massmove.New(fsys, massmove.Options{}).Run(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, []string{"a.md", "b.md"}, testutil.Names(t, mem, "/dst"))

	content, err := afero.ReadFile(mem, "/dst/b.md")
	require.NoError(t, err)
	assert.Equal(t, "hihihihi", string(content))
}

func TestPlanRejectsCollisions(t *testing.T) {
	fsys, mem := filesystem.NewMemory()
	testutil.CreateFiles(t, mem, "/src", "a_1.txt", "a_2.txt")

	for _, overwrite := range []bool{false, true} {
		_, err := massmove.New(fsys, massmove.Options{}).Plan(context.Background(), massmove.Request{
			Source:    "/src/*_*.txt",
			Target:    "/dst/#1.txt",
			Overwrite: overwrite,
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDestinationCollision))
		dest, _ := errors.GetDetail(err, "destination")
		assert.Equal(t, "/dst/a.txt", dest)
	}
}

func TestPlanRejectsReplacingPendingSource(t *testing.T) {
	fsys, mem := filesystem.NewMemory()
	testutil.CreateFile(t, mem, "/src", "a", "first")
	testutil.CreateFile(t, mem, "/src", "aa", "second")

	for _, overwrite := range []bool{false, true} {
		_, err := massmove.New(fsys, massmove.Options{}).Run(context.Background(), massmove.Request{
			Source:    "/src/*",
			Target:    "/src/a#1",
			Overwrite: overwrite,
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDestinationCollision))
		dest, _ := errors.GetDetail(err, "destination")
		assert.Equal(t, "/src/aa", dest)
	}

	assert.Equal(t, []string{"a", "aa"}, testutil.Names(t, mem, "/src"))
	assert.Equal(t, "second", testutil.ReadFile(t, mem, "/src/aa"))
}

func TestPlanAllowsReplacingMovedSource(t *testing.T) {
	fsys, mem := filesystem.NewMemory()
	testutil.CreateFile(t, mem, "/src", "ab", "first")
	testutil.CreateFile(t, mem, "/src", "b", "second")

	// ab moves to aab before b lands on ab
	result, err := massmove.New(fsys, massmove.Options{}).Run(context.Background(), massmove.Request{
		Source:    "/src/*b",
		Target:    "/src/a#1b",
		Overwrite: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Moved())
	assert.Equal(t, []string{"aab", "ab"}, testutil.Names(t, mem, "/src"))
	assert.Equal(t, "first", testutil.ReadFile(t, mem, "/src/aab"))
	assert.Equal(t, "second", testutil.ReadFile(t, mem, "/src/ab"))
}

func TestPlanRejectsEmptyDestinationName(t *testing.T) {
	fsys, mem := filesystem.NewMemory()
	testutil.CreateFiles(t, mem, "/src", ".txt")

	_, err := massmove.New(fsys, massmove.Options{}).Plan(context.Background(), massmove.Request{
		Source: "/src/*.txt",
		Target: "/dst/#1",
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidDestination))
}

func TestIdentityRenamesAreNoOps(t *testing.T) {
	fsys, mem := filesystem.NewMemory()
	testutil.CreateFiles(t, mem, "/src", sampleFiles...)

	for _, overwrite := range []bool{false, true} {
		result, err := massmove.New(fsys, massmove.Options{}).Run(context.Background(), massmove.Request{
			Source:    "/src/*",
			Target:    "/src/#1",
			Overwrite: overwrite,
		})
		require.NoError(t, err)
		assert.Equal(t, 4, result.Succeeded)
		assert.Equal(t, 4, result.Unchanged)
		assert.Equal(t, 0, result.Moved())
		assert.Equal(t, sampleFiles, testutil.Names(t, mem, "/src"))
	}
}

func TestDryRun(t *testing.T) {
	fsys, mem := filesystem.NewMemory()
	testutil.CreateFiles(t, mem, "/src", "a.txt", "b.txt")

	result, err := massmove.New(fsys, massmove.Options{}).Run(context.Background(), massmove.Request{
		Source: "/src/*.txt",
		Target: "/src/#1.bak",
		DryRun: true,
	})
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, 2, result.Succeeded)
	for _, op := range result.Operations {
		assert.Equal(t, types.StatusSimulated, op.Status)
	}
	assert.Equal(t, []string{"a.txt", "b.txt"}, testutil.Names(t, mem, "/src"))
}

func TestCustomPrefix(t *testing.T) {
	fsys, mem := filesystem.NewMemory()
	testutil.CreateFiles(t, mem, "/src", "IMG_001.jpeg")

	_, err := massmove.New(fsys, massmove.Options{Prefix: "%"}).Run(context.Background(), massmove.Request{
		Source: "/src/IMG_*.jpeg",
		Target: "/src/photo_%1#1.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"photo_001#1.jpg"}, testutil.Names(t, mem, "/src"))
}

// failingFS fails the nth rename.
type failingFS struct {
	types.FS
	failAt  int
	renames int
}

func (f *failingFS) Rename(oldpath, newpath string) error {
	f.renames++
	if f.renames == f.failAt {
		return stderrors.New("disk on fire")
	}
	return f.FS.Rename(oldpath, newpath)
}

func TestExecuteStopsAtFirstFailure(t *testing.T) {
	base, mem := filesystem.NewMemory()
	testutil.CreateFiles(t, mem, "/src", "a.txt", "b.txt", "c.txt")
	fsys := &failingFS{FS: base, failAt: 2}

	result, err := massmove.New(fsys, massmove.Options{}).Run(context.Background(), massmove.Request{
		Source: "/src/*.txt",
		Target: "/src/#1.md",
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRenameFailed))
	assert.Contains(t, err.Error(), "/src/b.txt")
	assert.Contains(t, err.Error(), "/src/b.md")
	assert.Contains(t, err.Error(), "1 of 3 renames succeeded")

	succeeded, _ := errors.GetDetail(err, "succeeded")
	assert.Equal(t, 1, succeeded)

	require.NotNil(t, result)
	assert.Equal(t, 1, result.Succeeded)
	require.NotNil(t, result.Failed)
	assert.Equal(t, "/src/b.txt", result.Failed.Source)
	assert.Equal(t, types.StatusMoved, result.Operations[0].Status)
	assert.Equal(t, types.StatusFailed, result.Operations[1].Status)
	assert.Equal(t, "disk on fire", result.Operations[1].Error)
	assert.Equal(t, types.StatusPending, result.Operations[2].Status)

	// Not transactional: a.txt stays moved, c.txt untouched
	assert.Equal(t, []string{"a.md", "b.txt", "c.txt"}, testutil.Names(t, mem, "/src"))
}

func TestExecuteCanceled(t *testing.T) {
	fsys, mem := filesystem.NewMemory()
	testutil.CreateFiles(t, mem, "/src", "a.txt")

	m := massmove.New(fsys, massmove.Options{})
	plan, err := m.Plan(context.Background(), massmove.Request{Source: "/src/*.txt", Target: "/src/#1.md"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := m.Execute(ctx, plan)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCanceled))
	assert.Equal(t, 0, result.Succeeded)
	assert.Equal(t, []string{"a.txt"}, testutil.Names(t, mem, "/src"))
}
