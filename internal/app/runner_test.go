package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"assetcopy/internal/domain"
	osfs "assetcopy/internal/infra/fs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOSRunner() (*Planner, *Runner) {
	filesystem := osfs.OSFS{}
	return &Planner{FS: filesystem}, &Runner{
		Executor: &Executor{FS: filesystem},
		Lister:   &Lister{FS: filesystem, Filters: defaultFilters},
	}
}

func TestRunCopiesPresentAndReportsMissing(t *testing.T) {
	sourceDir := t.TempDir()
	destDir := t.TempDir()
	img0 := bytes.Repeat([]byte{0x42}, 500)
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "img0.png"), img0, 0o644))

	planner, runner := newOSRunner()
	plan, err := planner.Plan(context.Background(), sourceDir, destDir, []domain.AssetPair{
		{Source: "img0.png", Dest: "logo.png"},
		{Source: "img1.png", Dest: "icon.png"},
	})
	require.NoError(t, err)

	report, err := runner.Run(context.Background(), plan)
	require.NoError(t, err)

	require.Len(t, report.Results, 2)
	assert.Equal(t, domain.StatusSuccess, report.Results[0].Status)
	assert.Equal(t, int64(500), report.Results[0].Size)
	assert.Equal(t, domain.StatusSourceMissing, report.Results[1].Status)

	copied, err := os.ReadFile(filepath.Join(destDir, "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, img0, copied)

	_, err = os.Stat(filepath.Join(destDir, "icon.png"))
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, report.Listing.Err)
	assert.Empty(t, report.Listing.Entries)
	assert.True(t, report.Failed())
}

func TestRunDuplicateSourceProducesOnlyLastDestination(t *testing.T) {
	sourceDir := t.TempDir()
	destDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "a.png"), []byte("icon"), 0o644))

	planner, runner := newOSRunner()
	plan, err := planner.Plan(context.Background(), sourceDir, destDir, []domain.AssetPair{
		{Source: "a.png", Dest: "x.png"},
		{Source: "a.png", Dest: "favicon.ico"},
	})
	require.NoError(t, err)

	report, err := runner.Run(context.Background(), plan)
	require.NoError(t, err)

	require.Len(t, report.Results, 1)
	_, err = os.Stat(filepath.Join(destDir, "x.png"))
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, []domain.ListingEntry{{Name: "favicon.ico", Size: 4}}, report.Listing.Entries)
}

func TestRunListsOnlyMatchingNames(t *testing.T) {
	sourceDir := t.TempDir()
	destDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(destDir, "unrelated.txt"), []byte("zz"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(destDir, "favicon.ico"), []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "text.png"), []byte("light"), 0o644))

	planner, runner := newOSRunner()
	plan, err := planner.Plan(context.Background(), sourceDir, destDir, []domain.AssetPair{
		{Source: "text.png", Dest: "vion-logo-text-light.png"},
	})
	require.NoError(t, err)

	report, err := runner.Run(context.Background(), plan)
	require.NoError(t, err)

	assert.Equal(t, []domain.ListingEntry{
		{Name: "favicon.ico", Size: 3},
		{Name: "vion-logo-text-light.png", Size: 5},
	}, report.Listing.Entries)
	assert.False(t, report.Failed())
}

func TestRunMissingDestinationDirFailsEveryCopyAndListing(t *testing.T) {
	sourceDir := t.TempDir()
	destDir := filepath.Join(t.TempDir(), "public")
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "a.png"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "b.png"), []byte("b"), 0o644))

	planner, runner := newOSRunner()
	plan, err := planner.Plan(context.Background(), sourceDir, destDir, []domain.AssetPair{
		{Source: "a.png", Dest: "vion-a.png"},
		{Source: "b.png", Dest: "vion-b.png"},
	})
	require.NoError(t, err)

	report, err := runner.Run(context.Background(), plan)
	require.NoError(t, err)

	require.Len(t, report.Results, 2)
	for _, result := range report.Results {
		assert.Equal(t, domain.StatusError, result.Status)
	}
	assert.Error(t, report.Listing.Err)
}

func TestRunSameDirectoryIdentityMappingLeavesSourceIntact(t *testing.T) {
	dir := t.TempDir()
	content := []byte("favicon bytes")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "favicon.ico"), content, 0o644))

	planner, runner := newOSRunner()
	plan, err := planner.Plan(context.Background(), dir, dir, []domain.AssetPair{
		{Source: "favicon.ico", Dest: "favicon.ico"},
	})
	require.NoError(t, err)

	report, err := runner.Run(context.Background(), plan)
	require.NoError(t, err)

	require.Len(t, report.Results, 1)
	assert.Equal(t, domain.StatusError, report.Results[0].Status)
	assert.ErrorContains(t, report.Results[0].Err, "same file")

	got, err := os.ReadFile(filepath.Join(dir, "favicon.ico"))
	require.NoError(t, err)
	assert.Equal(t, content, got)
	assert.Equal(t, []domain.ListingEntry{{Name: "favicon.ico", Size: int64(len(content))}}, report.Listing.Entries)
}

func TestRunSkipsListingWhenCancelled(t *testing.T) {
	planner, runner := newOSRunner()
	plan, err := planner.Plan(context.Background(), t.TempDir(), t.TempDir(), []domain.AssetPair{
		{Source: "a.png", Dest: "favicon.ico"},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := runner.Run(ctx, plan)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Results)
	assert.Empty(t, report.Listing.Entries)
}

func TestRunRequiresParts(t *testing.T) {
	_, err := (&Runner{}).Run(context.Background(), domain.CopyPlan{})
	assert.Error(t, err)
}
