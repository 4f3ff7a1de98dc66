package pkg_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirsheet/pkg"
	"dirsheet/pkg/sheet"
	"dirsheet/testutils"
)

func rowNames(rows []sheet.Row) []string {
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Name)
	}
	return names
}

func TestScanKeepsDirectoryOrder(t *testing.T) {
	lister := testutils.NewMockLister(
		testutils.NewFileEntry("zeta.txt"),
		testutils.NewFileEntry("alpha.txt"),
		testutils.NewFileEntry("mid.txt"),
	)
	extractor := testutils.NewMockExtractor(map[string][]string{
		"zeta.txt":  {"z"},
		"alpha.txt": {"a"},
		"mid.txt":   {"m"},
	})

	scanner, err := pkg.NewScanner(pkg.WithDirectoryLister(lister), pkg.WithLineExtractor(extractor))
	require.NoError(t, err)

	result, err := scanner.Scan(context.Background(), "/cells")
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta.txt", "alpha.txt", "mid.txt"}, rowNames(result.Rows))
	assert.Equal(t, []string{"/cells"}, lister.Calls)
	assert.Equal(t, "/cells", result.Directory)
	assert.Equal(t, 1, result.MaxLines)
	assert.Empty(t, result.Skipped)
	assert.NoError(t, result.SkippedError())
}

func TestScanSortByName(t *testing.T) {
	lister := testutils.NewMockLister(
		testutils.NewFileEntry("b"),
		testutils.NewFileEntry("c"),
		testutils.NewFileEntry("a"),
	)
	extractor := testutils.NewMockExtractor(map[string][]string{"a": nil, "b": nil, "c": nil})

	scanner, err := pkg.NewScanner(
		pkg.WithDirectoryLister(lister),
		pkg.WithLineExtractor(extractor),
		pkg.WithSortByName(true),
	)
	require.NoError(t, err)

	result, err := scanner.Scan(context.Background(), "/cells")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, rowNames(result.Rows))
}

func TestScanSkipsNonRegularEntries(t *testing.T) {
	lister := testutils.NewMockLister(
		testutils.NewDirEntry("subdir"),
		testutils.NewFileEntry("file.txt"),
		&testutils.MockDirEntry{EntryName: "link", Mode: fs.ModeSymlink},
	)
	extractor := testutils.NewMockExtractor(map[string][]string{"file.txt": {"content"}})
	logger := testutils.NewMockLogger()

	scanner, err := pkg.NewScanner(
		pkg.WithDirectoryLister(lister),
		pkg.WithLineExtractor(extractor),
		pkg.WithLogger(logger),
	)
	require.NoError(t, err)

	result, err := scanner.Scan(context.Background(), "/cells")
	require.NoError(t, err)

	assert.Equal(t, []string{"file.txt"}, rowNames(result.Rows))
	assert.Equal(t, []string{"file.txt"}, extractor.Calls)
	assert.Empty(t, result.Skipped)
	assert.Empty(t, logger.Entries(pkg.LevelError))
}

func TestScanUnreadableFile(t *testing.T) {
	lister := testutils.NewMockLister(
		testutils.NewFileEntry("a.txt"),
		testutils.NewFileEntry("locked.txt"),
		testutils.NewFileEntry("bb.txt"),
	)
	extractor := testutils.NewMockExtractor(map[string][]string{
		"a.txt":  {"hi"},
		"bb.txt": {"hello"},
	}).FailOn("locked.txt", fs.ErrPermission)
	logger := testutils.NewMockLogger()

	scanner, err := pkg.NewScanner(
		pkg.WithDirectoryLister(lister),
		pkg.WithLineExtractor(extractor),
		pkg.WithLogger(logger),
	)
	require.NoError(t, err)

	result, err := scanner.Scan(context.Background(), "/cells")
	require.NoError(t, err)

	assert.Equal(t, []string{"a.txt", "bb.txt"}, rowNames(result.Rows))
	assert.Equal(t,
		[]string{"Couldn't read file " + filepath.Join("/cells", "locked.txt")},
		logger.Messages(pkg.LevelError))

	require.Len(t, result.Skipped, 1)
	assert.Equal(t, filepath.Join("/cells", "locked.txt"), result.Skipped[0].Path)

	skippedErr := result.SkippedError()
	require.Error(t, skippedErr)
	assert.True(t, errors.Is(skippedErr, fs.ErrPermission))
	assert.True(t, errors.Is(skippedErr, pkg.ErrEntry))
	assert.False(t, pkg.IsFatal(skippedErr))
}

func TestScanFileTypeFailure(t *testing.T) {
	lister := testutils.NewMockLister(
		testutils.NewBrokenEntry("mystery", fs.ErrPermission),
		testutils.NewFileEntry("kept.txt"),
	)
	extractor := testutils.NewMockExtractor(map[string][]string{"kept.txt": {"x"}})
	logger := testutils.NewMockLogger()

	scanner, err := pkg.NewScanner(
		pkg.WithDirectoryLister(lister),
		pkg.WithLineExtractor(extractor),
		pkg.WithLogger(logger),
	)
	require.NoError(t, err)

	result, err := scanner.Scan(context.Background(), "/cells")
	require.NoError(t, err)

	assert.Equal(t, []string{"kept.txt"}, rowNames(result.Rows))
	assert.Equal(t,
		[]string{"Couldn't get file type for " + filepath.Join("/cells", "mystery")},
		logger.Messages(pkg.LevelError))
	assert.NotContains(t, extractor.Calls, "mystery")
}

func TestScanClassifiesFromListing(t *testing.T) {
	entry := testutils.NewFileEntry("listed.txt")
	entry.InfoErr = fs.ErrNotExist
	lister := testutils.NewMockLister(entry)
	extractor := testutils.NewMockExtractor(map[string][]string{"listed.txt": {"still here"}})
	logger := testutils.NewMockLogger()

	scanner, err := pkg.NewScanner(
		pkg.WithDirectoryLister(lister),
		pkg.WithLineExtractor(extractor),
		pkg.WithLogger(logger),
	)
	require.NoError(t, err)

	result, err := scanner.Scan(context.Background(), "/cells")
	require.NoError(t, err)

	assert.Equal(t, []string{"listed.txt"}, rowNames(result.Rows))
	assert.Empty(t, logger.Entries(pkg.LevelError))
}

func TestScanFileRemovedAfterListing(t *testing.T) {
	dir := testutils.WriteFiles(t, map[string]string{
		"ok.txt":   "fine",
		"gone.txt": "soon deleted",
	})

	entries, err := pkg.OSLister{}.ReadDir(dir)
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(dir, "gone.txt")))

	logger := testutils.NewMockLogger()
	scanner, err := pkg.NewScanner(
		pkg.WithDirectoryLister(testutils.NewMockLister(entries...)),
		pkg.WithLogger(logger),
	)
	require.NoError(t, err)

	result, err := scanner.Scan(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"ok.txt"}, rowNames(result.Rows))
	assert.Equal(t,
		[]string{"Couldn't read file " + filepath.Join(dir, "gone.txt")},
		logger.Messages(pkg.LevelError))
	assert.ErrorIs(t, result.SkippedError(), fs.ErrNotExist)
}

func TestScanPartialListing(t *testing.T) {
	lister := testutils.NewMockLister(
		testutils.NewFileEntry("first.txt"),
		testutils.NewFileEntry("second.txt"),
	)
	lister.Err = pkg.NewEntryError("read_dir", "/cells", errors.New("input/output error"))
	extractor := testutils.NewMockExtractor(map[string][]string{
		"first.txt":  {"1"},
		"second.txt": {"2"},
	})
	logger := testutils.NewMockLogger()

	scanner, err := pkg.NewScanner(
		pkg.WithDirectoryLister(lister),
		pkg.WithLineExtractor(extractor),
		pkg.WithLogger(logger),
	)
	require.NoError(t, err)

	result, err := scanner.Scan(context.Background(), "/cells")
	require.NoError(t, err)

	assert.Equal(t, []string{"first.txt", "second.txt"}, rowNames(result.Rows))
	assert.Equal(t, []string{"Couldn't read entries of /cells"}, logger.Messages(pkg.LevelError))

	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "/cells", result.Skipped[0].Path)
	assert.Same(t, lister.Err, result.Skipped[0].Err)
	assert.False(t, pkg.IsFatal(result.SkippedError()))
}

func TestScanListingFailure(t *testing.T) {
	lister := testutils.NewMockLister()
	lister.Err = &fs.PathError{Op: "readdir", Path: "/cells", Err: syscall.ENOTDIR}

	scanner, err := pkg.NewScanner(pkg.WithDirectoryLister(lister))
	require.NoError(t, err)

	result, err := scanner.Scan(context.Background(), "/cells")

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkg.ErrInput))
	assert.True(t, pkg.IsFatal(err))
	assert.Contains(t, err.Error(), "is not a directory")
}

func TestScanCancelled(t *testing.T) {
	lister := testutils.NewMockLister(testutils.NewFileEntry("a"))
	extractor := testutils.NewMockExtractor(map[string][]string{"a": nil})

	scanner, err := pkg.NewScanner(pkg.WithDirectoryLister(lister), pkg.WithLineExtractor(extractor))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = scanner.Scan(ctx, "/cells")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, extractor.Calls)
}

func TestScanRealDirectory(t *testing.T) {
	dir := testutils.WriteFiles(t, map[string]string{
		"a.txt":    "hi\nsecond\n",
		"bb.txt":   "hello",
		"empty":    "",
		"many.txt": "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n11\n12\n",
	})
	testutils.MakeDir(t, dir, "nested")
	testutils.WriteFile(t, filepath.Join(dir, "nested"), "ignored.txt", "deep")

	scanner, err := pkg.NewScanner(pkg.WithMaxLines(10), pkg.WithSortByName(true))
	require.NoError(t, err)

	result, err := scanner.Scan(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []sheet.Row{
		sheet.NewRow("a.txt", []string{"hi", "second"}),
		sheet.NewRow("bb.txt", []string{"hello"}),
		sheet.NewRow("empty", nil),
		sheet.NewRow("many.txt", []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}),
	}, result.Rows)
}

func TestScanRealDirectoryTwice(t *testing.T) {
	dir := testutils.WriteFiles(t, map[string]string{
		"one":   "1",
		"two":   "22",
		"three": "333",
	})

	scanner, err := pkg.NewScanner()
	require.NoError(t, err)

	first, err := scanner.Scan(context.Background(), dir)
	require.NoError(t, err)
	second, err := scanner.Scan(context.Background(), dir)
	require.NoError(t, err)

	sortRows := func(rows []sheet.Row) []sheet.Row {
		sorted := slices.Clone(rows)
		slices.SortFunc(sorted, func(a, b sheet.Row) int {
			if a.Name < b.Name {
				return -1
			}
			if a.Name > b.Name {
				return 1
			}
			return 0
		})
		return sorted
	}

	assert.Equal(t, sortRows(first.Rows), sortRows(second.Rows))
	assert.Len(t, first.Rows, 3)
}

func TestScanRealUnreadableFile(t *testing.T) {
	dir := testutils.WriteFiles(t, map[string]string{"ok.txt": "fine"})
	locked := testutils.WriteFile(t, dir, "locked.txt", "secret")
	testutils.MakeUnreadable(t, locked)

	logger := testutils.NewMockLogger()
	scanner, err := pkg.NewScanner(pkg.WithLogger(logger))
	require.NoError(t, err)

	result, err := scanner.Scan(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"ok.txt"}, rowNames(result.Rows))
	assert.Equal(t, []string{"Couldn't read file " + locked}, logger.Messages(pkg.LevelError))
}

func TestOSListerNotADirectory(t *testing.T) {
	dir := testutils.WriteFiles(t, map[string]string{"file.txt": "x"})

	_, err := pkg.OSLister{}.ReadDir(filepath.Join(dir, "file.txt"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, syscall.ENOTDIR))
}

func TestOSListerMissing(t *testing.T) {
	_, err := pkg.OSLister{}.ReadDir(filepath.Join(t.TempDir(), "missing"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestOSListerReturnsAllEntries(t *testing.T) {
	dir := testutils.WriteFiles(t, map[string]string{"a": "", "b": ""})
	testutils.MakeDir(t, dir, "c")

	entries, err := pkg.OSLister{}.ReadDir(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	slices.Sort(names)
	assert.Equal(t, []string{"a", "b", "c"}, names)
}
