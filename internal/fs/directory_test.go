package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIsIdempotent(t *testing.T) {
	path := NewPath(filepath.Join(t.TempDir(), "fresh"))
	dir := NewDirectory(path)

	require.NoError(t, dir.Create())
	assert.True(t, dir.Exists())

	require.NoError(t, dir.Create(), "creating an existing directory must succeed")
}

func TestCreateMissingParent(t *testing.T) {
	path := NewPath(filepath.Join(t.TempDir(), "missing", "child"))

	err := NewDirectory(path).Create()
	var createErr *CreateError
	require.ErrorAs(t, err, &createErr, "parents are not auto-created")
	assert.False(t, path.Exists())
}

func TestDirectoryExistsRequiresDirectory(t *testing.T) {
	tmp := t.TempDir()

	assert.True(t, NewDirectory(NewPath(tmp)).Exists())
	assert.False(t, NewDirectory(NewPath(filepath.Join(tmp, "missing"))).Exists())

	filePath := NewPath(filepath.Join(tmp, "plain.txt"))
	require.NoError(t, NewFile(filePath).WriteText("x"))
	assert.False(t, NewDirectory(filePath).Exists(), "a file is not a directory")
}

// seedTree builds two files and a subdirectory holding one file.
func seedTree(t *testing.T, base string) {
	t.Helper()
	require.NoError(t, os.Mkdir(filepath.Join(base, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "b.txt"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "sub", "c.txt"), []byte("c"), 0o644))
}

func names(paths []Path) []string {
	var out []string
	for _, p := range paths {
		out = append(out, p.Filename())
	}
	return out
}

func TestListNonRecursive(t *testing.T) {
	tmp := t.TempDir()
	seedTree(t, tmp)

	entries := NewDirectory(NewPath(tmp)).List(false)
	assert.Len(t, entries, 3)
	assert.ElementsMatch(t, []string{"a.txt", "b.txt", "sub"}, names(entries))
}

func TestListRecursive(t *testing.T) {
	tmp := t.TempDir()
	seedTree(t, tmp)

	entries := NewDirectory(NewPath(tmp)).List(true)
	require.Len(t, entries, 4)
	assert.ElementsMatch(t, []string{"a.txt", "b.txt", "sub", "c.txt"}, names(entries))

	subIdx, childIdx := -1, -1
	for i, p := range entries {
		switch p.Filename() {
		case "sub":
			subIdx = i
		case "c.txt":
			childIdx = i
		}
	}
	require.NotEqual(t, -1, subIdx)
	require.NotEqual(t, -1, childIdx)
	assert.Less(t, subIdx, childIdx, "a directory entry must precede its descendants")
	assert.Equal(t, subIdx+1, childIdx, "descendants follow their directory immediately")
}

func TestListMissingDirectory(t *testing.T) {
	entries := NewDirectory(NewPath(filepath.Join(t.TempDir(), "missing"))).List(true)
	assert.Empty(t, entries, "enumeration failure is silent by design")
}

func TestListEntriesAreFullPaths(t *testing.T) {
	tmp := t.TempDir()
	seedTree(t, tmp)

	for _, p := range NewDirectory(NewPath(tmp)).List(true) {
		assert.True(t, p.Exists(), "listed entry %q must resolve", p.String())
	}
}

func TestRemoveEmpty(t *testing.T) {
	path := NewPath(filepath.Join(t.TempDir(), "empty"))
	require.NoError(t, NewDirectory(path).Create())

	require.NoError(t, NewDirectory(path).Remove(false))
	assert.False(t, path.Exists())
}

func TestRemoveNonEmptyRequiresRecursive(t *testing.T) {
	tmp := t.TempDir()
	seedTree(t, tmp)

	err := NewDirectory(NewPath(tmp)).Remove(false)
	var removeErr *RemoveError
	require.ErrorAs(t, err, &removeErr)
	assert.True(t, NewPath(tmp).Exists(), "a failed non-recursive remove leaves the tree alone")
}

func TestRemoveRecursive(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "root")
	level2 := filepath.Join(root, "level2")
	level3 := filepath.Join(level2, "level3")
	require.NoError(t, os.MkdirAll(level3, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "f1.txt"), []byte("1"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(level2, "f2.txt"), []byte("2"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(level3, "f3.txt"), []byte("3"), 0o644))

	require.NoError(t, NewDirectory(NewPath(root)).Remove(true))

	assert.False(t, NewPath(root).Exists())
	assert.False(t, NewPath(level2).Exists())
	assert.False(t, NewPath(level3).Exists())
}

func TestRemoveRecursiveSurfacesChildFailure(t *testing.T) {
	// A directory holding one file whose deletion the host denies: the
	// child error must surface as-is and the directory must not be removed.
	dirRemoved := false
	host := &MockHost{
		StatFunc: func(path string) (os.FileInfo, error) {
			if path == "root" {
				return &MockFileInfo{FileName: "root", Dir: true}, nil
			}
			return &MockFileInfo{FileName: "stuck.txt"}, nil
		},
		ReadDirFunc: func(path string) ([]os.FileInfo, error) {
			if path == "root" {
				return []os.FileInfo{&MockFileInfo{FileName: "stuck.txt"}}, nil
			}
			return nil, nil
		},
		RemoveFileFunc: func(path string) error {
			return os.ErrPermission
		},
		RemoveDirFunc: func(path string) error {
			dirRemoved = true
			return nil
		},
	}

	err := NewDirectory(NewPathOn(host, "root")).Remove(true)
	var delErr *DeleteError
	require.ErrorAs(t, err, &delErr, "child failure propagates unwrapped")
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.False(t, dirRemoved, "the containing directory must stay after a child failure")
}

func TestRemoveRecursiveIsPostOrder(t *testing.T) {
	var removals []string
	host := &MockHost{
		ReadDirFunc: func(path string) ([]os.FileInfo, error) {
			switch path {
			case "root":
				return []os.FileInfo{
					&MockFileInfo{FileName: "sub", Dir: true},
					&MockFileInfo{FileName: "top.txt"},
				}, nil
			case "root/sub":
				return []os.FileInfo{&MockFileInfo{FileName: "leaf.txt"}}, nil
			}
			return nil, nil
		},
		StatFunc: func(path string) (os.FileInfo, error) {
			if path == "root/sub" || path == "root" {
				return &MockFileInfo{Dir: true}, nil
			}
			return &MockFileInfo{}, nil
		},
		RemoveFileFunc: func(path string) error {
			removals = append(removals, path)
			return nil
		},
		RemoveDirFunc: func(path string) error {
			removals = append(removals, path)
			return nil
		},
	}

	require.NoError(t, NewDirectory(NewPathOn(host, "root")).Remove(true))
	assert.Equal(t, []string{"root/sub/leaf.txt", "root/sub", "root/top.txt", "root"}, removals,
		"descendants are deleted before the directories that contain them")
}

func TestRemoveMissingDirectory(t *testing.T) {
	err := NewDirectory(NewPath(filepath.Join(t.TempDir(), "missing"))).Remove(false)
	var removeErr *RemoveError
	require.ErrorAs(t, err, &removeErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCreateErrorWrapsCause(t *testing.T) {
	cause := errors.New("quota exceeded")
	host := &MockHost{
		MkdirFunc: func(path string) error { return cause },
	}

	err := NewDirectory(NewPathOn(host, "denied")).Create()
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}
