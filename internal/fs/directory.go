package fs

// Directory exposes creation, enumeration and removal of one owned Path.
// Recursive operations transiently construct child Directory and File values
// scoped to the single call.
type Directory struct {
	path Path
}

// NewDirectory wraps a Path in a Directory.
func NewDirectory(path Path) Directory {
	return Directory{path: path}
}

// Path returns the owned path.
func (d Directory) Path() Path { return d.path }

// Exists reports whether the path exists and is a directory.
func (d Directory) Exists() bool {
	return d.path.Exists() && d.path.IsDir()
}

// Create creates the directory. It is idempotent: an already existing path
// is success. Parents are not created; any other host rejection is a
// *CreateError.
func (d Directory) Create() error {
	err := d.path.host.Mkdir(d.path.s)
	if err == nil || d.path.Exists() {
		return nil
	}
	return &CreateError{Path: d.path.s, Cause: err}
}

// List enumerates the directory. Non-recursive, it returns the immediate
// children in host enumeration order, never including the "." and ".."
// sentinels. Recursive, it returns a flattened depth-first pre-order
// sequence: each child directory's entry appears immediately before its own
// descendants. If the directory does not exist or cannot be opened, List
// returns an empty sequence; enumeration failure is deliberately not
// distinguished from an empty directory at this layer.
func (d Directory) List(recursive bool) []Path {
	entries, err := d.path.host.ReadDir(d.path.s)
	if err != nil {
		return nil
	}

	var result []Path
	for _, entry := range entries {
		name := entry.Name()
		if name == "." || name == ".." {
			continue
		}
		child := d.path.Join(name)
		result = append(result, child)
		if recursive && entry.IsDir() {
			result = append(result, NewDirectory(child).List(true)...)
		}
	}
	return result
}

// Remove removes the directory. Non-recursive, the directory must be empty.
// Recursive, it deletes depth-first in post-order: every child is removed
// before the directory itself, sub-directories through a recursive Remove
// and files through File.Remove. There is no rollback; if a child deletion
// fails, the error surfaces immediately and the tree is left in whatever
// partial state existed at that point.
func (d Directory) Remove(recursive bool) error {
	if recursive {
		for _, child := range d.List(false) {
			var err error
			if child.IsDir() {
				err = NewDirectory(child).Remove(true)
			} else {
				err = NewFile(child).Remove()
			}
			if err != nil {
				return err
			}
		}
	}
	if err := d.path.host.RemoveDir(d.path.s); err != nil {
		return &RemoveError{Path: d.path.s, Cause: err}
	}
	return nil
}
