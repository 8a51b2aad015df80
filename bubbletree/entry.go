package bubbletree

import (
	"fmt"
	"os"
	"time"
)

// Entry is the filesystem payload carried by every tree node.
type Entry struct {
	// Path is the absolute path of the file or directory
	Path  string
	IsDir bool

	// Cached metadata for table display; nil until LoadMeta()
	meta *EntryMeta
}

func NewEntry(path string, isDir bool) Entry {
	return Entry{
		Path:  path,
		IsDir: isDir,
	}
}

// EntryMeta contains cached metadata about an entry for display in
// directory tables.
type EntryMeta struct {
	Size    int64
	ModTime time.Time
	Mode    os.FileMode
}

func (e *Entry) IsEmpty() bool {
	if e == nil {
		return true
	}
	return e.Path == ""
}

func (e *Entry) Meta() *EntryMeta {
	if e.meta == nil {
		panic("Entry.Meta() called before Entry.LoadMeta()")
	}
	return e.meta
}

func (e *Entry) HasMeta() bool {
	return e.meta != nil
}

// LoadMeta stats the entry and caches the result. Lstat is used so a
// dangling symlink still yields displayable metadata. A vanished entry is
// not an error; it gets empty metadata.
func (e *Entry) LoadMeta() (err error) {
	var info os.FileInfo

	if e.meta != nil {
		goto end
	}

	info, err = os.Lstat(e.Path)
	if err != nil {
		if os.IsNotExist(err) {
			e.meta = &EntryMeta{}
			err = nil
			goto end
		}
		err = fmt.Errorf("%w: %s: %w", ErrEntryStat, e.Path, err)
		goto end
	}

	e.meta = &EntryMeta{
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Mode:    info.Mode(),
	}
end:
	return err
}
