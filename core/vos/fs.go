package vos

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// VFS implements a virtual filesystem and is the second layer of the virtual OS.
type VFS = afero.Fs

// FsOp is a textual description of the filesystem operation.
type FsOp = string

const (
	FsOpChtimes  FsOp = "chtimes"
	FsOpSymlink  FsOp = "symlink"
	FsOpChmod    FsOp = "chmod"
	FsOpChown    FsOp = "chown"
	FsOpStat     FsOp = "stat"
	FsOpRename   FsOp = "rename"
	FsOpRemove   FsOp = "remove"
	FsOpOpen     FsOp = "open"
	FsOpMkdir    FsOp = "mkdir"
	FsOpCreate   FsOp = "create"
	FsOpLstat    FsOp = "lstat"
	FsOpReadlink FsOp = "readlink"
)

// FileMapper rewrites the path an operation acts on.
type FileMapper func(op FsOp, name string) (path string, err error)

// NewRelativeFs resolves relative names against the directory returned by
// getwd before handing them to base.
func NewRelativeFs(base VFS, getwd func() string) VFS {
	return NewPathMappingFs(base, func(op FsOp, name string) (string, error) {
		return ResolvePath(getwd(), name), nil
	})
}

// ResolvePath joins name onto wd unless name is already absolute.
func ResolvePath(wd, name string) string {
	if name == "" {
		return filepath.Clean(wd)
	}
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(wd, name)
}

// PathMappingFs maps all paths on a filesystem via callback to another path.
type PathMappingFs struct {
	BaseFs afero.Fs
	Mapper FileMapper
}

var _ afero.Lstater = (*PathMappingFs)(nil)
var _ afero.Linker = (*PathMappingFs)(nil)
var _ afero.LinkReader = (*PathMappingFs)(nil)

// PathMappingFsFile implements afero.File.
type PathMappingFsFile struct {
	afero.File
	name string
}

// Name returns the name the file was opened with.
func (f *PathMappingFsFile) Name() string {
	return f.name
}

func NewPathMappingFs(base afero.Fs, mapper FileMapper) *PathMappingFs {
	return &PathMappingFs{BaseFs: base, Mapper: mapper}
}

func (b *PathMappingFs) Name() string {
	return "PathMappingFs"
}

func (b *PathMappingFs) Chtimes(name string, atime, mtime time.Time) error {
	mapped, err := b.Mapper(FsOpChtimes, name)
	if err != nil {
		return &os.PathError{Op: FsOpChtimes, Path: name, Err: err}
	}
	return b.BaseFs.Chtimes(mapped, atime, mtime)
}

func (b *PathMappingFs) Chmod(name string, mode os.FileMode) error {
	mapped, err := b.Mapper(FsOpChmod, name)
	if err != nil {
		return &os.PathError{Op: FsOpChmod, Path: name, Err: err}
	}
	return b.BaseFs.Chmod(mapped, mode)
}

func (b *PathMappingFs) Chown(name string, uid, gid int) error {
	mapped, err := b.Mapper(FsOpChown, name)
	if err != nil {
		return &os.PathError{Op: FsOpChown, Path: name, Err: err}
	}
	return b.BaseFs.Chown(mapped, uid, gid)
}

func (b *PathMappingFs) Stat(name string) (os.FileInfo, error) {
	mapped, err := b.Mapper(FsOpStat, name)
	if err != nil {
		return nil, &os.PathError{Op: FsOpStat, Path: name, Err: err}
	}
	return b.BaseFs.Stat(mapped)
}

func (b *PathMappingFs) Rename(oldname, newname string) error {
	mappedOld, err := b.Mapper(FsOpRename, oldname)
	if err != nil {
		return &os.PathError{Op: FsOpRename, Path: oldname, Err: err}
	}
	mappedNew, err := b.Mapper(FsOpRename, newname)
	if err != nil {
		return &os.PathError{Op: FsOpRename, Path: newname, Err: err}
	}
	return b.BaseFs.Rename(mappedOld, mappedNew)
}

func (b *PathMappingFs) RemoveAll(name string) error {
	mapped, err := b.Mapper(FsOpRemove, name)
	if err != nil {
		return &os.PathError{Op: FsOpRemove, Path: name, Err: err}
	}
	return b.BaseFs.RemoveAll(mapped)
}

func (b *PathMappingFs) Remove(name string) error {
	mapped, err := b.Mapper(FsOpRemove, name)
	if err != nil {
		return &os.PathError{Op: FsOpRemove, Path: name, Err: err}
	}
	return b.BaseFs.Remove(mapped)
}

func (b *PathMappingFs) OpenFile(name string, flag int, mode os.FileMode) (afero.File, error) {
	mapped, err := b.Mapper(FsOpOpen, name)
	if err != nil {
		return nil, &os.PathError{Op: FsOpOpen, Path: name, Err: err}
	}
	f, err := b.BaseFs.OpenFile(mapped, flag, mode)
	if err != nil {
		return nil, err
	}
	return &PathMappingFsFile{File: f, name: name}, nil
}

func (b *PathMappingFs) Open(name string) (afero.File, error) {
	mapped, err := b.Mapper(FsOpOpen, name)
	if err != nil {
		return nil, &os.PathError{Op: FsOpOpen, Path: name, Err: err}
	}
	f, err := b.BaseFs.Open(mapped)
	if err != nil {
		return nil, err
	}
	return &PathMappingFsFile{File: f, name: name}, nil
}

func (b *PathMappingFs) Mkdir(name string, mode os.FileMode) error {
	mapped, err := b.Mapper(FsOpMkdir, name)
	if err != nil {
		return &os.PathError{Op: FsOpMkdir, Path: name, Err: err}
	}
	return b.BaseFs.Mkdir(mapped, mode)
}

func (b *PathMappingFs) MkdirAll(name string, mode os.FileMode) error {
	mapped, err := b.Mapper(FsOpMkdir, name)
	if err != nil {
		return &os.PathError{Op: FsOpMkdir, Path: name, Err: err}
	}
	return b.BaseFs.MkdirAll(mapped, mode)
}

func (b *PathMappingFs) Create(name string) (afero.File, error) {
	mapped, err := b.Mapper(FsOpCreate, name)
	if err != nil {
		return nil, &os.PathError{Op: FsOpCreate, Path: name, Err: err}
	}
	f, err := b.BaseFs.Create(mapped)
	if err != nil {
		return nil, err
	}
	return &PathMappingFsFile{File: f, name: name}, nil
}

func (b *PathMappingFs) LstatIfPossible(name string) (os.FileInfo, bool, error) {
	mapped, err := b.Mapper(FsOpLstat, name)
	if err != nil {
		return nil, false, &os.PathError{Op: FsOpLstat, Path: name, Err: err}
	}
	if lstater, ok := b.BaseFs.(afero.Lstater); ok {
		return lstater.LstatIfPossible(mapped)
	}
	fi, err := b.BaseFs.Stat(mapped)
	return fi, false, err
}

// SymlinkIfPossible creates newname pointing at oldname. The target is
// stored as written so relative links stay relative.
func (b *PathMappingFs) SymlinkIfPossible(oldname, newname string) error {
	mapped, err := b.Mapper(FsOpSymlink, newname)
	if err != nil {
		return &os.LinkError{Op: FsOpSymlink, Old: oldname, New: newname, Err: err}
	}
	if linker, ok := b.BaseFs.(afero.Linker); ok {
		return linker.SymlinkIfPossible(oldname, mapped)
	}
	return &os.LinkError{Op: FsOpSymlink, Old: oldname, New: newname, Err: afero.ErrNoSymlink}
}

func (b *PathMappingFs) ReadlinkIfPossible(name string) (string, error) {
	mapped, err := b.Mapper(FsOpReadlink, name)
	if err != nil {
		return "", &os.PathError{Op: FsOpReadlink, Path: name, Err: err}
	}
	if reader, ok := b.BaseFs.(afero.LinkReader); ok {
		return reader.ReadlinkIfPossible(mapped)
	}
	return "", &os.PathError{Op: FsOpReadlink, Path: name, Err: afero.ErrNoReadlink}
}

// IsNotExist reports whether err says a file is missing, including the
// plain-text errors some afero backends return.
func IsNotExist(err error) bool {
	if err == nil {
		return false
	}
	if os.IsNotExist(err) {
		return true
	}
	return strings.Contains(err.Error(), "file does not exist")
}
