// Package fsutil collects the filesystem glue around the codec package:
// directory walking, file I/O behind a small injectable interface, and
// archive-vs-cleartext detection by header sniffing.
package fsutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kurenai-dev/go-adkdng/pkg/codec"
)

// FileSystem is the subset of filesystem operations the app layer needs,
// small enough to fake in tests without touching disk.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	Stat(path string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	ReadDir(path string) ([]os.DirEntry, error)
}

// OSFileSystem implements FileSystem against the real operating system.
type OSFileSystem struct{}

// NewOSFileSystem returns a FileSystem backed by the os package.
func NewOSFileSystem() *OSFileSystem { return &OSFileSystem{} }

func (OSFileSystem) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

func (OSFileSystem) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (OSFileSystem) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }

func (OSFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (OSFileSystem) ReadDir(path string) ([]os.DirEntry, error) { return os.ReadDir(path) }

// FileExists reports whether path exists and is not a directory. It does
// not check that the file can be read.
func FileExists(fs FileSystem, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && !info.IsDir()
}

// WalkFiles returns every regular file under root: root itself if it is a
// file, or every regular file beneath it (recursively) if it is a
// directory. Recursion goes through fs so a fake FileSystem drives the walk
// in tests, the same as the OS does in production.
func WalkFiles(fs FileSystem, root string) ([]string, error) {
	info, err := fs.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}
	return walkDir(fs, root)
}

func walkDir(fs FileSystem, dir string) ([]string, error) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			sub, err := walkDir(fs, path)
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

// LooksLikeArchive reports whether data begins with a valid archive
// header. Used to decide, for a given file, whether to Decrypt or Encrypt.
func LooksLikeArchive(data []byte) bool {
	_, err := codec.ReadHeader(data)
	return err == nil
}

// OutputPath computes the destination path for a processed file.
//
// Decrypting "<stem>.cmp.<ext>" produces "<stem>.<adk|dng>.<ext>" (the
// ".cmp" marker replaced by the inner game extension). Encrypting
// "<stem>.<adk|dng>.<ext>" produces "<stem>.cmp.<ext>".
func OutputPath(outputDir, inputPath string, decrypted bool, game codec.Game) string {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	stem := base[:len(base)-len(ext)]

	oldMarker, newMarker := "."+innerExt(game), ".cmp"
	if decrypted {
		oldMarker, newMarker = ".cmp", "."+innerExt(game)
	}
	if n := len(stem) - len(oldMarker); n >= 0 && strings.EqualFold(stem[n:], oldMarker) {
		stem = stem[:n]
	}
	return filepath.Join(outputDir, stem+newMarker+ext)
}

func innerExt(game codec.Game) string {
	if game == codec.DNG {
		return "dng"
	}
	return "adk"
}
