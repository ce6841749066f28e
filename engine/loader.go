package engine

import (
	"os"
	"path/filepath"
	"strings"
)

// Loader finds the file that backs a template name.
type Loader interface {
	// Find returns the path of the file for name, or an error matching
	// ErrTemplateNotFound.
	Find(name string) (string, error)
}

// FileSystemLoader looks templates up in an ordered list of directories.
// The first directory holding the file wins. The list is fixed at
// construction, so a loader may be shared between goroutines.
type FileSystemLoader struct {
	dirs []string // Directories to search, in order
}

// NewFileSystemLoader creates a loader searching dirs in the given order.
func NewFileSystemLoader(dirs ...string) *FileSystemLoader {
	return &FileSystemLoader{dirs: append([]string(nil), dirs...)}
}

// SearchPath returns a copy of the directories searched by the loader.
func (l *FileSystemLoader) SearchPath() []string {
	return append([]string(nil), l.dirs...)
}

// Find implements Loader.
func (l *FileSystemLoader) Find(name string) (string, error) {
	segments, ok := splitTemplatePath(name)
	if !ok {
		return "", &NotFoundError{Name: name}
	}

	rel := filepath.Join(segments...)
	for _, dir := range l.dirs {
		path := filepath.Join(dir, rel)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", &NotFoundError{Name: name}
}

// splitTemplatePath breaks a slash-separated template name into path
// segments. Empty and "." segments are dropped, so "/show.html" and
// "show.html" name the same file. A ".." segment or an empty result is
// rejected.
func splitTemplatePath(name string) ([]string, bool) {
	var segments []string
	for _, piece := range strings.Split(name, "/") {
		switch {
		case piece == "" || piece == ".":
			continue
		case piece == ".." || strings.ContainsRune(piece, filepath.Separator):
			return nil, false
		}
		segments = append(segments, piece)
	}
	return segments, len(segments) > 0
}

// ChoiceLoader tries each of its loaders in order.
type ChoiceLoader struct {
	loaders []Loader
}

// NewChoiceLoader creates a loader that returns the first match among loaders.
func NewChoiceLoader(loaders ...Loader) *ChoiceLoader {
	return &ChoiceLoader{loaders: append([]Loader(nil), loaders...)}
}

// Find implements Loader.
func (l *ChoiceLoader) Find(name string) (string, error) {
	for _, loader := range l.loaders {
		path, err := loader.Find(name)
		if err == nil {
			return path, nil
		}
	}
	return "", &NotFoundError{Name: name}
}
