// Package model defines the data structures shared by the initialization pipeline.
package model

import (
	"path/filepath"
	"sort"
)

// Path represents a file system path.
type Path string

// File represents a source code file.
type File struct {
	FullPath  Path
	ShortPath Path // relative to the project root
	Hash      string
}

// Source pairs a production file with its companion test file, if any.
type Source struct {
	Origin  *File
	Test    *File
	Package string
}

// Folder is a node of the in-memory project content tree.
type Folder struct {
	Path     Path
	Sources  []Source
	Children []*Folder
}

// NewFolder creates an empty folder node for path.
func NewFolder(path Path) *Folder {
	return &Folder{Path: path}
}

// Child returns the direct child folder for path, creating it when missing.
func (f *Folder) Child(path Path) *Folder {
	for _, child := range f.Children {
		if child.Path == path {
			return child
		}
	}

	child := NewFolder(path)
	f.Children = append(f.Children, child)

	sort.Slice(f.Children, func(i, j int) bool {
		return f.Children[i].Path < f.Children[j].Path
	})

	return child
}

// Add places source into the folder matching the directory of its short path,
// creating intermediate folders as needed.
func (f *Folder) Add(source Source) {
	if source.Origin == nil {
		return
	}

	dir := filepath.Dir(string(source.Origin.ShortPath))
	if dir == "." || dir == "" {
		f.Sources = append(f.Sources, source)
		return
	}

	node := f
	current := ""

	for _, segment := range splitPath(dir) {
		current = filepath.Join(current, segment)
		node = node.Child(Path(current))
	}

	node.Sources = append(node.Sources, source)
}

// AllSources returns every source in the tree in depth-first order.
func (f *Folder) AllSources() []Source {
	if f == nil {
		return nil
	}

	sources := append([]Source{}, f.Sources...)
	for _, child := range f.Children {
		sources = append(sources, child.AllSources()...)
	}

	return sources
}

// Count returns the number of sources in the tree.
func (f *Folder) Count() int {
	if f == nil {
		return 0
	}

	count := len(f.Sources)
	for _, child := range f.Children {
		count += child.Count()
	}

	return count
}

func splitPath(dir string) []string {
	var segments []string

	for dir != "." && dir != "" && dir != string(filepath.Separator) {
		segments = append([]string{filepath.Base(dir)}, segments...)
		dir = filepath.Dir(dir)
	}

	return segments
}
