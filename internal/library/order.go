package library

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortByName orders files the way a person reads track names: digit runs
// compare numerically, so "2 - Intro.mp3" sorts before "10 - Outro.mp3".
func SortByName(files []AudioFile) {
	c := collate.New(language.Und, collate.Numeric)
	slices.SortStableFunc(files, func(a, b AudioFile) int {
		return c.CompareString(a.Name, b.Name)
	})
}

// SortByModTime orders files oldest first, ties broken by name.
func SortByModTime(files []AudioFile) {
	c := collate.New(language.Und, collate.Numeric)
	slices.SortStableFunc(files, func(a, b AudioFile) int {
		if cmp := a.ModTime.Compare(b.ModTime); cmp != 0 {
			return cmp
		}
		return c.CompareString(a.Name, b.Name)
	})
}

// ApplyOrder returns files rearranged so the named files come first, in the
// order given. Files not named keep their relative order after them. Blank
// names are ignored; a name that matches no file is an error.
func ApplyOrder(files []AudioFile, names []string) ([]AudioFile, error) {
	index := make(map[string]int, len(files))
	for i, f := range files {
		index[f.Name] = i
	}

	used := make([]bool, len(files))
	ordered := make([]AudioFile, 0, len(files))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		i, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("order lists unknown file %q", name)
		}
		if used[i] {
			return nil, fmt.Errorf("order lists %q more than once", name)
		}
		used[i] = true
		ordered = append(ordered, files[i])
	}
	for i, f := range files {
		if !used[i] {
			ordered = append(ordered, f)
		}
	}
	return ordered, nil
}

// Move relocates the file at from to position to, shifting the files in
// between. It returns a new slice and leaves files untouched.
func Move(files []AudioFile, from, to int) ([]AudioFile, error) {
	if from < 0 || from >= len(files) {
		return nil, fmt.Errorf("move: source index %d out of range [0,%d)", from, len(files))
	}
	if to < 0 || to >= len(files) {
		return nil, fmt.Errorf("move: target index %d out of range [0,%d)", to, len(files))
	}

	out := slices.Clone(files)
	f := out[from]
	out = slices.Delete(out, from, from+1)
	out = slices.Insert(out, to, f)
	return out, nil
}

// Names returns the file names in order.
func Names(files []AudioFile) []string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return names
}
