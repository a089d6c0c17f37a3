// Package timestamp turns an ordered list of audio files into chapter
// timestamps.
//
// Generate walks the files in order, resolving one duration at a time and
// adding it to a running offset, so entry i starts at the starting offset
// plus the durations of files 0..i-1. Offsets keep full precision; Format
// truncates them to whole seconds only when rendering.
package timestamp
