package main

import (
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/nguyentantai21042004/chapterstamp/internal/library"
	"github.com/nguyentantai21042004/chapterstamp/internal/timestamp"
)

// chapterRow is one listed file with its place on the timeline.
type chapterRow struct {
	position int
	start    float64
	duration float64
	name     string
}

// chapterRows lays files out back to back from zero.
func chapterRows(files []library.AudioFile, durations []float64) ([]chapterRow, float64) {
	rows := make([]chapterRow, len(files))
	var elapsed float64
	for i, f := range files {
		rows[i] = chapterRow{position: i + 1, start: elapsed, duration: durations[i], name: f.Name}
		elapsed += durations[i]
	}
	return rows, elapsed
}

func renderChapterTable(rows []chapterRow, total float64) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Start", "Duration", "File"})
	for _, r := range rows {
		tw.AppendRow(table.Row{r.position, timestamp.Format(r.start), timestamp.Format(r.duration), r.name})
	}
	tw.AppendFooter(table.Row{"", "Total", timestamp.Format(total), strconv.Itoa(len(rows)) + " files"})

	// timestamps line up on the right, file names read from the left
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignLeft, WidthMax: 60},
	})
	return tw.Render()
}

// renderChapterTSV is the pipe-friendly form, raw seconds included.
func renderChapterTSV(rows []chapterRow) string {
	var b strings.Builder
	b.WriteString("#\tstart\tduration\tseconds\tfile\n")
	for _, r := range rows {
		b.WriteString(strings.Join([]string{
			strconv.Itoa(r.position),
			timestamp.Format(r.start),
			timestamp.Format(r.duration),
			strconv.FormatFloat(r.duration, 'f', 3, 64),
			r.name,
		}, "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}
