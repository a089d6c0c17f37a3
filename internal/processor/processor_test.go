package processor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/nguyentantai21042004/chapterstamp/internal/chapters"
	"github.com/nguyentantai21042004/chapterstamp/internal/config"
	"github.com/nguyentantai21042004/chapterstamp/internal/library"
	"github.com/nguyentantai21042004/chapterstamp/internal/logger"
	"github.com/nguyentantai21042004/chapterstamp/internal/probe"
)

var durations = map[string]float64{
	"01 intro.mp3": 65.4,
	"02 body.mp3":  120.0,
	"10 outro.mp3": 30.9,
}

func newTestProcessor(t *testing.T) (Processor, string) {
	t.Helper()
	dir := t.TempDir()
	for name := range durations {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("audio"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "cover.jpg"), []byte("img"), 0644); err != nil {
		t.Fatal(err)
	}

	resolver := probe.ResolverFunc(func(ctx context.Context, f library.AudioFile) (float64, error) {
		d, ok := durations[f.Name]
		if !ok {
			return 0, &probe.LoadError{Name: f.Name, Err: errors.New("unreadable")}
		}
		return d, nil
	})
	return New(config.Default(), resolver, logger.Discard()), dir
}

func TestProcess(t *testing.T) {
	p, dir := newTestProcessor(t)

	res, err := p.Process(context.Background(), Request{
		Dir:   dir,
		Names: []string{"Intro", "Body", "Outro"},
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	want := "00:00 - Intro\n01:05 - Body\n03:05 - Outro"
	if res.Text != want {
		t.Errorf("Text = %q, want %q", res.Text, want)
	}
	if res.Mismatch != nil {
		t.Errorf("Mismatch = %v, want nil", res.Mismatch)
	}

	wantPath := filepath.Join(dir, "chapters.txt")
	if res.OutputPath != wantPath {
		t.Errorf("OutputPath = %q, want %q", res.OutputPath, wantPath)
	}
	data, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != want+"\n" {
		t.Errorf("output file = %q", data)
	}

	leftovers, _ := filepath.Glob(filepath.Join(dir, ".chapters-*"))
	if len(leftovers) != 0 {
		t.Errorf("temp files left behind: %v", leftovers)
	}
}

func TestProcessDerivedNamesAndTransforms(t *testing.T) {
	p, dir := newTestProcessor(t)

	res, err := p.Process(context.Background(), Request{
		Dir:        dir,
		Output:     "-",
		Transforms: chapters.Options{Capitalize: true, Number: true},
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	want := "00:00 - 1. Intro\n01:05 - 2. Body\n03:05 - 3. Outro"
	if res.Text != want {
		t.Errorf("Text = %q, want %q", res.Text, want)
	}
	if res.OutputPath != "" {
		t.Errorf("OutputPath = %q, want none", res.OutputPath)
	}
	if _, err := os.Stat(filepath.Join(dir, "chapters.txt")); !os.IsNotExist(err) {
		t.Errorf("output written despite \"-\": %v", err)
	}
}

func TestProcessWithoutNames(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
		want    string
	}{
		{
			name:    "no names aborts",
			req:     Request{},
			wantErr: chapters.ErrNoNames,
		},
		{
			name:    "blank lines only abort",
			req:     Request{Names: chapters.ParseNames("\n  \n")},
			wantErr: chapters.ErrNoNames,
		},
		{
			name: "derive names",
			req:  Request{DeriveNames: true},
			want: "00:00 - 01 intro\n01:05 - 02 body\n03:05 - 10 outro",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, dir := newTestProcessor(t)
			confirmed := false
			tt.req.Dir = dir
			tt.req.Confirm = func(context.Context, *chapters.MismatchError) bool {
				confirmed = true
				return true
			}

			res, err := p.Process(context.Background(), tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Process() error = %v, want %v", err, tt.wantErr)
				}
				if confirmed {
					t.Error("missing names must not be offered for confirmation")
				}
				if _, statErr := os.Stat(filepath.Join(dir, "chapters.txt")); !os.IsNotExist(statErr) {
					t.Errorf("output written after abort: %v", statErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Process() error = %v", err)
			}
			if res.Text != tt.want {
				t.Errorf("Text = %q, want %q", res.Text, tt.want)
			}
		})
	}
}

func TestProcessTransformsCoverFallbackLabels(t *testing.T) {
	p, dir := newTestProcessor(t)

	res, err := p.Process(context.Background(), Request{
		Dir:        dir,
		Output:     "-",
		Names:      []string{"welcome"},
		Transforms: chapters.Options{Capitalize: true, Number: true},
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	want := "00:00 - 1. Welcome\n01:05 - 2. Body\n03:05 - 3. Outro"
	if res.Text != want {
		t.Errorf("Text = %q, want %q", res.Text, want)
	}
	if res.Mismatch == nil {
		t.Error("Mismatch = nil, want the short name list reported")
	}
}

func TestProcessMismatch(t *testing.T) {
	tests := []struct {
		name      string
		confirm   ConfirmFunc
		wantErr   error
		wantLines string
	}{
		{
			name:      "no confirm callback continues",
			confirm:   nil,
			wantLines: "00:00 - Welcome\n01:05 - 02 body\n03:05 - 10 outro",
		},
		{
			name:      "confirmed",
			confirm:   func(context.Context, *chapters.MismatchError) bool { return true },
			wantLines: "00:00 - Welcome\n01:05 - 02 body\n03:05 - 10 outro",
		},
		{
			name:    "declined",
			confirm: func(context.Context, *chapters.MismatchError) bool { return false },
			wantErr: ErrCancelled,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, dir := newTestProcessor(t)
			res, err := p.Process(context.Background(), Request{
				Dir:     dir,
				Output:  "-",
				Names:   []string{"Welcome"},
				Confirm: tt.confirm,
			})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Process() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Process() error = %v", err)
			}
			if res.Text != tt.wantLines {
				t.Errorf("Text = %q, want %q", res.Text, tt.wantLines)
			}
			if res.Mismatch == nil || res.Mismatch.Names != 1 || res.Mismatch.Files != 3 {
				t.Errorf("Mismatch = %+v", res.Mismatch)
			}
		})
	}
}

func TestProcessOrdering(t *testing.T) {
	p, dir := newTestProcessor(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mtimes := map[string]time.Time{
		"01 intro.mp3": base.Add(2 * time.Hour),
		"02 body.mp3":  base,
		"10 outro.mp3": base.Add(time.Hour),
	}
	for name, mt := range mtimes {
		if err := os.Chtimes(filepath.Join(dir, name), mt, mt); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name    string
		req     Request
		want    []string
		wantErr bool
	}{
		{
			name: "by name",
			req:  Request{SortBy: config.SortByName},
			want: []string{"01 intro.mp3", "02 body.mp3", "10 outro.mp3"},
		},
		{
			name: "by mtime",
			req:  Request{SortBy: config.SortByModTime},
			want: []string{"02 body.mp3", "10 outro.mp3", "01 intro.mp3"},
		},
		{
			name: "order file",
			req:  Request{Order: []string{"10 outro.mp3"}},
			want: []string{"10 outro.mp3", "01 intro.mp3", "02 body.mp3"},
		},
		{
			name: "reorder hook",
			req: Request{Reorder: func(ctx context.Context, files []library.AudioFile) ([]library.AudioFile, error) {
				return library.Move(files, 2, 0)
			}},
			want: []string{"10 outro.mp3", "01 intro.mp3", "02 body.mp3"},
		},
		{
			name:    "unknown sort",
			req:     Request{SortBy: "size"},
			wantErr: true,
		},
		{
			name:    "order names unknown file",
			req:     Request{Order: []string{"missing.mp3"}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Dir = dir
			tt.req.Output = "-"
			tt.req.DeriveNames = true
			res, err := p.Process(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Process() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !slices.Equal(library.Names(res.Files), tt.want) {
				t.Errorf("Files = %v, want %v", library.Names(res.Files), tt.want)
			}
		})
	}
}

func TestProcessLoadError(t *testing.T) {
	p, dir := newTestProcessor(t)
	if err := os.WriteFile(filepath.Join(dir, "05 broken.ogg"), []byte("?"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := p.Process(context.Background(), Request{Dir: dir, DeriveNames: true})
	var loadErr *probe.LoadError
	if !errors.As(err, &loadErr) || loadErr.Name != "05 broken.ogg" {
		t.Fatalf("Process() error = %v, want LoadError for 05 broken.ogg", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "chapters.txt")); !os.IsNotExist(err) {
		t.Errorf("partial output written: %v", err)
	}
}

func TestProcessEmptyFolder(t *testing.T) {
	p, _ := newTestProcessor(t)
	_, err := p.Process(context.Background(), Request{Dir: t.TempDir()})
	if !errors.Is(err, ErrNoAudioFiles) {
		t.Fatalf("Process() error = %v, want ErrNoAudioFiles", err)
	}
}

func TestProcessCustomOutputPath(t *testing.T) {
	p, dir := newTestProcessor(t)
	out := filepath.Join(t.TempDir(), "nested", "book.txt")

	res, err := p.Process(context.Background(), Request{Dir: dir, Output: out, DeriveNames: true})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if res.OutputPath != out {
		t.Errorf("OutputPath = %q, want %q", res.OutputPath, out)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output not written: %v", err)
	}
}
