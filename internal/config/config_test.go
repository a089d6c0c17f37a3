package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "mtime sort",
			config: Config{
				Library: LibraryConfig{SortBy: "MTIME"},
			},
			wantErr: false,
		},
		{
			name: "unknown sort",
			config: Config{
				Library: LibraryConfig{SortBy: "size"},
			},
			wantErr: true,
		},
		{
			name: "blank extension",
			config: Config{
				Library: LibraryConfig{Extensions: []string{".mp3", " "}},
			},
			wantErr: true,
		},
		{
			name: "unknown log level",
			config: Config{
				Logging: LoggingConfig{Level: "trace"},
			},
			wantErr: true,
		},
		{
			name: "negative debounce",
			config: Config{
				Watch: WatchConfig{Debounce: -time.Second},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.FFprobe.BinaryPath != "ffprobe" {
		t.Errorf("BinaryPath = %v, want ffprobe", cfg.FFprobe.BinaryPath)
	}
	if len(cfg.Library.Extensions) != len(DefaultExtensions) {
		t.Errorf("Extensions = %v, want %v", cfg.Library.Extensions, DefaultExtensions)
	}
	if cfg.Library.SortBy != SortByName {
		t.Errorf("SortBy = %v, want %v", cfg.Library.SortBy, SortByName)
	}
	if cfg.Output.FileName != "chapters.txt" {
		t.Errorf("FileName = %v, want chapters.txt", cfg.Output.FileName)
	}
	if cfg.Watch.Debounce != time.Second {
		t.Errorf("Debounce = %v, want 1s", cfg.Watch.Debounce)
	}
}

func TestValidateNormalizesExtensions(t *testing.T) {
	cfg := Config{Library: LibraryConfig{Extensions: []string{"MP3", " .Opus "}}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	want := []string{".mp3", ".opus"}
	for i, ext := range want {
		if cfg.Library.Extensions[i] != ext {
			t.Errorf("Extensions[%d] = %q, want %q", i, cfg.Library.Extensions[i], ext)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvFFprobe, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvOutput, "")

	path := filepath.Join(t.TempDir(), "chapterstamp.yaml")
	content := `
ffprobe:
  binary_path: "/opt/ffmpeg/bin/ffprobe"

library:
  extensions: [".mp3", ".m4b"]
  sort_by: "mtime"

output:
  path: "out/chapters.txt"

logging:
  level: "debug"

watch:
  debounce: 2s
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.FFprobe.BinaryPath != "/opt/ffmpeg/bin/ffprobe" {
		t.Errorf("BinaryPath = %v", cfg.FFprobe.BinaryPath)
	}
	if cfg.Library.SortBy != SortByModTime {
		t.Errorf("SortBy = %v, want %v", cfg.Library.SortBy, SortByModTime)
	}
	if len(cfg.Library.Extensions) != 2 || cfg.Library.Extensions[1] != ".m4b" {
		t.Errorf("Extensions = %v", cfg.Library.Extensions)
	}
	if cfg.Output.Path != "out/chapters.txt" {
		t.Errorf("Output.Path = %v", cfg.Output.Path)
	}
	if cfg.Watch.Debounce != 2*time.Second {
		t.Errorf("Debounce = %v, want 2s", cfg.Watch.Debounce)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvFFprobe, "/usr/local/bin/ffprobe")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvOutput, "-")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.FFprobe.BinaryPath != "/usr/local/bin/ffprobe" {
		t.Errorf("BinaryPath = %v", cfg.FFprobe.BinaryPath)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %v", cfg.Logging.Level)
	}
	if cfg.Output.Path != "-" {
		t.Errorf("Output.Path = %v", cfg.Output.Path)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte(EnvLogLevel+"=error\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// register for restore, then unset so godotenv can populate it
	t.Setenv(EnvLogLevel, "")
	os.Unsetenv(EnvLogLevel)

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), envFile); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := os.Getenv(EnvLogLevel); got != "error" {
		t.Errorf("%s = %q, want error", EnvLogLevel, got)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("library: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should return error for malformed YAML")
	}
}
