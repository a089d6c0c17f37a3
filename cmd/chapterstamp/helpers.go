package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/nguyentantai21042004/chapterstamp/internal/chapters"
)

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// readText reads path, or stdin when path is "-".
func readText(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// confirmMismatch asks on out and reads the answer from in.
func confirmMismatch(in io.Reader, out io.Writer) func(context.Context, *chapters.MismatchError) bool {
	return func(ctx context.Context, mismatch *chapters.MismatchError) bool {
		fmt.Fprintf(out, "Warning: %v. Missing names use file names, extra names are ignored.\nContinue? [y/N] ", mismatch)
		answer, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && answer == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true
		default:
			return false
		}
	}
}
