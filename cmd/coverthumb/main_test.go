package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"ebook-thumbnailer/internal/extract"
)

func TestRunTextBook(t *testing.T) {
	dir := t.TempDir()
	book := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(book, []byte("some text"), 0o644); err != nil {
		t.Fatalf("write book: %v", err)
	}
	out := filepath.Join(dir, "thumb.png")

	if err := run(book, out, "", 64); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Errorf("output is %dx%d, want 64x64", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestRunDefaultOutputPath(t *testing.T) {
	dir := t.TempDir()
	book := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(book, []byte("text"), 0o644); err != nil {
		t.Fatalf("write book: %v", err)
	}

	if err := run(book, "", "", 32); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	if _, err := os.Stat(book + ".png"); err != nil {
		t.Errorf("expected output next to input: %v", err)
	}
}

func TestRunUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	book := filepath.Join(dir, "doc.pdf")
	if err := os.WriteFile(book, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("write book: %v", err)
	}

	err := run(book, "", "", 64)
	if !errors.Is(err, extract.ErrUnsupportedFormat) {
		t.Errorf("run() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestRunMissingFile(t *testing.T) {
	if err := run(filepath.Join(t.TempDir(), "gone.txt"), "", "", 64); err == nil {
		t.Error("run() expected error for missing file")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{1, 16},
		{16, 16},
		{256, 256},
		{1024, 1024},
		{9999, 1024},
	}

	for _, tt := range tests {
		if got := clamp(tt.in); got != tt.want {
			t.Errorf("clamp(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
