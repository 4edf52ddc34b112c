// Package fasta reads and writes single-record FASTA files.
package fasta

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// IsHeader reports whether a line is a header or comment line.
// Only the first byte is checked; leading whitespace makes a line content.
func IsHeader(line string) bool {
	return strings.HasPrefix(line, ">") || strings.HasPrefix(line, ";")
}

// Open opens a FASTA file for reading, decompressing it when the path ends in .gz.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open gzip reader: %w", err)
	}
	return &gzipFile{Reader: gz, f: f}, nil
}

type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g *gzipFile) Close() error {
	gzErr := g.Reader.Close()
	if err := g.f.Close(); err != nil {
		return err
	}
	return gzErr
}

// ReadBody concatenates the content lines of r. Header and comment lines
// are dropped as they are; every other line is trimmed of surrounding
// whitespace and control characters (U+0000 through U+0020). Lines may be
// of any length.
func ReadBody(r io.Reader) (string, error) {
	br := bufio.NewReaderSize(r, 64*1024)

	var body strings.Builder
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 && !IsHeader(line) {
			body.WriteString(strings.TrimFunc(line, isSpace))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read FASTA: %w", err)
		}
	}
	return body.String(), nil
}

func isSpace(r rune) bool {
	return r <= ' '
}
