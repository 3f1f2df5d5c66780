// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envfile

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-flex-kit/models"
)

const defaultFileMode fs.FileMode = 0o644

// DefaultTemplate is the template written when no template file is present
// next to the environment file.
//
//go:embed template.env
var DefaultTemplate string

// Exists reports whether a regular file exists at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ReadLines returns the lines of the file at path without their terminators.
// A final newline does not produce a trailing empty line, and CRLF endings
// are read as LF.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadEnvFile, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadEnvFile, err)
	}

	return lines, nil
}

// Write replaces the file at path with lines, each terminated by '\n'.
//
// The content is written to a temporary file in the same directory and then
// renamed over path, so a failure at any point leaves the previous file
// untouched. The permission bits of an existing file are kept.
func Write(path string, lines []string) (err error) {
	mode := defaultFileMode
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteEnvFile, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err = w.WriteString(line + "\n"); err != nil {
			_ = tmp.Close()
			return fmt.Errorf("%w: %w", ErrWriteEnvFile, err)
		}
	}
	if err = w.Flush(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %w", ErrWriteEnvFile, err)
	}
	if err = tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %w", ErrWriteEnvFile, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteEnvFile, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteEnvFile, err)
	}

	return nil
}

// Update reads the file at path, merges answers into it and writes the result
// back as a single whole-file replacement.
func Update(path string, answers models.Answers) error {
	lines, err := ReadLines(path)
	if err != nil {
		return err
	}
	return Write(path, Merge(lines, answers))
}

// CreateFromTemplate creates the environment file at envPath as a copy of
// templatePath. When templatePath does not exist, [DefaultTemplate] is used.
func CreateFromTemplate(envPath, templatePath string) error {
	content, err := os.ReadFile(templatePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		content = []byte(DefaultTemplate)
	case err != nil:
		return fmt.Errorf("%w: %w", ErrCreateEnvFile, err)
	}

	if err = os.WriteFile(envPath, content, defaultFileMode); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateEnvFile, err)
	}
	return nil
}
