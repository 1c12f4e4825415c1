// Package config handles command-line options and input validation for fastaheader.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType string

const (
	InputNotFound       ConfigErrorType = "INPUT_NOT_FOUND"
	InputNotAFile       ConfigErrorType = "INPUT_NOT_A_FILE"
	OutputDirNotFound   ConfigErrorType = "OUTPUT_DIR_NOT_FOUND"
	OutputNotADirectory ConfigErrorType = "OUTPUT_NOT_A_DIRECTORY"
	InputMissing        ConfigErrorType = "INPUT_MISSING"
	PathError           ConfigErrorType = "PATH_ERROR"
)

// ConfigError represents an error found while validating options.
type ConfigError struct {
	Type ConfigErrorType
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	switch e.Type {
	case InputNotFound:
		return fmt.Sprintf("path to fasta file doesn't exist: %s", e.Path)
	case InputNotAFile:
		return fmt.Sprintf("provided input argument is not a file: %s", e.Path)
	case OutputDirNotFound:
		return fmt.Sprintf("path to output directory doesn't exist: %s", e.Path)
	case OutputNotADirectory:
		return fmt.Sprintf("provided output argument is not a directory: %s", e.Path)
	case InputMissing:
		return "an input fasta file is required"
	default:
		return fmt.Sprintf("cannot access %s: %v", e.Path, e.Err)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Options holds the settings for a single run.
type Options struct {
	InputPath string // Path to the assembly FASTA file
	OutputDir string // Output directory; empty means the input's directory
	Verbose   bool
	DryRun    bool // Report what would be written without creating the output
}

// Resolved holds the paths derived from validated options.
type Resolved struct {
	InputPath string // Absolute path to the input file
	InputDir  string // Directory containing the input file
	DirName   string // Base name of InputDir
	OutputDir string // Directory the renamed file is written to
}

// Resolve derives the absolute input path, its parent directory and the
// output directory. It does not touch the filesystem beyond resolving the
// working directory.
func (o Options) Resolve() (Resolved, error) {
	abs, err := filepath.Abs(o.InputPath)
	if err != nil {
		return Resolved{}, &ConfigError{Type: PathError, Path: o.InputPath, Err: err}
	}

	inputDir := filepath.Dir(abs)
	outputDir := o.OutputDir
	if outputDir == "" {
		outputDir = inputDir
	}

	return Resolved{
		InputPath: abs,
		InputDir:  inputDir,
		DirName:   DirName(inputDir),
		OutputDir: outputDir,
	}, nil
}

// DirName returns the base name of dir. The filesystem root has no name and
// yields an empty string.
func DirName(dir string) string {
	base := filepath.Base(dir)
	if base == string(filepath.Separator) || base == "." {
		return ""
	}
	return base
}

// statPath wraps os.Stat and maps a missing path to the given error type.
func statPath(path string, missing ConfigErrorType) (os.FileInfo, *ConfigError) {
	info, err := os.Stat(path)
	if err == nil {
		return info, nil
	}
	if os.IsNotExist(err) {
		return nil, &ConfigError{Type: missing, Path: path, Err: err}
	}
	return nil, &ConfigError{Type: PathError, Path: path, Err: err}
}
