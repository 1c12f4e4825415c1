package config

import (
	"path/filepath"
	"strings"
)

// ValidationSeverity represents the severity of a validation issue.
type ValidationSeverity string

const (
	SeverityError   ValidationSeverity = "error"
	SeverityWarning ValidationSeverity = "warning"
)

// ConfigValidationError represents a single validation issue.
type ConfigValidationError struct {
	Field    string             // Option with the issue (e.g., "input")
	Message  string             // Human-readable description
	Severity ValidationSeverity // "error" or "warning"
	Err      *ConfigError       // Typed error for SeverityError findings
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	Errors   []ConfigValidationError
	Warnings []ConfigValidationError
	Valid    bool // True if no errors (warnings OK)
}

// FastaExtensions lists the file extensions expected on assembly files.
var FastaExtensions = []string{".fasta", ".fa", ".fna", ".fas"}

// ValidateOptions checks the options and returns all findings. Errors are
// ordered input first, then output directory.
func ValidateOptions(opts Options) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ConfigValidationError{},
		Warnings: []ConfigValidationError{},
		Valid:    true,
	}

	for _, finding := range validateInput(opts.InputPath) {
		result.add(finding)
	}
	for _, finding := range validateOutputDir(opts.OutputDir) {
		result.add(finding)
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// Err returns the first error finding, or nil when the options are valid.
// Input existence is checked before its type, and both before the output
// directory.
func (r *ValidationResult) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return r.Errors[0].Err
}

func (r *ValidationResult) add(finding ConfigValidationError) {
	if finding.Severity == SeverityError {
		r.Errors = append(r.Errors, finding)
	} else {
		r.Warnings = append(r.Warnings, finding)
	}
}

func errorFinding(field string, err *ConfigError) ConfigValidationError {
	return ConfigValidationError{
		Field:    field,
		Message:  err.Error(),
		Severity: SeverityError,
		Err:      err,
	}
}

func warningFinding(field, message string) ConfigValidationError {
	return ConfigValidationError{
		Field:    field,
		Message:  message,
		Severity: SeverityWarning,
	}
}

// validateInput checks that the input path exists and is a regular file.
func validateInput(path string) []ConfigValidationError {
	if path == "" {
		return []ConfigValidationError{errorFinding("input", &ConfigError{Type: InputMissing})}
	}

	info, cerr := statPath(path, InputNotFound)
	if cerr != nil {
		return []ConfigValidationError{errorFinding("input", cerr)}
	}
	if !info.Mode().IsRegular() {
		return []ConfigValidationError{errorFinding("input", &ConfigError{Type: InputNotAFile, Path: path})}
	}

	var findings []ConfigValidationError
	if info.Size() == 0 {
		findings = append(findings, warningFinding("input", "input file is empty: "+path))
	}
	if !hasFastaExtension(path) {
		findings = append(findings, warningFinding("input", "input file does not have a fasta extension: "+path))
	}
	if abs, err := filepath.Abs(path); err == nil {
		if name := DirName(filepath.Dir(abs)); !strings.Contains(name, "_") {
			findings = append(findings, warningFinding("input",
				"directory name has no method tag, prefix will carry the isolate only: "+name))
		}
	}
	return findings
}

// validateOutputDir checks that an explicitly given output directory exists.
// An empty path means the input's directory and is always valid.
func validateOutputDir(dir string) []ConfigValidationError {
	if dir == "" {
		return nil
	}

	info, cerr := statPath(dir, OutputDirNotFound)
	if cerr != nil {
		return []ConfigValidationError{errorFinding("output", cerr)}
	}
	if !info.IsDir() {
		return []ConfigValidationError{errorFinding("output", &ConfigError{Type: OutputNotADirectory, Path: dir})}
	}
	return nil
}

func hasFastaExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range FastaExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
