// Package rewriter streams an assembly file and rewrites its headers.
package rewriter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"fastaheader/internal/header"
)

// IOErrorType represents the stage at which an I/O error occurred.
type IOErrorType string

const (
	// OpenInputFailed indicates the input file could not be opened.
	OpenInputFailed IOErrorType = "OPEN_INPUT_FAILED"
	// CreateOutputFailed indicates the output file could not be created.
	CreateOutputFailed IOErrorType = "CREATE_OUTPUT_FAILED"
	// ReadFailed indicates a read from the input failed mid-stream.
	ReadFailed IOErrorType = "READ_FAILED"
	// WriteFailed indicates a write to the output failed mid-stream.
	WriteFailed IOErrorType = "WRITE_FAILED"
	// OutputIsInput indicates the output path resolves to the input file.
	OutputIsInput IOErrorType = "OUTPUT_IS_INPUT"
)

// IOError represents an error that occurred while rewriting a file.
type IOError struct {
	Type IOErrorType
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Path)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Stats counts the lines seen during a rewrite.
type Stats struct {
	Lines    int // All lines, headers included
	Headers  int
	Circular int
	Linear   int
}

// Rewrite copies r to w line by line. Header lines are replaced with the
// canonical header for prefix; every other line is written unchanged,
// including its terminator.
func Rewrite(r io.Reader, w io.Writer, prefix string) (Stats, error) {
	var stats Stats

	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	for {
		line, readErr := br.ReadString('\n')
		if line != "" {
			stats.Lines++
			out := line
			if header.IsHeader(line) {
				md := header.Parse(line)
				out = md.Format(prefix)
				stats.Headers++
				if md.Topology != header.LinearTopology {
					stats.Circular++
				} else {
					stats.Linear++
				}
			}
			if _, err := bw.WriteString(out); err != nil {
				return stats, &IOError{Type: WriteFailed, Err: err}
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return stats, &IOError{Type: ReadFailed, Err: readErr}
		}
	}

	if err := bw.Flush(); err != nil {
		return stats, &IOError{Type: WriteFailed, Err: err}
	}
	return stats, nil
}

// RewriteFile rewrites inPath into outPath. Both files are closed on every
// return path. A partially written output is left in place on failure.
func RewriteFile(inPath, outPath, prefix string) (stats Stats, err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return stats, &IOError{Type: OpenInputFailed, Path: inPath, Err: err}
	}
	defer in.Close()

	if same, serr := sameFile(in, outPath); serr == nil && same {
		return stats, &IOError{Type: OutputIsInput, Path: outPath}
	}

	out, err := os.Create(outPath)
	if err != nil {
		return stats, &IOError{Type: CreateOutputFailed, Path: outPath, Err: err}
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = &IOError{Type: WriteFailed, Path: outPath, Err: cerr}
		}
	}()

	stats, err = Rewrite(in, out, prefix)
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			ioErr.Path = inPath
			if ioErr.Type == WriteFailed {
				ioErr.Path = outPath
			}
		}
		return stats, err
	}
	return stats, nil
}

// CountFile runs the rewrite of inPath without writing anything and returns
// the stats a real rewrite would produce.
func CountFile(inPath, prefix string) (Stats, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return Stats{}, &IOError{Type: OpenInputFailed, Path: inPath, Err: err}
	}
	defer in.Close()

	stats, err := Rewrite(in, io.Discard, prefix)
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			ioErr.Path = inPath
		}
		return stats, err
	}
	return stats, nil
}

// sameFile reports whether outPath names the already opened input file.
func sameFile(in *os.File, outPath string) (bool, error) {
	inInfo, err := in.Stat()
	if err != nil {
		return false, err
	}
	outInfo, err := os.Stat(outPath)
	if err != nil {
		return false, err
	}
	return os.SameFile(inInfo, outInfo), nil
}
