// Package importer folds a sequence of raw path lines into a single tree.
//
// Lines are applied strictly in order, each one against the tree produced by
// the previous line. The line source is injected as an iter.Seq2 so the
// importer does not care whether lines come from memory, a file or a socket.
package importer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/specialistvlad/pathtree/internal/segment"
	"github.com/specialistvlad/pathtree/internal/tree"
)

// ReadError reports a failure of the line source. Err is the source error as
// it was received.
type ReadError struct {
	// Line is the 1-based number of the line that could not be read.
	Line int
	Err  error
}

// Error implements the error interface for ReadError.
func (e *ReadError) Error() string {
	return fmt.Sprintf("reading line %d: %v", e.Line, e.Err)
}

// Unwrap returns the source error.
func (e *ReadError) Unwrap() error {
	return e.Err
}

// Importer applies path lines to a tree. The zero value is ready to use.
type Importer struct {
	// OnMerge, when set, is called after every merged line with the 1-based
	// line number, the line text and the resulting tree.
	OnMerge func(line int, text string, root *tree.Node)
}

// ImportLines merges every line into root and returns the final tree. On the
// first source error it stops and returns the tree built from the lines
// before it, together with a *ReadError.
func (im *Importer) ImportLines(root *tree.Node, lines iter.Seq2[string, error]) (*tree.Node, error) {
	lineNo := 0
	for text, err := range lines {
		lineNo++
		if err != nil {
			return root, &ReadError{Line: lineNo, Err: err}
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		root = tree.Merge(root, segment.ParseLine(text))
		if im.OnMerge != nil {
			im.OnMerge(lineNo, text, root)
		}
	}
	return root, nil
}

// ImportLines is a shorthand for the zero Importer.
func ImportLines(root *tree.Node, lines iter.Seq2[string, error]) (*tree.Node, error) {
	var im Importer
	return im.ImportLines(root, lines)
}

// Lines exposes r as a lazy line sequence. Lines have no length limit; line
// terminators ("\n" or "\r\n") are stripped. A read failure is yielded once
// as the final element.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if line != "" {
				line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
				if !yield(line, nil) {
					return
				}
			}
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield("", err)
				return
			}
		}
	}
}

// Strings exposes an in-memory slice as a line sequence.
func Strings(lines []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, line := range lines {
			if !yield(line, nil) {
				return
			}
		}
	}
}
