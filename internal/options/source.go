package options

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoSource is returned by Reload when no source is configured.
var ErrNoSource = errors.New("no option source configured")

// Source supplies the reloadable suffix of a List.
type Source interface {
	ReadLines() ([]string, error)
}

// FileSource reads one option per line from a file.
type FileSource struct {
	Path string
}

// ReadLines returns every line of the file with the trailing newline removed
// and tabs replaced by spaces. A final line without a newline still counts.
func (f FileSource) ReadLines() ([]string, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.Path, err)
	}
	defer fh.Close()
	lines, err := readLines(fh)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Path, err)
	}
	return lines, nil
}

func readLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	lines := []string{}
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			lines = append(lines, Sanitize(strings.TrimSuffix(line, "\n")))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Reload re-reads the suffix from src and returns the new list together with
// the reconciled highlight. The option under highlight is located again by
// its text; the first exact match wins. When the text is gone the prior
// numeric highlight is returned unchanged and the caller clamps it.
//
// On a read error the current list is returned as is, along with the error.
func Reload(cur List, src Source, highlight int) (List, int, error) {
	if src == nil {
		return cur, highlight, ErrNoSource
	}
	anchor, hasAnchor := cur.Anchor(highlight)

	lines, err := src.ReadLines()
	if err != nil {
		return cur, highlight, err
	}
	next := cur.WithSuffix(lines)

	if hasAnchor {
		if i := next.Index(anchor); i >= 0 {
			highlight = i
		}
	}
	return next, highlight, nil
}
