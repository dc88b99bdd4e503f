/*
Package pnm reads and writes the plain text portable anymap formats used as
the pixel stream for tiled grids: P2 for grayscale and P3 for color.

A stream is a magic token, the width, the height, a maximum value (ignored,
written as 255) and then height*width samples in row-major order; one integer
per grayscale pixel or an r g b triple per color pixel. Tokens are separated
by any whitespace and a '#' starts a comment that runs to the end of the
line.
*/
package pnm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jpfielding/tilegrid/pkg/grid"
	"github.com/jpfielding/tilegrid/pkg/pixel"
)

const (
	MagicGray  = "P2"
	MagicColor = "P3"
	MaxValue   = 255
)

var (
	ErrFormat    = errors.New("pnm: invalid format")
	ErrTruncated = errors.New("pnm: not enough pixel data")
	ErrMismatch  = errors.New("pnm: pixel channels do not match image kind")
)

// tokenizer yields whitespace separated tokens with comments removed.
type tokenizer struct {
	sc      *bufio.Scanner
	pending []string
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &tokenizer{sc: sc}
}

func (t *tokenizer) next() (string, error) {
	for len(t.pending) == 0 {
		if !t.sc.Scan() {
			if err := t.sc.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		line := t.sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		t.pending = strings.Fields(line)
	}
	tok := t.pending[0]
	t.pending = t.pending[1:]
	return tok, nil
}

func (t *tokenizer) nextInt(what string) (int, error) {
	tok, err := t.next()
	if err == io.EOF {
		return 0, fmt.Errorf("%w: reading %s", ErrTruncated, what)
	}
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrFormat, what, tok)
	}
	return v, nil
}

// Read parses a P2 or P3 stream into a fully populated image.
func Read(r io.Reader) (*grid.Image, error) {
	t := newTokenizer(r)

	magic, err := t.next()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty stream", ErrFormat)
	}
	if err != nil {
		return nil, err
	}
	var gray bool
	switch magic {
	case MagicGray:
		gray = true
	case MagicColor:
	default:
		return nil, fmt.Errorf("%w: unknown magic %q", ErrFormat, magic)
	}

	width, err := t.nextInt("width")
	if err != nil {
		return nil, err
	}
	height, err := t.nextInt("height")
	if err != nil {
		return nil, err
	}
	if _, err := t.nextInt("max value"); err != nil {
		return nil, err
	}

	m, err := grid.New(height, width, gray)
	if err != nil {
		return nil, fmt.Errorf("pnm: %w", err)
	}

	channels := 3
	if gray {
		channels = 1
	}
	vals := make([]int, channels)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for i := range vals {
				v, err := t.nextInt("pixel data")
				if err != nil {
					return nil, err
				}
				vals[i] = v
			}
			p, err := pixel.FromValues(vals)
			if err != nil {
				return nil, err
			}
			if err := m.SetPixel(y, x, p); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*grid.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return Read(bufio.NewReader(f))
}

// Write encodes r as P2 when it is grayscale and P3 otherwise. Grayscale
// rows are written one image row per line, color pixels one triple per line.
func Write(w io.Writer, r grid.Raster) error {
	bw := bufio.NewWriter(w)
	magic := MagicColor
	if r.Grayscale() {
		magic = MagicGray
	}
	fmt.Fprintf(bw, "%s\n%d %d\n%d\n", magic, r.Width(), r.Height(), MaxValue)

	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			p, err := r.GetPixel(y, x)
			if err != nil {
				return err
			}
			if p.IsGray() != r.Grayscale() {
				return fmt.Errorf("%w: %s at (%d,%d)", ErrMismatch, p, y, x)
			}
			for _, v := range p.Values() {
				bw.WriteString(strconv.Itoa(v))
				bw.WriteByte(' ')
			}
			if !r.Grayscale() {
				bw.WriteByte('\n')
			}
		}
		if r.Grayscale() {
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// WriteFile creates path and writes r to it.
func WriteFile(path string, r grid.Raster) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Write(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
