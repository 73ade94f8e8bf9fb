package terrain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrTruncated reports a DEM stream that ends before all samples are read.
var ErrTruncated = errors.New("dem: truncated height data")

// LoadDEM reads a whitespace-separated elevation model: the sample counts
// "width height" followed by width*height heights in row-major order. The
// resulting grid is centred on the world origin.
func LoadDEM(r io.Reader, cellSize float32) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	next := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", ErrTruncated
		}
		return sc.Text(), nil
	}

	var dims [2]int
	for i := range dims {
		tok, err := next()
		if err != nil {
			return nil, fmt.Errorf("dem header: %w", err)
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("dem header: %w", err)
		}
		if v < 2 {
			return nil, fmt.Errorf("dem header: dimension %d must be at least 2", v)
		}
		dims[i] = v
	}

	g := NewGrid(dims[0], dims[1], cellSize)
	cells := g.Cells()
	for i := range cells {
		tok, err := next()
		if err != nil {
			return nil, fmt.Errorf("dem sample %d of %d: %w", i, len(cells), err)
		}
		v, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return nil, fmt.Errorf("dem sample %d: %w", i, err)
		}
		cells[i] = float32(v)
	}
	g.Center()
	return g, nil
}

// LoadDEMFile opens path and parses it with LoadDEM.
func LoadDEMFile(path string, cellSize float32) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open terrain: %w", err)
	}
	defer f.Close()

	g, err := LoadDEM(f, cellSize)
	if err != nil {
		return nil, fmt.Errorf("load terrain %s: %w", path, err)
	}
	return g, nil
}
