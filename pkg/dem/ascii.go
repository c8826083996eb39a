package dem

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadASCII parses an ESRI ASCII grid: a header of "key value" lines
// (ncols, nrows, xllcorner, yllcorner, cellsize, nodata_value) followed by
// nrows rows of ncols whitespace-separated elevations, northernmost row first.
func LoadASCII(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var (
		ncols, nrows = -1, -1
		nodata       float64
		hasNodata    bool
		headerDone   bool
		grid         *Grid
		row          int
	)

	flushHeader := func() error {
		if ncols <= 0 || nrows <= 0 {
			return fmt.Errorf("dem: ascii grid missing ncols/nrows header")
		}
		grid = NewGrid(ncols, nrows)
		if hasNodata {
			grid.SetNodata(nodata)
		}
		headerDone = true
		return nil
	}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		if !headerDone {
			// Header lines are "key value"; the first row of numbers ends the header.
			if len(fields) == 2 {
				key := strings.ToLower(fields[0])
				switch key {
				case "ncols", "nrows":
					n, err := strconv.Atoi(fields[1])
					if err != nil {
						return nil, fmt.Errorf("dem: parsing %s: %w", key, err)
					}
					if key == "ncols" {
						ncols = n
					} else {
						nrows = n
					}
					continue
				case "xllcorner", "yllcorner", "cellsize":
					if _, err := strconv.ParseFloat(fields[1], 64); err != nil {
						return nil, fmt.Errorf("dem: parsing %s: %w", key, err)
					}
					continue
				case "nodata_value":
					v, err := strconv.ParseFloat(fields[1], 64)
					if err != nil {
						return nil, fmt.Errorf("dem: parsing nodata_value: %w", err)
					}
					nodata, hasNodata = v, true
					continue
				}
			}
			if err := flushHeader(); err != nil {
				return nil, err
			}
		}

		if row >= nrows {
			return nil, fmt.Errorf("dem: ascii grid has more than %d data rows", nrows)
		}
		if len(fields) != ncols {
			return nil, fmt.Errorf("dem: row %d has %d values, want %d", row, len(fields), ncols)
		}
		for x, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("dem: row %d col %d: %w", row, x, err)
			}
			grid.Set(x, row, v)
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dem: reading ascii grid: %w", err)
	}
	if !headerDone {
		return nil, fmt.Errorf("dem: ascii grid missing ncols/nrows header")
	}
	if row != nrows {
		return nil, fmt.Errorf("dem: ascii grid has %d data rows, want %d", row, nrows)
	}
	return grid, nil
}

// ReadFile loads an ESRI ASCII grid from disk.
func ReadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dem: opening %s: %w", path, err)
	}
	defer f.Close()
	g, err := LoadASCII(f)
	if err != nil {
		return nil, fmt.Errorf("dem: loading %s: %w", path, err)
	}
	return g, nil
}
