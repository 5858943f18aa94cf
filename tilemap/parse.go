package tilemap

import (
	"bufio"
	"fmt"
	"strings"
)

// Parse builds a grid from an ASCII layout, one line per row:
//
//	'.' or ' '  empty
//	'P'         spawn marker
//	'#'         first solid id
//	'0'..'9'    that tile id
//
// Short rows are padded with the empty id. Leading and trailing blank lines
// are dropped.
func Parse(layout string, opts Options) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(strings.NewReader(layout))
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan layout: %w", err)
	}
	for len(rows) > 0 && strings.TrimSpace(rows[0]) == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}

	width := 0
	for _, r := range rows {
		if n := len([]rune(r)); n > width {
			width = n
		}
	}

	g := NewGrid(width, len(rows), opts)
	for row, line := range rows {
		for col, ch := range []rune(line) {
			id, err := runeID(ch, opts)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", row, col, err)
			}
			g.Set(col, row, id)
		}
	}
	return g, nil
}

// MustParse is Parse for layouts known to be valid.
func MustParse(layout string, opts Options) *Grid {
	g, err := Parse(layout, opts)
	if err != nil {
		panic(err)
	}
	return g
}

func runeID(ch rune, opts Options) (int, error) {
	switch {
	case ch == '.' || ch == ' ':
		return opts.Empty, nil
	case ch == 'P':
		return opts.Spawn, nil
	case ch == '#':
		if len(opts.Solid) == 0 {
			return 0, fmt.Errorf("'#' used with an empty solid set")
		}
		return opts.Solid[0], nil
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), nil
	}
	return 0, fmt.Errorf("unknown tile %q", ch)
}
