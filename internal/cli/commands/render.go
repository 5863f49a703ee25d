package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"numkit/internal/config"
	"numkit/seqs"
	"numkit/sliceutil"
)

// Renderer writes command results in the configured output mode.
type Renderer struct {
	w    io.Writer
	mode string
}

// NewRenderer creates a renderer for one of the config output modes.
// Unknown modes fall back to text.
func NewRenderer(w io.Writer, mode string) *Renderer {
	return &Renderer{w: w, mode: mode}
}

// List renders a column of values: one per line in text mode, an indexed
// table in table mode and a JSON array in json mode.
func (r *Renderer) List(label string, values []string) error {
	switch r.mode {
	case config.OutputJSON:
		if values == nil {
			values = []string{}
		}
		return r.json(values)
	case config.OutputTable:
		rows := make([][]string, 0, len(values))
		for i, v := range seqs.Enumerate(slices.Values(values)) {
			rows = append(rows, []string{strconv.Itoa(i), v})
		}
		return r.table([]string{"#", label}, rows)
	default:
		for _, v := range values {
			if _, err := fmt.Fprintln(r.w, v); err != nil {
				return err
			}
		}
		return nil
	}
}

// Table renders rows under cols. Text mode prints each row tab-separated
// without a header; json mode prints an array of objects keyed by column.
func (r *Renderer) Table(cols []string, rows [][]string) error {
	switch r.mode {
	case config.OutputJSON:
		return r.json(sliceutil.Map(rows, func(row []string) map[string]string {
			obj := make(map[string]string, len(cols))
			for i, col := range cols {
				if i < len(row) {
					obj[col] = row[i]
				}
			}
			return obj
		}))
	case config.OutputTable:
		return r.table(cols, rows)
	default:
		for _, row := range rows {
			if _, err := fmt.Fprintln(r.w, strings.Join(row, "\t")); err != nil {
				return err
			}
		}
		return nil
	}
}

func (r *Renderer) table(cols []string, rows [][]string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(r.w, "(0 rows)")
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(toRow(cols))
	for _, row := range rows {
		t.AppendRow(toRow(row))
	}
	t.Render()
	return nil
}

func (r *Renderer) json(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func toRow(cells []string) table.Row {
	return sliceutil.Map(cells, func(s string) any { return s })
}
