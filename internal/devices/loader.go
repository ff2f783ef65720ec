package devices

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

//go:embed data/devices.csv
var presetsCSV []byte

var builtin = sync.OnceValues(func() ([]Device, error) {
	return Parse(bytes.NewReader(presetsCSV))
})

// All returns the built-in presets in file order.
func All() ([]Device, error) {
	ds, err := builtin()
	if err != nil {
		return nil, err
	}
	return append([]Device(nil), ds...), nil
}

// Lookup finds a built-in preset by slug, ignoring case.
func Lookup(slug string) (Device, bool) {
	ds, err := builtin()
	if err != nil {
		return Device{}, false
	}
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, d := range ds {
		if d.Slug == slug {
			return d, true
		}
	}
	return Device{}, false
}

// Parse reads presets from CSV with a slug,name,platform,width,height
// header. Column order is taken from the header.
func Parse(r io.Reader) ([]Device, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("device csv has no header")
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.TrimSpace(h)] = i
	}
	for _, name := range []string{"slug", "width", "height"} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("device csv: missing column %q", name)
		}
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := []Device{}
	for n, row := range rows[1:] {
		d := Device{
			Slug:     strings.ToLower(get(row, "slug")),
			Name:     get(row, "name"),
			Platform: strings.ToLower(get(row, "platform")),
		}
		if d.Slug == "" {
			continue
		}
		if d.Width, err = strconv.Atoi(get(row, "width")); err != nil {
			return nil, fmt.Errorf("device csv line %d: width: %w", n+2, err)
		}
		if d.Height, err = strconv.Atoi(get(row, "height")); err != nil {
			return nil, fmt.Errorf("device csv line %d: height: %w", n+2, err)
		}
		out = append(out, d)
	}
	return out, nil
}
