// Package view renders result sets for the terminal.
package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/storeadmin/internal/client/i18n"
	"github.com/dmitrijs2005/storeadmin/internal/client/models"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/message"
)

// Missing is shown for absent or null values.
const Missing = "-"

// Table writes records as a table with d's columns. An empty set renders a
// single "no data" row.
func Table(w io.Writer, d models.Descriptor, records []models.Record, cat i18n.Catalog) {
	t := tablewriter.NewWriter(w)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)

	header := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		header[i] = c.Label
		if header[i] == "" {
			header[i] = c.Name
		}
	}
	t.SetHeader(header)

	if len(records) == 0 {
		row := make([]string, len(d.Columns))
		if len(row) > 0 {
			row[0] = cat.NoData
		}
		t.Append(row)
		t.Render()
		return
	}

	p := cat.Printer()
	for _, r := range records {
		row := make([]string, len(d.Columns))
		for i, c := range d.Columns {
			row[i] = Cell(d, c, r, cat, p)
		}
		t.Append(row)
	}
	t.Render()
}

// Cell renders one column of r.
func Cell(d models.Descriptor, c models.Column, r models.Record, cat i18n.Catalog, p *message.Printer) string {
	if len(c.Fields) > 0 {
		parts := make([]string, 0, len(c.Fields))
		for _, f := range c.Fields {
			if v := r.String(f); v != "" {
				parts = append(parts, v)
			}
		}
		if len(parts) == 0 {
			return Missing
		}
		return strings.Join(parts, " ")
	}

	if !r.Has(c.Name) {
		return Missing
	}
	v := r.String(c.Name)
	if v == "" {
		return Missing
	}

	f, ok := d.Field(c.Name)
	if !ok {
		return v
	}
	switch {
	case f.Numeric():
		return Number(p, v)
	case f.Kind == models.FieldEnum:
		return cat.Status(v)
	}
	return v
}

// Number groups digits of a decimal string, keeping its precision. Values
// that do not parse are returned unchanged.
func Number(p *message.Printer, v string) string {
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return p.Sprintf("%d", n)
	}
	x, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return v
	}
	decimals := 0
	if i := strings.IndexByte(v, '.'); i >= 0 && !strings.ContainsAny(v, "eE") {
		decimals = len(v) - i - 1
	}
	return p.Sprintf(fmt.Sprintf("%%.%df", decimals), x)
}

// History writes journal entries, newest first as given.
func History(w io.Writer, entries []models.JournalEntry, cat i18n.Catalog) {
	t := tablewriter.NewWriter(w)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetHeader([]string{"Time", "Resource", "Action", "ID", "Result"})

	if len(entries) == 0 {
		t.Append([]string{cat.NoData, "", "", "", ""})
		t.Render()
		return
	}
	for _, e := range entries {
		result := "ok"
		if !e.Success {
			result = e.Message
		}
		id := e.RecordID
		if id == "" {
			id = Missing
		}
		t.Append([]string{e.CreatedAt.Local().Format("2006-01-02 15:04:05"), e.Resource, e.Action, id, result})
	}
	t.Render()
}
