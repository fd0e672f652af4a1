package box

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/paulmach/orb"

	"github.com/mapsmith/mapview/mods/nums"
	"github.com/mapsmith/mapview/mods/stream/spec"
)

type Exporter struct {
	writer table.Writer
	rownum int64

	Style           string
	SeparateColumns bool
	DrawBorder      bool
	Output          spec.OutputStream
	Rownum          bool
	Heading         bool
	Precision       int
}

func NewEncoder() *Exporter {
	return &Exporter{
		Style:           "default",
		SeparateColumns: true,
		DrawBorder:      true,
		Precision:       -1,
	}
}

func (ex *Exporter) ContentType() string {
	return "plain/text"
}

func (ex *Exporter) Open(cols ...string) error {
	ex.writer = table.NewWriter()
	ex.writer.SetOutputMirror(ex.Output)

	style := table.StyleDefault
	switch ex.Style {
	case "bold":
		style = table.StyleBold
	case "double":
		style = table.StyleDouble
	case "light":
		style = table.StyleLight
	case "round":
		style = table.StyleRounded
	default:
		style = table.StyleDefault
	}
	style.Options.SeparateColumns = ex.SeparateColumns
	style.Options.DrawBorder = ex.DrawBorder

	ex.writer.SetStyle(style)

	if ex.Heading {
		vs := make([]any, len(cols))
		for i, h := range cols {
			vs[i] = h
		}
		if ex.Rownum {
			ex.writer.AppendHeader(table.Row(append([]any{"ROWNUM"}, vs...)))
		} else {
			ex.writer.AppendHeader(table.Row(vs))
		}
	}

	return nil
}

func (ex *Exporter) Close() {
	if ex.writer.Length() > 0 {
		ex.writer.Render()
		ex.writer.ResetRows()
	}
	ex.Output.Close()
}

func (ex *Exporter) Flush(heading bool) {
	ex.writer.Render()
	ex.Output.Flush()

	ex.writer.ResetRows()
	if !heading {
		ex.writer.ResetHeaders()
	}
}

func (ex *Exporter) AddRow(values []any) error {
	var cols = make([]any, len(values))

	for i, r := range values {
		if r == nil {
			cols[i] = "NULL"
			continue
		}
		switch v := r.(type) {
		case *string:
			cols[i] = *v
		case string:
			cols[i] = v
		case *float64:
			cols[i] = strconv.FormatFloat(*v, 'f', ex.Precision, 64)
		case float64:
			cols[i] = strconv.FormatFloat(v, 'f', ex.Precision, 64)
		case *float32:
			cols[i] = strconv.FormatFloat(float64(*v), 'f', ex.Precision, 32)
		case float32:
			cols[i] = strconv.FormatFloat(float64(v), 'f', ex.Precision, 32)
		case *int:
			cols[i] = strconv.FormatInt(int64(*v), 10)
		case int:
			cols[i] = strconv.FormatInt(int64(v), 10)
		case *int32:
			cols[i] = strconv.FormatInt(int64(*v), 10)
		case int32:
			cols[i] = strconv.FormatInt(int64(v), 10)
		case *int64:
			cols[i] = strconv.FormatInt(*v, 10)
		case int64:
			cols[i] = strconv.FormatInt(v, 10)
		case nums.Point:
			cols[i] = v.String()
		case *nums.Extent:
			cols[i] = v.String()
		case nums.Tile:
			cols[i] = v.String()
		case orb.Point:
			cols[i] = fmt.Sprintf("[%v,%v]", v.Lon(), v.Lat())
		default:
			cols[i] = fmt.Sprintf("%T", r)
		}
	}

	ex.rownum++

	if ex.Rownum {
		ex.writer.AppendRow(table.Row(append([]any{ex.rownum}, cols...)))
	} else {
		ex.writer.AppendRow(table.Row(cols))
	}

	return nil
}
