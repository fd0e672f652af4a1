package csv

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"sync"
	"unicode/utf8"

	"github.com/paulmach/orb"

	"github.com/mapsmith/mapview/mods/nums"
	"github.com/mapsmith/mapview/mods/stream/spec"
)

type Exporter struct {
	rownum int64

	writer   *csv.Writer
	colNames []string

	Output    spec.OutputStream
	Rownum    bool
	Heading   bool
	Precision int
	Delimiter string

	closeOnce sync.Once
}

func NewEncoder() *Exporter {
	return &Exporter{
		Precision: -1,
	}
}

func (ex *Exporter) ContentType() string {
	return "text/csv; charset=utf-8"
}

func (ex *Exporter) Open(cols ...string) error {
	ex.writer = csv.NewWriter(ex.Output)
	ex.colNames = cols

	if ex.Delimiter != "" {
		comma, _ := utf8.DecodeRuneInString(ex.Delimiter)
		ex.writer.Comma = comma
	}

	if ex.Heading {
		if ex.Rownum {
			ex.writer.Write(append([]string{"ROWNUM"}, ex.colNames...))
		} else {
			ex.writer.Write(ex.colNames)
		}
	}

	return nil
}

func (ex *Exporter) Close() {
	ex.closeOnce.Do(func() {
		ex.writer.Flush()
		ex.Output.Close()
	})
}

func (ex *Exporter) Flush(heading bool) {
	ex.writer.Flush()
	ex.Output.Flush()
}

func (ex *Exporter) AddRow(values []any) error {
	var cols = make([]string, len(values))

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
		case *bool:
			cols[i] = strconv.FormatBool(*v)
		case bool:
			cols[i] = strconv.FormatBool(v)
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
		return ex.writer.Write(append([]string{strconv.FormatInt(ex.rownum, 10)}, cols...))
	} else {
		return ex.writer.Write(cols)
	}
}
