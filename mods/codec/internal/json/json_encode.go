package json

import (
	gojson "encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/mapsmith/mapview/mods/stream/spec"
)

type Exporter struct {
	tick time.Time
	nrow int

	Output    spec.OutputStream
	Rownum    bool
	Heading   bool
	Precision int
}

func NewEncoder() *Exporter {
	return &Exporter{tick: time.Now(), Precision: -1}
}

func (ex *Exporter) ContentType() string {
	return "application/json"
}

func (ex *Exporter) Open(cols ...string) error {
	names := cols
	if ex.Rownum {
		names = append([]string{"ROWNUM"}, names...)
	}

	columnsJson, _ := gojson.Marshal(names)

	header := fmt.Sprintf(`{"data":{"columns":%s,"rows":[`, string(columnsJson))
	ex.Output.Write([]byte(header))

	return nil
}

func (ex *Exporter) Close() {
	footer := fmt.Sprintf(`]}, "success":true, "reason":"success", "elapse":"%s"}`, time.Since(ex.tick).String())
	ex.Output.Write([]byte(footer))
	ex.Output.Close()
}

func (ex *Exporter) Flush(heading bool) {
	ex.Output.Flush()
}

func (ex *Exporter) AddRow(source []any) error {
	ex.nrow++

	values := make([]any, len(source))
	for i, field := range source {
		values[i] = field
		if v, ok := field.(*float64); ok {
			values[i] = jsonSafe(*v)
		} else if v, ok := field.(float64); ok {
			values[i] = jsonSafe(v)
		}
	}
	var recJson []byte
	var err error
	if ex.Rownum {
		vs := append([]any{ex.nrow}, values...)
		recJson, err = gojson.Marshal(vs)
	} else {
		recJson, err = gojson.Marshal(values)
	}
	if err != nil {
		return err
	}

	if ex.nrow > 1 {
		ex.Output.Write([]byte(","))
	}
	ex.Output.Write(recJson)

	return nil
}

// jsonSafe substitutes the float values JSON cannot carry.
func jsonSafe(v float64) any {
	if math.IsNaN(v) {
		return "NaN"
	} else if math.IsInf(v, -1) {
		return "-Inf"
	} else if math.IsInf(v, 1) {
		return "+Inf"
	}
	return v
}
