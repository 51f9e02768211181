package esg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// MetricKind identifies which variant a MetricValue holds.
type MetricKind uint8

const (
	KindNull MetricKind = iota
	KindNumber
	KindText
	KindBool
)

func (k MetricKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	default:
		return "null"
	}
}

// MetricValue is a raw metric as reported: a number, a text value or a
// boolean. The zero value is null and stands for "not reported".
type MetricValue struct {
	kind MetricKind
	num  float64
	text string
	flag bool
}

// Number returns a numeric metric value.
func Number(v float64) MetricValue { return MetricValue{kind: KindNumber, num: v} }

// Text returns a text metric value.
func Text(s string) MetricValue { return MetricValue{kind: KindText, text: s} }

// Bool returns a boolean metric value.
func Bool(b bool) MetricValue { return MetricValue{kind: KindBool, flag: b} }

func (v MetricValue) Kind() MetricKind { return v.kind }

// Float returns the numeric value and whether the metric is a number.
// Text that happens to look numeric is not a number.
func (v MetricValue) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// IsTrue reports whether the metric is the boolean true.
func (v MetricValue) IsTrue() bool {
	return v.kind == KindBool && v.flag
}

// String renders the value for display.
func (v MetricValue) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText:
		return v.text
	case KindBool:
		return strconv.FormatBool(v.flag)
	default:
		return "null"
	}
}

func (v MetricValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return json.Marshal(v.num)
	case KindText:
		return json.Marshal(v.text)
	case KindBool:
		return json.Marshal(v.flag)
	default:
		return []byte("null"), nil
	}
}

func (v *MetricValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty metric value")
	}

	switch data[0] {
	case 'n':
		*v = MetricValue{}
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return fmt.Errorf("metric value: %w", err)
		}
		*v = Bool(b)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("metric value: %w", err)
		}
		*v = Text(s)
		return nil
	case '[', '{':
		return fmt.Errorf("metric value must be a number, string or boolean, got %s", data)
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("metric value: %w", err)
		}
		*v = Number(f)
		return nil
	}
}
