// Package logging provides the colored text formatter used by the demo
// binary. Library packages log through whatever logrus logger the host hands
// them and never touch formatting.
package logging

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// TextFormatter renders logrus entries as colored single-line text with
// action fields pulled to the front.
type TextFormatter struct {
	// TimestampFormat defaults to time.RFC3339.
	TimestampFormat string
}

// NewTextFormatter returns a formatter with default settings.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: time.RFC3339}
}

// fieldPriority orders the fields the action framework emits ahead of
// everything else.
var fieldPriority = map[string]int{
	"name":     1,
	"action":   2,
	"event":    3,
	"status":   4,
	"leftover": 5,
	"error":    6,
}

// Format implements logrus.Formatter.
func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	tsFormat := f.TimestampFormat
	if tsFormat == "" {
		tsFormat = time.RFC3339
	}

	lc := levelColor(entry.Level)
	color.New(color.FgYellow).Fprint(b, entry.Time.Format(tsFormat))
	b.WriteByte(' ')
	lc.Fprintf(b, "%-7s", strings.ToUpper(entry.Level.String()))
	b.WriteByte(' ')
	lc.Fprint(b, entry.Message)

	for _, k := range sortedKeys(entry.Data) {
		b.WriteByte(' ')
		keyColor := color.New(color.FgCyan)
		if _, important := fieldPriority[k]; important {
			keyColor = color.New(color.FgGreen)
		}
		keyColor.Fprintf(b, "%s=", k)
		fmt.Fprint(b, formatValue(entry.Data[k]))
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func formatValue(v interface{}) string {
	switch v := v.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case error:
		return fmt.Sprintf("%q", v.Error())
	default:
		return fmt.Sprintf("%v", v)
	}
}

func sortedKeys(data logrus.Fields) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		iPriority, iKnown := fieldPriority[keys[i]]
		jPriority, jKnown := fieldPriority[keys[j]]
		switch {
		case iKnown && jKnown:
			return iPriority < jPriority
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

func levelColor(level logrus.Level) *color.Color {
	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return color.New(color.FgBlue)
	case logrus.InfoLevel:
		return color.New(color.FgGreen)
	case logrus.WarnLevel:
		return color.New(color.FgYellow)
	case logrus.ErrorLevel:
		return color.New(color.FgRed)
	case logrus.FatalLevel, logrus.PanicLevel:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgWhite)
	}
}
