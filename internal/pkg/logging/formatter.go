package logging

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// ConsoleFormatter renders one line per entry:
//
//	[15:04:05][INFO][runner][HQ port 3] Processing row 1 of 3 (line=2, run_id=...)
//
// The component and the row target are lifted into brackets, every other
// field follows the message in key order.
type ConsoleFormatter struct {
	ShowTime bool
}

// Format renders a single log entry
func (f *ConsoleFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	if f.ShowTime {
		fmt.Fprintf(b, "[%s]", entry.Time.Format("15:04:05"))
	}
	fmt.Fprintf(b, "[%s]", strings.ToUpper(entry.Level.String()))

	if component, ok := entry.Data[FieldComponent]; ok {
		fmt.Fprintf(b, "[%v]", component)
	}
	if target := rowTarget(entry.Data); target != "" {
		fmt.Fprintf(b, "[%s]", target)
	}

	b.WriteString(" ")
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		switch key {
		case FieldComponent, FieldNetwork, FieldPort:
		default:
			keys = append(keys, key)
		}
	}
	if len(keys) > 0 {
		sort.Strings(keys)
		b.WriteString(" (")
		for i, key := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%s=%v", key, entry.Data[key])
		}
		b.WriteString(")")
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// rowTarget names the network and port an entry is about. An empty port is
// shown as "port -" so skipped rows still read as a row.
func rowTarget(data logrus.Fields) string {
	network, hasNetwork := data[FieldNetwork]
	port, hasPort := data[FieldPort]

	switch {
	case hasNetwork && hasPort:
		return fmt.Sprintf("%v port %s", network, orDash(port))
	case hasNetwork:
		return fmt.Sprint(network)
	case hasPort:
		return "port " + orDash(port)
	default:
		return ""
	}
}

func orDash(v interface{}) string {
	if s := fmt.Sprint(v); s != "" {
		return s
	}
	return "-"
}
