package structdiff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	addColor     = color.New(color.FgGreen)
	deleteColor  = color.New(color.FgRed)
	replaceColor = color.New(color.FgBlue)
)

// FormatPrettyString is a convenience wrapper that outputs to a string
// instead of an io.Writer
func FormatPrettyString(changes Deltas) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, changes); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatPretty writes a text report to w, one line per operation:
// green "+" for adds, red "-" for deletes, blue "r" for replaces. Color
// follows the color package's global state; set color.NoColor to force
// plain output.
func FormatPretty(w io.Writer, changes Deltas) error {
	for _, d := range changes {
		c := replaceColor
		switch d.Type {
		case DTAdd:
			c = addColor
		case DTDelete:
			c = deleteColor
		}

		if d.Type == DTDelete {
			if _, err := c.Fprintf(w, "%s %s\n", d.Type, d.Path); err != nil {
				return err
			}
			continue
		}
		data, err := json.Marshal(d.Value)
		if err != nil {
			return err
		}
		if _, err := c.Fprintf(w, "%s %s: %s\n", d.Type, d.Path, data); err != nil {
			return err
		}
	}
	return nil
}

// FormatStats prints a one-line summary of a script's operation counts
func FormatStats(sc *EditScript) string {
	if sc == nil {
		return ""
	}

	adds, deletes, replaces := sc.Counts()
	buf := &bytes.Buffer{}

	addsWord := "adds"
	if adds == 1 {
		addsWord = "add"
	}
	fmt.Fprintf(buf, "%s.", addColor.Sprintf("%d %s", adds, addsWord))

	deletesWord := "deletes"
	if deletes == 1 {
		deletesWord = "delete"
	}
	fmt.Fprintf(buf, " %s.", deleteColor.Sprintf("%d %s", deletes, deletesWord))

	replacesWord := "replaces"
	if replaces == 1 {
		replacesWord = "replace"
	}
	fmt.Fprintf(buf, " %s.", replaceColor.Sprintf("%d %s", replaces, replacesWord))

	fmt.Fprintf(buf, " distance %d.\n", adds+deletes+replaces)
	return buf.String()
}
