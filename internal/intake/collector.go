// ABOUTME: Interactive terminal questionnaire that gathers raw tokens section by section.
// ABOUTME: Reads one line per field; EOF ends collection and leaves the rest absent.
package intake

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Collector asks for each field on Out and reads answers from In.
type Collector struct {
	In  io.Reader
	Out io.Writer
	// Keys restricts the questionnaire to these keys. Nil means InteractiveKeys.
	Keys []string
}

// AllKeys returns every catalog key in collection order.
func AllKeys() []string {
	keys := make([]string, 0, len(Catalog))
	for _, f := range Catalog {
		keys = append(keys, f.Key)
	}
	return keys
}

// Collect runs the questionnaire and returns the answers.
// Read errors other than EOF are returned along with whatever was collected so far.
func (c *Collector) Collect() (Raw, error) {
	keys := c.Keys
	if keys == nil {
		keys = InteractiveKeys
	}
	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		wanted[k] = true
	}

	raw := Raw{}
	in := bufio.NewReader(c.In)

	fmt.Fprintln(c.Out, "COMPREHENSIVE HEALTH DATA INPUT")
	fmt.Fprintln(c.Out, strings.Repeat("=", 50))
	fmt.Fprintf(c.Out, "Please provide your health metrics. Enter '%s' for any metric you don't have.\n", SkipToken)

	for _, group := range Groups {
		fields := fieldsIn(group, wanted)
		if len(fields) == 0 {
			continue
		}
		fmt.Fprintf(c.Out, "\n%s:\n", GroupTitles[group])

		for _, f := range fields {
			fmt.Fprintf(c.Out, "%s: ", f.Prompt)
			line, err := in.ReadString('\n')
			if line != "" {
				raw[f.Key] = strings.TrimSpace(line)
			}
			if err != nil {
				fmt.Fprintln(c.Out)
				if errors.Is(err, io.EOF) {
					return raw, nil
				}
				return raw, fmt.Errorf("read %s: %w", f.Key, err)
			}
		}
	}

	return raw, nil
}

func fieldsIn(group Group, wanted map[string]bool) []Field {
	var out []Field
	for _, f := range Catalog {
		if f.Group == group && wanted[f.Key] {
			out = append(out, f)
		}
	}
	return out
}
