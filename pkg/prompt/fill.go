package prompt

import (
	"context"
	"fmt"

	"github.com/goliatone/go-blockgen/pkg/codeblock"
)

// FillMissing prompts for a value for each of the named placeholders and
// returns the property list extended with the answers, preserving the order
// the names were reported in.
func FillMissing(ctx context.Context, driver Driver, properties []codeblock.Property, names []string) ([]codeblock.Property, error) {
	out := append([]codeblock.Property(nil), properties...)
	for _, name := range names {
		value, err := driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("Value for %q:", name),
			Help:    "the template requires this placeholder",
		})
		if err != nil {
			return nil, err
		}
		out = append(out, codeblock.Property{Key: name, Value: value})
	}
	return out, nil
}
