package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

// Name returns the lookup key for a player name.
func Name(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
