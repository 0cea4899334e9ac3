package blitfx

import (
	"fmt"
	"os"
)

// logf writes a prefixed diagnostic line to stderr.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[blitfx] "+format+"\n", args...)
}
