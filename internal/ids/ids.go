// Package ids generates client-side entity identifiers. A millisecond
// timestamp prefix keeps ids roughly ordered by creation time; a uuid
// fragment keeps them unique within a session. No cross-user uniqueness is
// required.
package ids

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// New returns a fresh opaque identifier.
func New() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
