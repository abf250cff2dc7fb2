package command

import (
	"fmt"
	"io"

	"github.com/keshon/minigit/internal/repo/meta"
)

// DateLayout is how commit timestamps are shown, in local time.
const DateLayout = "Mon Jan 02 15:04:05 2006 -0700"

// WriteLogEntry prints one commit the way log and global-log show it.
func WriteLogEntry(w io.Writer, c *meta.Commit) {
	fmt.Fprintf(w, "===\ncommit %s\nDate: %s\n%s\n\n", c.ID(), c.Timestamp().Local().Format(DateLayout), c.Message())
}
