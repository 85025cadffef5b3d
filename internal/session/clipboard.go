package session

import (
	"fmt"

	clipboard "golang.design/x/clipboard"

	"github.com/annotext/mcp-pdf-comments/internal/comments"
)

// Maximum clipboard payload in bytes (10MB) - helps avoid X11
// BadLength errors on Linux.
const maxClipboardSize = 10 * 1024 * 1024

// writeClipboard hands data to the system clipboard. The clipboard is
// initialised lazily on first use; initialisation or write failures
// surface as ErrSinkFailure and leave session state untouched.
func (s *Session) writeClipboard(data []byte) (err error) {
	if len(data) > maxClipboardSize {
		return fmt.Errorf("%w: export too large for clipboard (%d bytes, max %d bytes); try selecting fewer rows",
			comments.ErrSinkFailure, len(data), maxClipboardSize)
	}

	s.clipOnce.Do(func() {
		s.clipOK = clipboard.Init() == nil
	})
	if !s.clipOK {
		return fmt.Errorf("%w: clipboard not available", comments.ErrSinkFailure)
	}

	// The clipboard library panics on some platform-level failures.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: clipboard write failed: %v", comments.ErrSinkFailure, r)
		}
	}()

	clipboard.Write(clipboard.FmtText, data)
	return nil
}
