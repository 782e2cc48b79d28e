package tvision

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard holds cut and copied text. When the system clipboard is
// reachable it is kept in sync with it; otherwise the text stays local.
type Clipboard struct {
	mu     sync.Mutex
	text   string
	system bool
}

var clip = &Clipboard{system: !clipboard.Unsupported}

// SystemClipboard returns the process-wide clipboard.
func SystemClipboard() *Clipboard {
	return clip
}

// UseSystem turns system clipboard syncing on or off.
func (c *Clipboard) UseSystem(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.system = on && !clipboard.Unsupported
}

// Write stores s.
func (c *Clipboard) Write(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = s
	if !c.system {
		return
	}
	if err := clipboard.WriteAll(s); err != nil {
		logger.Debug("system clipboard write failed", "err", err)
	}
}

// Read returns the clipboard text, preferring the system clipboard.
func (c *Clipboard) Read() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.system {
		s, err := clipboard.ReadAll()
		if err == nil {
			c.text = s
		} else {
			logger.Debug("system clipboard read failed", "err", err)
		}
	}
	return c.text
}
