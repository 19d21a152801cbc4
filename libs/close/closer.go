package close

import (
	"errors"
	"fmt"
	"sync"
)

type closeFn struct {
	name string
	fn   func() error
}

// Closer releases the long-lived components of the process.
type Closer struct {
	mu       sync.Mutex
	closeFns []closeFn
}

func NewCloser() *Closer {
	return &Closer{
		closeFns: []closeFn{},
	}
}

// Add adds a function to call during call to CloseAll. The name prefixes its
// error, if any.
func (c *Closer) Add(name string, fn func() error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeFns = append(c.closeFns, closeFn{name: name, fn: fn})
}

// CloseAll calls all close functions in reverse order.
// Higher level-components should be closed first, but are usually instantiated
// last (and, thus, added later to the closer), hence the reverse order.
// Every function is called even when one fails, the errors are joined.
func (c *Closer) CloseAll() error {
	c.mu.Lock()
	fns := c.closeFns
	c.closeFns = []closeFn{}
	c.mu.Unlock()

	var errs []error
	for i := len(fns) - 1; i >= 0; i-- {
		if err := fns[i].fn(); err != nil {
			errs = append(errs, fmt.Errorf("couldn't close %s: %w", fns[i].name, err))
		}
	}
	return errors.Join(errs...)
}
