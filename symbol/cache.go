package symbol

import (
	"errors"
	"fmt"
	"sync"

	"github.com/apex/log"
)

// Cache memoizes a Resolver. Each distinct name is resolved at most once;
// concurrent first lookups of the same name wait for the single resolution
// and all observe its result.
type Cache struct {
	resolver Resolver
	entries  sync.Map // string -> *entry
}

type entry struct {
	once sync.Once
	addr uintptr
	err  error
}

// NewCache returns a Cache backed by r.
func NewCache(r Resolver) *Cache {
	return &Cache{resolver: r}
}

// Resolve returns the memoized address of name, resolving it on first use.
// Failures are memoized too.
func (c *Cache) Resolve(name string) (uintptr, error) {
	v, ok := c.entries.Load(name)
	if !ok {
		v, _ = c.entries.LoadOrStore(name, &entry{})
	}
	e := v.(*entry)

	e.once.Do(func() {
		e.addr, e.err = c.resolver.Resolve(name)
		if e.err != nil {
			return
		}
		log.WithFields(log.Fields{
			"symbol": name,
			"addr":   fmt.Sprintf("%#x", e.addr),
		}).Debug("resolved symbol")
	})

	return e.addr, e.err
}

// Lookup is like Resolve but a failure is fatal. It panics with an
// *UnresolvedError; every caller assumes success, so nothing recovers it and
// inside the host the process aborts.
func (c *Cache) Lookup(name string) uintptr {
	addr, err := c.Resolve(name)
	if err != nil {
		var uerr *UnresolvedError
		if !errors.As(err, &uerr) {
			uerr = &UnresolvedError{Name: name, Reason: err.Error()}
		}
		log.WithError(uerr).Error("unresolved symbol")
		panic(uerr)
	}
	return addr
}
