package tales

import (
	"errors"
	"fmt"
	"sync"
)

// Func evaluates the body of one expression type against the given context
// stack.
type Func func(body string, ctxs ...Context) (any, error)

var (
	mu sync.RWMutex
	d  = map[string]Func{}
)

var (
	ErrTypeExists  = errors.New("expression type exists")
	ErrUnknownType = errors.New("unknown expression type")
)

// Register adds an expression type to the registry. Registering a name twice
// is an error.
func Register(name string, fn Func) error {
	mu.Lock()
	defer mu.Unlock()
	_, present := d[name]
	if present {
		return fmt.Errorf("%s: %w", name, ErrTypeExists)
	}
	d[name] = fn
	return nil
}

func init() {
	Register("path", func(body string, ctxs ...Context) (any, error) {
		return ProcessPath(body, ctxs...), nil
	})
	Register("string", ProcessString)
	Register("not", ProcessNot)
	Register("exists", func(body string, ctxs ...Context) (any, error) {
		return ProcessPath(body, ctxs...) != nil, nil
	})
	Register("expr", ProcessExpr)
}

func Lookup(name string) Func {
	mu.RLock()
	defer mu.RUnlock()
	return d[name]
}

// Types returns the names of all registered expression types.
func Types() []string {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]string, 0, len(d))
	for name := range d {
		res = append(res, name)
	}
	return res
}
