package transform

import (
	"fmt"
	"sync"

	"github.com/Shopify/go-lua"
)

const (
	transformFunction = "transform"
	pollGlobal        = "wants_to_be_polled"
)

// Lua is a transformation backed by a Lua script. The interpreter state is
// not reentrant, so calls are serialized.
type Lua struct {
	mu     sync.Mutex
	state  *lua.State
	source string
	polled bool
}

// NewLua loads script and checks that it defines the transform function.
func NewLua(script string) (*Lua, error) {
	l := lua.NewState()
	lua.OpenLibraries(l)

	if err := lua.DoString(l, script); err != nil {
		return nil, fmt.Errorf("load transformation: %w", err)
	}

	l.Global(transformFunction)
	isFunc := l.IsFunction(-1)
	l.Pop(1)
	if !isFunc {
		return nil, ErrNoTransformFunction
	}

	l.Global(pollGlobal)
	polled := l.ToBoolean(-1)
	l.Pop(1)

	return &Lua{state: l, source: script, polled: polled}, nil
}

// Source returns the script the transformation was loaded from.
func (t *Lua) Source() string { return t.source }

// Transform calls the script's transform function.
func (t *Lua) Transform(input, additional float64) (float64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	l := t.state
	top := l.Top()
	defer l.SetTop(top)

	l.Global(transformFunction)
	l.PushNumber(input)
	l.PushNumber(additional)
	if err := l.ProtectedCall(2, 1, 0); err != nil {
		return 0, fmt.Errorf("call transformation: %w", err)
	}

	if !l.IsNumber(-1) {
		return 0, fmt.Errorf("%w: %s", ErrNonNumericResult, lua.TypeNameOf(l, -1))
	}
	out, _ := l.ToNumber(-1)
	return out, nil
}

// WantsToBePolled reports whether the script set wants_to_be_polled.
func (t *Lua) WantsToBePolled() bool { return t.polled }
