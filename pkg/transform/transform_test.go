package transform

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func TestLuaTransform(t *testing.T) {
	tests := []struct {
		name       string
		script     string
		input      float64
		additional float64
		want       float64
	}{
		{"Identity", "function transform(x, y) return x end", 0.25, 0, 0.25},
		{"Inverse", "function transform(x, y) return 1 - x end", 0.25, 0, 0.75},
		{"UsesAdditional", "function transform(x, y) return (x + y) / 2 end", 0.2, 0.6, 0.4},
		{"Math", "function transform(x, y) return math.min(x * 2, 1) end", 0.7, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := NewLua(tt.script)
			if err != nil {
				t.Fatalf("NewLua() error = %v", err)
			}
			got, err := tr.Transform(tt.input, tt.additional)
			if err != nil {
				t.Fatalf("Transform() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Transform(%v, %v) = %v, want %v", tt.input, tt.additional, got, tt.want)
			}
		})
	}
}

func TestLuaLoadErrors(t *testing.T) {
	if _, err := NewLua("function transform(x"); err == nil {
		t.Error("NewLua() with syntax error succeeded")
	}
	if _, err := NewLua("x = 1"); !errors.Is(err, ErrNoTransformFunction) {
		t.Errorf("NewLua() error = %v, want %v", err, ErrNoTransformFunction)
	}
}

func TestLuaRuntimeErrors(t *testing.T) {
	tr, err := NewLua(`function transform(x, y) error("boom") end`)
	if err != nil {
		t.Fatalf("NewLua() error = %v", err)
	}
	if _, err := tr.Transform(0.5, 0); err == nil {
		t.Error("Transform() error = nil, want error")
	}

	tr, err = NewLua(`function transform(x, y) return {} end`)
	if err != nil {
		t.Fatalf("NewLua() error = %v", err)
	}
	if _, err := tr.Transform(0.5, 0); !errors.Is(err, ErrNonNumericResult) {
		t.Errorf("Transform() error = %v, want %v", err, ErrNonNumericResult)
	}

	// The state must stay usable after a failed call.
	if _, err := tr.Transform(0.5, 0); !errors.Is(err, ErrNonNumericResult) {
		t.Errorf("second Transform() error = %v, want %v", err, ErrNonNumericResult)
	}
}

func TestLuaWantsToBePolled(t *testing.T) {
	tr, err := NewLua("function transform(x, y) return x end")
	if err != nil {
		t.Fatalf("NewLua() error = %v", err)
	}
	if tr.WantsToBePolled() {
		t.Error("WantsToBePolled() = true, want false")
	}

	tr, err = NewLua("wants_to_be_polled = true\nfunction transform(x, y) return x end")
	if err != nil {
		t.Fatalf("NewLua() error = %v", err)
	}
	if !tr.WantsToBePolled() {
		t.Error("WantsToBePolled() = false, want true")
	}
}

func TestLuaConcurrentUse(t *testing.T) {
	tr, err := NewLua("function transform(x, y) return x * 2 end")
	if err != nil {
		t.Fatalf("NewLua() error = %v", err)
	}

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(in float64) {
			defer wg.Done()
			got, err := tr.Transform(in, 0)
			if err != nil {
				t.Errorf("Transform() error = %v", err)
				return
			}
			if got != in*2 {
				t.Errorf("Transform(%v) = %v, want %v", in, got, in*2)
			}
		}(float64(i) / 10)
	}
	wg.Wait()
}

func TestFunc(t *testing.T) {
	f := Func(func(x, _ float64) (float64, error) { return x / 2, nil })
	got, err := f.Transform(0.5, 0)
	if err != nil || got != 0.25 {
		t.Errorf("Transform() = %v, %v, want 0.25, nil", got, err)
	}
	if f.WantsToBePolled() {
		t.Error("WantsToBePolled() = true, want false")
	}
}
