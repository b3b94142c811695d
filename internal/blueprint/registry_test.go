package blueprint

import (
	"errors"
	"slices"
	"sync"
	"testing"
)

type named struct {
	Name  string
	Value int
}

func (n named) BlueprintName() string { return n.Name }

func TestRegistry_KeepsRegistrationOrder(t *testing.T) {
	r := NewRegistry[named]("test")
	if err := r.Register(named{Name: "b", Value: 1}, named{Name: "a", Value: 2}); err != nil {
		t.Fatalf("err=%v", err)
	}
	if err := r.Register(named{Name: "c", Value: 3}); err != nil {
		t.Fatalf("err=%v", err)
	}

	if got := r.Names(); !slices.Equal(got, []string{"b", "a", "c"}) {
		t.Fatalf("names=%v", got)
	}
	list := r.List()
	if len(list) != 3 || list[1].Value != 2 {
		t.Fatalf("list=%v", list)
	}
	list[0].Value = 99
	if bp, _ := r.Get("b"); bp.Value != 1 {
		t.Fatalf("expected List to return a copy")
	}
	if r.Len() != 3 || r.Kind() != "test" {
		t.Fatalf("len=%d kind=%q", r.Len(), r.Kind())
	}
}

func TestRegistry_RejectsDuplicatesAtomically(t *testing.T) {
	r := NewRegistry[named]("test")
	_ = r.Register(named{Name: "a"})

	err := r.Register(named{Name: "b"}, named{Name: "a"})
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected duplicate error, got=%v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("expected nothing added, len=%d", r.Len())
	}

	err = r.Register(named{Name: "c"}, named{Name: "c"})
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected duplicate within batch to fail, got=%v", err)
	}
	if _, ok := r.Get("c"); ok {
		t.Fatalf("expected c not to be registered")
	}
}

func TestRegistry_Replace(t *testing.T) {
	r := NewRegistry[named]("test")
	_ = r.Register(named{Name: "a"}, named{Name: "b"})

	if err := r.Replace([]named{{Name: "x"}, {Name: "x"}}); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected duplicate error, got=%v", err)
	}
	if got := r.Names(); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("expected previous content kept, got=%v", got)
	}

	if err := r.Replace([]named{{Name: "z"}, {Name: "a"}}); err != nil {
		t.Fatalf("err=%v", err)
	}
	if got := r.Names(); !slices.Equal(got, []string{"z", "a"}) {
		t.Fatalf("names=%v", got)
	}
	if _, ok := r.Get("b"); ok {
		t.Fatalf("expected b to be gone")
	}
}

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry[named]("test")
	_ = r.Register(named{Name: "a", Value: 7})

	bp, err := r.Lookup("a")
	if err != nil || bp.Value != 7 {
		t.Fatalf("bp=%v err=%v", bp, err)
	}
	_, err = r.Lookup("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got=%v", err)
	}
	var e *Error
	if !errors.As(err, &e) || e.Data()["name"] != "missing" {
		t.Fatalf("expected name in data, got=%v", err)
	}
}

func TestRegistry_ConcurrentReadsDuringReplace(t *testing.T) {
	r := NewRegistry[named]("test")
	_ = r.Register(named{Name: "a"})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = r.Replace([]named{{Name: "a"}, {Name: "b"}})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, ok := r.Get("a"); !ok {
					t.Errorf("expected a to stay registered")
					return
				}
				_ = r.List()
			}
		}()
	}
	wg.Wait()
}
