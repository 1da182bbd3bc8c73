package reactive

import "testing"

func TestScopeEnterRestoresPrevious(t *testing.T) {
	outer := NewScope()
	inner := outer.CreateChild()

	outer.Enter(func() {
		if CurrentScope() != outer {
			t.Error("expected outer scope to be current")
		}
		inner.Enter(func() {
			if CurrentScope() != inner {
				t.Error("expected inner scope to be current")
			}
		})
		if CurrentScope() != outer {
			t.Error("expected outer scope restored after inner Enter")
		}
	})

	if CurrentScope() != nil {
		t.Error("expected no current scope after Enter returns")
	}
}

func TestScopeEnterRestoresOnPanic(t *testing.T) {
	scope := NewScope()

	func() {
		defer func() { _ = recover() }()
		scope.Enter(func() {
			panic("boom")
		})
	}()

	if CurrentScope() != nil {
		t.Error("expected current scope restored after panic")
	}
}

func TestScopeDisposalCascades(t *testing.T) {
	// Parent scope -> child scope -> signal. Disposing the parent must make
	// the signal inert.
	parent := NewScope()
	child := parent.CreateChild()

	var sig *Signal[int]
	child.Enter(func() {
		sig = NewSignal(1)
	})

	parent.Dispose()

	if !child.IsDisposed() {
		t.Error("expected child scope disposed with parent")
	}
	if !sig.IsDisposed() {
		t.Error("expected signal disposed with owning scope")
	}

	// Writes to a disposed signal are a no-op, not an error.
	sig.Set(2)
	if got := sig.Peek(); got != 1 {
		t.Errorf("expected write to disposed signal ignored, got %d", got)
	}
}

func TestScopeDisposeIsIdempotent(t *testing.T) {
	scope := NewScope()

	cleanups := 0
	scope.Enter(func() {
		OnCleanup(func() { cleanups++ })
	})

	scope.Dispose()
	scope.Dispose()

	if cleanups != 1 {
		t.Errorf("expected cleanup to run once, got %d", cleanups)
	}
}

func TestScopeDisposesEffects(t *testing.T) {
	scope := NewScope()
	s := NewSignal(0)

	runs := 0
	scope.Enter(func() {
		CreateEffect(func(_ *int) int {
			runs++
			return s.Get()
		})
	})

	scope.Dispose()

	s.Set(1)
	if runs != 1 {
		t.Errorf("expected no re-run after scope disposal, got %d runs", runs)
	}
}

func TestScopeCleanupOrder(t *testing.T) {
	scope := NewScope()

	var order []string
	scope.Enter(func() {
		OnCleanup(func() { order = append(order, "first") })
		OnCleanup(func() { order = append(order, "second") })
	})
	child := scope.CreateChild()
	child.Enter(func() {
		OnCleanup(func() { order = append(order, "child") })
	})

	scope.Dispose()

	// Children are disposed before the scope's own cleanups, cleanups run
	// in reverse registration order.
	want := []string{"child", "second", "first"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestOnCleanupAfterDisposeRunsImmediately(t *testing.T) {
	scope := NewScope()
	scope.Dispose()

	ran := false
	scope.onCleanup(func() { ran = true })
	if !ran {
		t.Error("expected cleanup on disposed scope to run immediately")
	}
}

func TestEnterChildDisposableUnit(t *testing.T) {
	root := NewScope()

	var sig *Signal[int]
	unit := root.EnterChild(func() {
		sig = NewSignal(42)
	})

	unit.Dispose()
	if !sig.IsDisposed() {
		t.Error("expected signal disposed with EnterChild unit")
	}
	if root.IsDisposed() {
		t.Error("expected root unaffected")
	}
}
