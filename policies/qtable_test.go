package policies

import "testing"

func TestQTableGetSet(t *testing.T) {
	q := NewQTable()

	if v := q.Get("s0", "a0", 1.5); v != 1.5 {
		t.Errorf("expected default 1.5, got %f", v)
	}
	q.Set("s0", "a0", 3)
	if v := q.Get("s0", "a0", 1.5); v != 3 {
		t.Errorf("expected 3, got %f", v)
	}
	if !q.HasState("s0") || q.HasState("s1") {
		t.Errorf("unexpected state presence")
	}
	if q.Size() != 1 {
		t.Errorf("expected size 1, got %d", q.Size())
	}
}

func TestQTableMax(t *testing.T) {
	q := NewQTable()

	if _, v := q.Max("unknown", 7); v != 7 {
		t.Errorf("expected default 7 for unknown state, got %f", v)
	}

	q.Set("s", "a", 1)
	q.Set("s", "b", 5)
	q.Set("s", "c", 3)
	a, v := q.Max("s", 0)
	if a != "b" || v != 5 {
		t.Errorf("expected (b, 5), got (%s, %f)", a, v)
	}
}

func TestQTableMaxAmong(t *testing.T) {
	q := NewQTable()
	q.Set("s", "a", 1)
	q.Set("s", "b", 5)
	q.Set("s", "c", 9)

	// c is not among the available actions and must be ignored.
	a, v := q.MaxAmong("s", []string{"a", "b"}, 0)
	if a != "b" || v != 5 {
		t.Errorf("expected (b, 5), got (%s, %f)", a, v)
	}

	// Unseen actions are initialized to the default.
	a, v = q.MaxAmong("s", []string{"d"}, 2)
	if a != "d" || v != 2 {
		t.Errorf("expected (d, 2), got (%s, %f)", a, v)
	}

	// Ties resolve to one of the tied actions.
	a, _ = q.MaxAmong("t", []string{"x", "y"}, 0)
	if a != "x" && a != "y" {
		t.Errorf("tie broke to unknown action %s", a)
	}
}
