package symtab

import "testing"

func TestPutGet(t *testing.T) {
	st := New()
	st.Put("i", "decl-i")

	got, err := st.Get("i")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got != "decl-i" {
		t.Errorf("Get() = %v, want decl-i", got)
	}
}

func TestUndeclared(t *testing.T) {
	st := New()
	if _, err := st.Get("missing"); err == nil {
		t.Fatalf("expected error for undeclared identifier")
	}
}

func TestNestedScopeShadowing(t *testing.T) {
	st := New()
	st.Put("i", "outer")
	st.Push()
	st.Put("i", "inner")

	got, err := st.Get("i")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got != "inner" {
		t.Errorf("Get() = %v, want inner (shadowing)", got)
	}

	st.Pop()
	got, err = st.Get("i")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got != "outer" {
		t.Errorf("Get() after Pop() = %v, want outer", got)
	}
}

func TestPopRootPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic popping root frame")
		}
	}()
	st := New()
	st.Pop()
}
