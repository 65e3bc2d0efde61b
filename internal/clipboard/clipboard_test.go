package clipboard

import (
	"errors"
	"testing"
)

func fakeSystem(c *Clipboard) *string {
	store := new(string)
	c.system = true
	c.readAll = func() (string, error) { return *store, nil }
	c.writeAll = func(s string) error { *store = s; return nil }
	return store
}

func TestInternalRegister(t *testing.T) {
	c := New(false)
	if _, err := c.Paste(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Paste on empty clipboard = %v, want ErrEmpty", err)
	}
	if err := c.Copy("abc"); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if got, err := c.Paste(); err != nil || got != "abc" {
		t.Errorf("Paste() = %q, %v", got, err)
	}
}

func TestSystemClipboardRoundTrip(t *testing.T) {
	c := New(false)
	store := fakeSystem(c)

	if err := c.Copy("hello"); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if *store != "hello" {
		t.Errorf("system clipboard = %q", *store)
	}
	*store = "from elsewhere"
	if got, _ := c.Paste(); got != "from elsewhere" {
		t.Errorf("Paste() = %q, want system contents", got)
	}
}

func TestSystemFailureFallsBack(t *testing.T) {
	c := New(false)
	c.system = true
	c.writeAll = func(string) error { return errors.New("no display") }
	c.readAll = func() (string, error) { return "", errors.New("no display") }

	if err := c.Copy("kept"); err == nil {
		t.Errorf("Copy did not report the system failure")
	}
	if got, err := c.Paste(); err != nil || got != "kept" {
		t.Errorf("Paste() = %q, %v; want internal register", got, err)
	}
}
