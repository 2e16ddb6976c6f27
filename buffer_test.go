package boundedqueue

import (
	"errors"
	"testing"
)

func TestNewBufferInvalidCapacity(t *testing.T) {
	for _, c := range []int{0, -1, -100} {
		b, err := NewBuffer[int](c)
		if !errors.Is(err, ErrInvalidCapacity) {
			t.Fatalf("capacity %d: err = %v want ErrInvalidCapacity", c, err)
		}
		if b != nil {
			t.Fatalf("capacity %d: expected nil buffer", c)
		}
	}
}

func TestFIFO(t *testing.T) {
	b, err := NewBuffer[int](3)
	if err != nil {
		t.Fatal(err)
	}
	if !b.IsEmpty() {
		t.Fatal("new buffer should be empty")
	}
	b.Push(1)
	b.Push(2)
	b.Push(3)

	if b.Len() != 3 {
		t.Fatalf("len = %d want 3", b.Len())
	}
	if !b.IsFull() {
		t.Fatal("expected full")
	}
	if v, ok := b.Peek(); !ok || v != 1 {
		t.Fatalf("peek = %v,%v want 1,true", v, ok)
	}
	for i := 1; i <= 3; i++ {
		v, ok := b.Pop()
		if !ok || v != i {
			t.Fatalf("pop = %v,%v want %d,true", v, ok, i)
		}
	}
	if _, ok := b.Pop(); ok {
		t.Fatal("expected empty after pops")
	}
	if _, ok := b.Peek(); ok {
		t.Fatal("expected peek on empty to fail")
	}
}

func TestPushWhenFull(t *testing.T) {
	b, _ := NewBuffer[string](2)
	if !b.Push("a") || !b.Push("b") {
		t.Fatal("expected pushes below capacity to succeed")
	}
	if b.Push("c") {
		t.Fatal("expected push on full buffer to fail")
	}
	got := b.ToSlice()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("contents = %q want [a b]", got)
	}
}

func TestWrapAround(t *testing.T) {
	b, _ := NewBuffer[int](3)
	next, want := 0, 0
	// interleave so head and tail cross the end of the ring many times
	for round := 0; round < 50; round++ {
		for b.Push(next) {
			next++
		}
		if b.Len() != b.Cap() {
			t.Fatalf("round %d: len = %d want %d", round, b.Len(), b.Cap())
		}
		for i := 0; i < 1+round%3; i++ {
			v, ok := b.Pop()
			if !ok || v != want {
				t.Fatalf("round %d: pop = %v,%v want %d,true", round, v, ok, want)
			}
			want++
		}
	}
	s := b.ToSlice()
	for i, v := range s {
		if v != want+i {
			t.Fatalf("ToSlice[%d] = %d want %d", i, v, want+i)
		}
	}
}

func TestPopReleasesSlot(t *testing.T) {
	b, _ := NewBuffer[*int](1)
	x := 7
	b.Push(&x)
	b.Pop()
	if b.data[0] != nil {
		t.Fatal("expected vacated slot to be zeroed")
	}
}

func TestClear(t *testing.T) {
	b, _ := NewBuffer[int](4)
	b.Push(1)
	b.Push(2)
	b.Pop()
	b.Push(3)
	b.Clear()
	if b.Len() != 0 || !b.IsEmpty() {
		t.Fatalf("len = %d after clear", b.Len())
	}
	for i := 0; i < 4; i++ {
		if !b.Push(i) {
			t.Fatalf("push %d failed after clear", i)
		}
	}
	if v, _ := b.Peek(); v != 0 {
		t.Fatalf("head = %d want 0", v)
	}
}
