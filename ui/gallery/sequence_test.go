package gallery

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSequence_IdentityOrder(t *testing.T) {
	s := NewSequence(4)
	if diff := cmp.Diff([]int{0, 1, 2, 3}, s.Order()); diff != "" {
		t.Errorf("identity order mismatch (-want +got):\n%s", diff)
	}
}

func TestSequence_HeadToTail(t *testing.T) {
	s := NewSequence(4)
	s.MoveHeadToTail()
	if diff := cmp.Diff([]int{1, 2, 3, 0}, s.Order()); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if s.Rotation() != 1 {
		t.Errorf("want rotation=1, got %d", s.Rotation())
	}
}

func TestSequence_TailToHead(t *testing.T) {
	s := NewSequence(4)
	s.MoveTailToHead()
	if diff := cmp.Diff([]int{3, 0, 1, 2}, s.Order()); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if s.Rotation() != 3 {
		t.Errorf("want rotation=3, got %d", s.Rotation())
	}
}

func TestSequence_RotateWraps(t *testing.T) {
	s := NewSequence(3)
	s.Rotate(7) // 7 mod 3 = 1
	if diff := cmp.Diff([]int{1, 2, 0}, s.Order()); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	s.Rotate(-5) // back by 5 = forward by 1
	if diff := cmp.Diff([]int{2, 0, 1}, s.Order()); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	s.Reset()
	if s.Rotation() != 0 {
		t.Errorf("want rotation=0 after Reset, got %d", s.Rotation())
	}
}

func TestSequence_EmptyIsSafe(t *testing.T) {
	s := NewSequence(0)
	s.MoveHeadToTail()
	s.MoveTailToHead()
	if s.At(0) != -1 {
		t.Errorf("want -1 for empty At, got %d", s.At(0))
	}
	if len(s.Order()) != 0 {
		t.Errorf("want empty order, got %v", s.Order())
	}
}
