package main

import "testing"

func TestSafeExitInterrupt(t *testing.T) {
	s := NewSafeExit()
	var order []int
	s.Register(func() { order = append(order, 1) })
	s.Register(func() { order = append(order, 2) })

	if !s.interrupt() {
		t.Fatal("first interrupt not reported as first")
	}
	select {
	case <-s.Context().Done():
	default:
		t.Fatal("context not cancelled")
	}
	if s.interrupt() {
		t.Fatal("second interrupt reported as first")
	}

	s.Cleanup()
	s.Cleanup()
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("cleanup order = %v", order)
	}
}
