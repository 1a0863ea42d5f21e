// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jose Moreno

package workers

import (
	"testing"
)

// mockWorker tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on an empty worker set
	ws.Run()
}

func TestWorkers_Run_Order(t *testing.T) {
	var order []int
	ws := NewWorkers(
		WorkerFunc(func() { order = append(order, 1) }),
		WorkerFunc(func() { order = append(order, 2) }),
		WorkerFunc(func() { order = append(order, 3) }),
	)
	ws.Run()

	expected := []int{1, 2, 3}
	if len(order) != len(expected) {
		t.Fatalf("expected %d runs, got %d", len(expected), len(order))
	}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(w)

	ws.Run()
	ws.Run()
	ws.Run()

	if w.runCount != 3 {
		t.Errorf("expected runCount=3 after 3 calls, got %d", w.runCount)
	}
}
