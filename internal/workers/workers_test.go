// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shubham Kumar

package workers

import "testing"

// countingWorker records how many times Run was invoked.
type countingWorker struct {
	runs int
}

func (c *countingWorker) Run() { c.runs++ }

// orderWorker appends its ID to a shared slice on Run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run() { *o.order = append(*o.order, o.id) }

func TestWorkers_Run_StartsEveryWorker(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}

	NewWorkers(w1, w2, w3).Run()

	for i, w := range []*countingWorker{w1, w2, w3} {
		if w.runs != 1 {
			t.Errorf("worker[%d]: expected 1 run, got %d", i, w.runs)
		}
	}
}

func TestWorkers_Run_NoWorkers(t *testing.T) {
	// Run must tolerate both an empty and a nil worker list.
	NewWorkers().Run()
	(&Workers{}).Run()
}

func TestWorkers_Run_RegistrationOrder(t *testing.T) {
	var order []int

	NewWorkers(
		&orderWorker{id: 1, order: &order},
		&orderWorker{id: 2, order: &order},
		&orderWorker{id: 3, order: &order},
	).Run()

	for i, want := range []int{1, 2, 3} {
		if order[i] != want {
			t.Errorf("expected order[%d]=%d, got %d", i, want, order[i])
		}
	}
}

func TestWorkers_Run_Repeatable(t *testing.T) {
	w := &countingWorker{}
	ws := NewWorkers(w)

	ws.Run()
	ws.Run()
	ws.Run()

	if w.runs != 3 {
		t.Errorf("expected 3 runs after 3 calls, got %d", w.runs)
	}
}
