package appointment

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusScheduled, StatusConfirmed},
		{StatusScheduled, StatusCancelled},
		{StatusScheduled, StatusNoShow},
		{StatusConfirmed, StatusInProgress},
		{StatusConfirmed, StatusCancelled},
		{StatusInProgress, StatusCompleted},
		{StatusInProgress, StatusCancelled},
		{StatusCompleted, StatusCompleted}, // no-op
	}

	for _, tt := range allowed {
		if err := CanTransition(tt.from, tt.to); err != nil {
			t.Errorf("%s -> %s should be allowed: %v", tt.from, tt.to, err)
		}
	}

	denied := []struct{ from, to Status }{
		{StatusScheduled, StatusInProgress},
		{StatusScheduled, StatusCompleted},
		{StatusConfirmed, StatusCompleted},
		{StatusCompleted, StatusScheduled},
		{StatusCancelled, StatusConfirmed},
		{StatusNoShow, StatusScheduled},
	}

	for _, tt := range denied {
		if err := CanTransition(tt.from, tt.to); err == nil {
			t.Errorf("%s -> %s should be rejected", tt.from, tt.to)
		}
	}
}

func TestOccupies(t *testing.T) {
	if Occupies(StatusCancelled) {
		t.Error("cancelled must release the slot")
	}
	for _, s := range []Status{StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted, StatusNoShow} {
		if !Occupies(s) {
			t.Errorf("%s should still hold the slot", s)
		}
	}
}
