package orchestrators

import (
	"context"
	"testing"
)

type mockBookingStoreForStatus struct {
	updates map[string]string
}

func (m *mockBookingStoreForStatus) UpdateStatus(_ context.Context, id, status string) error {
	if m.updates == nil {
		m.updates = make(map[string]string)
	}
	m.updates[id] = status
	return nil
}

// TestExecuteUpdateBookingStatus_PassesThrough tests the happy path.
func TestExecuteUpdateBookingStatus_PassesThrough(t *testing.T) {
	store := &mockBookingStoreForStatus{}
	err := ExecuteUpdateBookingStatus(context.Background(), UpdateBookingStatusInput{
		BookingID: "b1",
		Status:    "confirmed",
	}, UpdateBookingStatusDeps{BookingStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.updates["b1"] != "confirmed" {
		t.Errorf("expected status forwarded, got %v", store.updates)
	}
}

// TestExecuteUpdateBookingStatus_MissingID tests the required-id check.
func TestExecuteUpdateBookingStatus_MissingID(t *testing.T) {
	err := ExecuteUpdateBookingStatus(context.Background(), UpdateBookingStatusInput{
		Status: "confirmed",
	}, UpdateBookingStatusDeps{BookingStore: &mockBookingStoreForStatus{}})
	if err != ErrMissingBookingID {
		t.Errorf("expected ErrMissingBookingID, got %v", err)
	}
}
