package cli

import (
	"context"
	"testing"

	"monthcal/internal/model"
	"monthcal/internal/store"
)

func corruptEvents(t *testing.T, dir string) {
	t.Helper()
	if err := (store.Store{Dir: dir}).Set(context.Background(), model.EventsKey, "{broken"); err != nil {
		t.Fatalf("corrupt events: %v", err)
	}
}
