package handlers

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPlanAddressSyncSplitsByIDFormat(t *testing.T) {
	nativeA := primitive.NewObjectID()
	nativeB := primitive.NewObjectID()
	_ = nativeB // stored but absent from the payload: deleted via KeepIDs

	payloads := []AddressPayload{
		{ID: nativeA.Hex(), Name: "Loja Principal"},
		{ID: "tmp-123", Name: "Loja Nova"},
		{ID: "", Name: "Sem ID"},
	}

	plan := planAddressSync(payloads)

	if len(plan.Updates) != 1 {
		t.Fatalf("expected 1 update, got %d", len(plan.Updates))
	}
	if _, ok := plan.Updates[nativeA]; !ok {
		t.Fatal("expected native id to be treated as update")
	}
	if len(plan.Inserts) != 2 {
		t.Fatalf("expected 2 inserts, got %d", len(plan.Inserts))
	}
	if len(plan.KeepIDs) != 1 || plan.KeepIDs[0] != nativeA {
		t.Fatalf("expected only the native id kept, got %v", plan.KeepIDs)
	}
}

func TestPlanAddressSyncDeduplicatesNativeIDs(t *testing.T) {
	native := primitive.NewObjectID()

	plan := planAddressSync([]AddressPayload{
		{ID: native.Hex(), Name: "First"},
		{ID: native.Hex(), Name: "Duplicate"},
	})

	if len(plan.Updates) != 1 || len(plan.KeepIDs) != 1 {
		t.Fatalf("expected duplicate native ids collapsed, got updates=%d keep=%d",
			len(plan.Updates), len(plan.KeepIDs))
	}
	if plan.Updates[native].Name != "First" {
		t.Fatalf("expected first occurrence kept, got %q", plan.Updates[native].Name)
	}
}

func TestPlanAddressSyncEmptyPayload(t *testing.T) {
	plan := planAddressSync(nil)

	if len(plan.Updates) != 0 || len(plan.Inserts) != 0 || len(plan.KeepIDs) != 0 {
		t.Fatalf("expected empty plan, got %+v", plan)
	}
}

func TestNewTemporaryAddressIDIsNotNative(t *testing.T) {
	id := NewTemporaryAddressID()

	if !strings.HasPrefix(id, "tmp-") {
		t.Fatalf("expected tmp- prefix, got %q", id)
	}
	if _, err := primitive.ObjectIDFromHex(id); err == nil {
		t.Fatal("temporary id must not parse as a native ObjectID")
	}
}
