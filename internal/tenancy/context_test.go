package tenancy

import (
	"context"
	"testing"
)

func TestTenantIDRoundTrip(t *testing.T) {
	ctx := WithTenantID(context.Background(), "studio_nexa")

	got, ok := TenantIDFromContext(ctx)
	if !ok || got != "studio_nexa" {
		t.Fatalf("expected tenant id propagated, got %q / %v", got, ok)
	}
}

func TestTenantIDMissing(t *testing.T) {
	if _, ok := TenantIDFromContext(context.Background()); ok {
		t.Fatal("expected no tenant id on empty context")
	}
}

func TestTenantIDEmptyValue(t *testing.T) {
	ctx := WithTenantID(context.Background(), "")
	if _, ok := TenantIDFromContext(ctx); ok {
		t.Fatal("expected empty tenant id to be treated as absent")
	}
}
