//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/gesturerecognizer/catalog"
	"github.com/suparena/gesturerecognizer/catalog/ddb"
	"github.com/suparena/gesturerecognizer/errors"
)

// Run with: go test -tags=integration ./catalog/ddb/...
// against a table with a PK/SK string key schema.
func TestIntegrationRoundTrip(t *testing.T) {
	cfg, err := ddb.LoadConfig()
	if err != nil {
		t.Skipf("DynamoDB not configured: %v", err)
	}

	ctx := context.Background()
	client, err := ddb.NewClient(ctx, cfg)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	store := ddb.New(client, cfg.Table)

	recognizer := fmt.Sprintf("it-%d", time.Now().UnixNano())
	b := catalog.Binding{
		Recognizer: recognizer,
		Target:     "gallery",
		Action:     "next",
		CreatedAt:  strfmt.DateTime(time.Now().UTC()),
	}

	if err := store.Put(ctx, b); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	defer store.Delete(ctx, b)

	if err := store.Put(ctx, b); !errors.IsConditionFailed(err) {
		t.Fatalf("Expected condition failure on duplicate put, got %v", err)
	}

	got, err := store.Bindings(ctx, recognizer)
	if err != nil {
		t.Fatalf("Bindings failed: %v", err)
	}
	if len(got) != 1 || got[0].Key() != b.Key() {
		t.Fatalf("Expected %s, got %v", b.Key(), got)
	}
}
