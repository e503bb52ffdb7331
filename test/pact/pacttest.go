//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ConsumerName      = "shop-portal"
	CartProviderName  = "cart-api"
	OrderProviderName = "order-api"

	StateCartEmpty   = "cart is empty"
	StateCartHasItem = "cart item 1 exists"
	StateOrdersEmpty = "no orders exist"
	StateOrderExists = "order pact-order-1 exists"
)

const (
	ExistingCartItemID int64 = 1
	MissingCartItemID  int64 = 404

	ExistingOrderID = "pact-order-1"
	MissingOrderID  = "fake"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path between the portal and provider.
func PactFile(t testing.TB, provider string) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+provider+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleCartItemPayload is the item the portal adds in contract flows.
func ExampleCartItemPayload() map[string]any {
	return map[string]any{
		"productId": "P1",
		"name":      "Widget",
		"price":     9.99,
	}
}

// ExampleOrderPayload is the order the portal places, with a client id the server must replace.
func ExampleOrderPayload() map[string]any {
	return map[string]any{
		"id":        MissingOrderID,
		"productId": "P2",
		"qty":       3,
		"user":      "u1",
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
