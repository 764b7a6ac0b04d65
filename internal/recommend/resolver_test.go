package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/libertyflags/flaggy/internal/catalog"
	"github.com/libertyflags/flaggy/internal/knowledge"
)

// fakeCatalog implements catalog.Client for testing.
type fakeCatalog struct {
	lastHandle string
	products   []catalog.Product
	err        error
	delay      time.Duration
}

func (f *fakeCatalog) CollectionProducts(ctx context.Context, handle string, limit int) ([]catalog.Product, error) {
	f.lastHandle = handle
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func pole() catalog.Product {
	return catalog.Product{
		ID:           "gid://shopify/Product/1",
		Title:        "25ft Telescoping Flagpole Kit",
		Handle:       "25ft-telescoping-flagpole-kit",
		ImageURL:     "https://cdn.example.com/pole.jpg",
		Price:        "299.00",
		CurrencyCode: "USD",
		VariantID:    "gid://shopify/ProductVariant/11",
	}
}

func TestResolveIntentFallback(t *testing.T) {
	fc := &fakeCatalog{products: []catalog.Product{pole()}}
	r := New(fc, time.Second)

	rec := r.Resolve(context.Background(), knowledge.IntentHeightSelection, "how high is right for me")
	if rec == nil {
		t.Fatal("expected a recommendation")
	}
	if fc.lastHandle != CollectionFlagpoles {
		t.Errorf("collection = %q, want %q", fc.lastHandle, CollectionFlagpoles)
	}
	if rec.Title != "25ft Telescoping Flagpole Kit" {
		t.Errorf("title = %q", rec.Title)
	}
	if rec.Price != "$299.00" {
		t.Errorf("price = %q, want $299.00", rec.Price)
	}
	if rec.URL != "/products/25ft-telescoping-flagpole-kit" {
		t.Errorf("url = %q", rec.URL)
	}
	if rec.Rating != displayRating || rec.ReviewCount != displayReviewCount {
		t.Errorf("display constants not applied: %+v", rec)
	}
}

func TestResolveKeywordOverridesIntent(t *testing.T) {
	fc := &fakeCatalog{products: []catalog.Product{pole()}}
	r := New(fc, time.Second)

	// height_selection normally routes to flagpoles; "solar" wins.
	rec := r.Resolve(context.Background(), knowledge.IntentHeightSelection, "what about a solar option")
	if rec == nil {
		t.Fatal("expected a recommendation")
	}
	if fc.lastHandle != CollectionLighting {
		t.Errorf("collection = %q, want %q", fc.lastHandle, CollectionLighting)
	}
}

func TestResolveNoProductIntentsAlwaysNil(t *testing.T) {
	fc := &fakeCatalog{products: []catalog.Product{pole()}}
	r := New(fc, time.Second)

	for intent, msg := range map[string]string{
		knowledge.IntentGreeting:         "hi there",
		knowledge.IntentWarrantyInfo:     "is my flag covered by warranty", // keyword "flag" present
		knowledge.IntentShippingInfo:     "shipping for a flagpole kit",
		knowledge.IntentWinterGuidelines: "solar lights in winter",
		knowledge.IntentThankYou:         "thanks",
	} {
		if rec := r.Resolve(context.Background(), intent, msg); rec != nil {
			t.Errorf("intent %q with message %q: got %+v, want nil", intent, msg, rec)
		}
	}
}

func TestResolveKeywordOrderFlagpoleBeforeFlag(t *testing.T) {
	fc := &fakeCatalog{products: []catalog.Product{pole()}}
	r := New(fc, time.Second)

	rec := r.Resolve(context.Background(), knowledge.IntentHeightSelection, "How tall should my flagpole be")
	if rec == nil {
		t.Fatal("expected a recommendation")
	}
	if fc.lastHandle != CollectionFlagpoles {
		t.Errorf(`"flagpole" routed to %q, want %q (must not short-circuit on "flag")`, fc.lastHandle, CollectionFlagpoles)
	}
}

func TestResolveUnknownIntentNoKeyword(t *testing.T) {
	fc := &fakeCatalog{products: []catalog.Product{pole()}}
	r := New(fc, time.Second)

	if rec := r.Resolve(context.Background(), knowledge.IntentReturns, "I want my money back"); rec != nil {
		t.Errorf("expected nil when no collection resolves, got %+v", rec)
	}
	if fc.lastHandle != "" {
		t.Errorf("catalog should not have been called, got %q", fc.lastHandle)
	}
}

func TestResolveCatalogErrorDegradesToNil(t *testing.T) {
	fc := &fakeCatalog{err: errors.New("boom")}
	r := New(fc, time.Second)

	if rec := r.Resolve(context.Background(), knowledge.IntentHeightSelection, "how tall"); rec != nil {
		t.Errorf("expected nil on catalog error, got %+v", rec)
	}
}

func TestResolveEmptyCollectionDegradesToNil(t *testing.T) {
	fc := &fakeCatalog{}
	r := New(fc, time.Second)

	if rec := r.Resolve(context.Background(), knowledge.IntentHeightSelection, "how tall"); rec != nil {
		t.Errorf("expected nil on empty collection, got %+v", rec)
	}
}

func TestResolveTimeoutDegradesToNil(t *testing.T) {
	fc := &fakeCatalog{products: []catalog.Product{pole()}, delay: 200 * time.Millisecond}
	r := New(fc, 20*time.Millisecond)

	start := time.Now()
	rec := r.Resolve(context.Background(), knowledge.IntentHeightSelection, "how tall")
	if rec != nil {
		t.Errorf("expected nil on timeout, got %+v", rec)
	}
	if elapsed := time.Since(start); elapsed > 150*time.Millisecond {
		t.Errorf("timeout not enforced, took %v", elapsed)
	}
}

func TestResolveNilCatalog(t *testing.T) {
	r := New(nil, time.Second)
	if rec := r.Resolve(context.Background(), knowledge.IntentHeightSelection, "how tall"); rec != nil {
		t.Errorf("expected nil with no catalog configured, got %+v", rec)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount, currency, want string
	}{
		{"299.00", "USD", "$299.00"},
		{"299.00", "", "$299.00"},
		{"399.00", "CAD", "399.00 CAD"},
		{"", "USD", ""},
	}
	for _, tt := range tests {
		if got := formatPrice(tt.amount, tt.currency); got != tt.want {
			t.Errorf("formatPrice(%q, %q) = %q, want %q", tt.amount, tt.currency, got, tt.want)
		}
	}
}
