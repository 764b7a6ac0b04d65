// Package recommend turns a matched intent or raw message into a product
// suggestion for the chat widget's product card.
package recommend

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/libertyflags/flaggy/internal/catalog"
)

// Display constants for the product card. These are presentation values,
// not computed from review data.
const (
	displayRating      = 4.8
	displayReviewCount = 1347
	displayTimesBought = 5200
)

// Recommendation is a shaped product suggestion ready for display.
type Recommendation struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Handle      string  `json:"handle"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Price       string  `json:"price"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	TimesBought int     `json:"timesBought"`
	VariantID   string  `json:"variantId,omitempty"`
	URL         string  `json:"url"`
}

// Resolver picks a collection for a chat turn and fetches a representative
// product from the catalog.
type Resolver struct {
	catalog catalog.Client
	timeout time.Duration
}

// New creates a resolver. A nil client disables recommendations entirely
// (every Resolve returns nil).
func New(c catalog.Client, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Resolver{catalog: c, timeout: timeout}
}

// Resolve returns a product suggestion for the turn, or nil. It never
// returns an error: catalog failures and timeouts are logged and degrade
// to "no recommendation" so a flaky Storefront API cannot break the chat
// response.
func (r *Resolver) Resolve(ctx context.Context, intentName, message string) *Recommendation {
	collection := r.collectionFor(intentName, message)
	if collection == "" || r.catalog == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	products, err := r.catalog.CollectionProducts(ctx, collection, 1)
	if err != nil {
		log.Printf("recommend: fetching collection %q: %v", collection, err)
		return nil
	}
	if len(products) == 0 {
		return nil
	}

	return shape(products[0])
}

// collectionFor resolves the target collection: no-product intents are
// hard-excluded first, then the keyword table, then the intent fallback.
func (r *Resolver) collectionFor(intentName, message string) string {
	if noProductIntents[intentName] {
		return ""
	}

	msg := strings.ToLower(message)
	for _, route := range keywordRoutes {
		if strings.Contains(msg, route.keyword) {
			return route.collection
		}
	}

	return intentCollections[intentName]
}

func shape(p catalog.Product) *Recommendation {
	return &Recommendation{
		ID:          p.ID,
		Title:       p.Title,
		Handle:      p.Handle,
		ImageURL:    p.ImageURL,
		Price:       formatPrice(p.Price, p.CurrencyCode),
		Rating:      displayRating,
		ReviewCount: displayReviewCount,
		TimesBought: displayTimesBought,
		VariantID:   p.VariantID,
		URL:         "/products/" + p.Handle,
	}
}

func formatPrice(amount, currency string) string {
	if amount == "" {
		return ""
	}
	if currency == "USD" || currency == "" {
		return "$" + amount
	}
	return amount + " " + currency
}
