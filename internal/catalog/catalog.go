// Package catalog fetches products from the Shopify Storefront GraphQL API.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Product is one sellable item from a collection.
type Product struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Handle       string `json:"handle"`
	ImageURL     string `json:"imageUrl,omitempty"`
	Price        string `json:"price"`
	CurrencyCode string `json:"currencyCode"`
	VariantID    string `json:"variantId,omitempty"`
}

// Client is the product-catalog lookup the recommendation resolver depends
// on. Implementations are best-effort: slow, flaky, or empty results are
// all expected.
type Client interface {
	CollectionProducts(ctx context.Context, handle string, limit int) ([]Product, error)
}

// StorefrontClient calls the Shopify Storefront GraphQL API. A single
// attempt per call, bounded by the http.Client timeout; retries are the
// caller's business (currently: nobody retries).
type StorefrontClient struct {
	endpoint string
	token    string
	http     *http.Client
}

// NewStorefrontClient creates a client for the given shop domain
// (myshop.myshopify.com) and Storefront access token.
func NewStorefrontClient(domain, token, apiVersion string, timeout time.Duration) *StorefrontClient {
	return &StorefrontClient{
		endpoint: fmt.Sprintf("https://%s/api/%s/graphql.json", domain, apiVersion),
		token:    token,
		http:     &http.Client{Timeout: timeout},
	}
}

const collectionProductsQuery = `query CollectionProducts($handle: String!, $first: Int!) {
  collection(handle: $handle) {
    products(first: $first) {
      edges {
        node {
          id
          title
          handle
          featuredImage { url }
          priceRange { minVariantPrice { amount currencyCode } }
          variants(first: 1) { edges { node { id } } }
        }
      }
    }
  }
}`

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type collectionProductsResponse struct {
	Data struct {
		Collection *struct {
			Products struct {
				Edges []struct {
					Node struct {
						ID            string `json:"id"`
						Title         string `json:"title"`
						Handle        string `json:"handle"`
						FeaturedImage *struct {
							URL string `json:"url"`
						} `json:"featuredImage"`
						PriceRange struct {
							MinVariantPrice struct {
								Amount       string `json:"amount"`
								CurrencyCode string `json:"currencyCode"`
							} `json:"minVariantPrice"`
						} `json:"priceRange"`
						Variants struct {
							Edges []struct {
								Node struct {
									ID string `json:"id"`
								} `json:"node"`
							} `json:"edges"`
						} `json:"variants"`
					} `json:"node"`
				} `json:"edges"`
			} `json:"products"`
		} `json:"collection"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}

// CollectionProducts returns up to limit products from the named collection.
// An unknown collection yields an empty slice, not an error.
func (c *StorefrontClient) CollectionProducts(ctx context.Context, handle string, limit int) ([]Product, error) {
	if limit <= 0 {
		limit = 1
	}

	body, err := json.Marshal(graphqlRequest{
		Query: collectionProductsQuery,
		Variables: map[string]any{
			"handle": handle,
			"first":  limit,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding storefront query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building storefront request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Storefront-Access-Token", c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling storefront API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("storefront API returned status %d", resp.StatusCode)
	}

	var out collectionProductsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding storefront response: %w", err)
	}
	if len(out.Errors) > 0 {
		return nil, fmt.Errorf("storefront API error: %s", out.Errors[0].Message)
	}
	if out.Data.Collection == nil {
		return nil, nil
	}

	products := make([]Product, 0, len(out.Data.Collection.Products.Edges))
	for _, e := range out.Data.Collection.Products.Edges {
		n := e.Node
		p := Product{
			ID:           n.ID,
			Title:        n.Title,
			Handle:       n.Handle,
			Price:        n.PriceRange.MinVariantPrice.Amount,
			CurrencyCode: n.PriceRange.MinVariantPrice.CurrencyCode,
		}
		if n.FeaturedImage != nil {
			p.ImageURL = n.FeaturedImage.URL
		}
		if len(n.Variants.Edges) > 0 {
			p.VariantID = n.Variants.Edges[0].Node.ID
		}
		products = append(products, p)
	}
	return products, nil
}
