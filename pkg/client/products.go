package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// ProductsClient fetches the public catalog. Unlike settings there is
// no safe fallback catalog: a failed load yields an empty list.
type ProductsClient struct {
	baseURL string
	http    *http.Client
}

func NewProductsClient(baseURL string, httpClient *http.Client) *ProductsClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ProductsClient{baseURL: baseURL, http: httpClient}
}

func (p *ProductsClient) Load(ctx context.Context) []Product {
	url := fmt.Sprintf("%s/api/products?t=%d", p.baseURL, time.Now().UnixNano())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Printf("products load failed: %v", err)
		return []Product{}
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := p.http.Do(req)
	if err != nil {
		log.Printf("products load failed: %v", err)
		return []Product{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("products load returned %d", resp.StatusCode)
		return []Product{}
	}

	var products []Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		log.Printf("products decode failed: %v", err)
		return []Product{}
	}
	if products == nil {
		products = []Product{}
	}
	return products
}

// CategoryAll disables category narrowing.
const CategoryAll = "all"

// FilterProducts is the pure client-side predicate conjunction: a
// product passes when the category matches (or the filter is "all")
// AND the search term, if any, is a case-insensitive substring of the
// name or description. O(n) per call, acceptable for a catalog of tens
// of items.
func FilterProducts(products []Product, category, search string) []Product {
	search = strings.ToLower(strings.TrimSpace(search))

	filtered := make([]Product, 0, len(products))
	for _, product := range products {
		if category != "" && category != CategoryAll && product.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(product.Name), search) &&
			!strings.Contains(strings.ToLower(product.Description), search) {
			continue
		}
		filtered = append(filtered, product)
	}
	return filtered
}
