package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"golang.org/x/sync/singleflight"
)

// catalogGateway implements service.CatalogGateway. Concurrent lookups with the
// same limit share one backend call.
type catalogGateway struct {
	client *Client
	group  singleflight.Group
}

// NewCatalogGateway is the constructor for catalogGateway.
func NewCatalogGateway(client *Client) service.CatalogGateway {
	return &catalogGateway{client: client}
}

func (g *catalogGateway) ListProducts(ctx context.Context, limit int) ([]entity.ProductSnapshot, error) {
	key := strconv.Itoa(limit)

	v, err, _ := g.group.Do(key, func() (any, error) {
		var raw json.RawMessage
		err := g.client.call(ctx, request{
			op:     "list_products",
			method: http.MethodGet,
			path:   "/products",
			query:  url.Values{"limit": []string{key}},
		}, &raw)
		if err != nil {
			return nil, err
		}

		return decodeProducts(raw)
	})
	if err != nil {
		return nil, err
	}

	products, _ := v.([]entity.ProductSnapshot)

	return products, nil
}

// decodeProducts accepts either a bare array or {"products": [...]}.
func decodeProducts(raw json.RawMessage) ([]entity.ProductSnapshot, error) {
	if isNull(raw) {
		return []entity.ProductSnapshot{}, nil
	}

	var products []entity.ProductSnapshot
	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")) {
		if err := json.Unmarshal(raw, &products); err != nil {
			return nil, invalidResponse("list_products", err)
		}

		return products, nil
	}

	var page struct {
		Products []entity.ProductSnapshot `json:"products"`
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, invalidResponse("list_products", err)
	}
	if page.Products == nil {
		page.Products = []entity.ProductSnapshot{}
	}

	return page.Products, nil
}
