package collaborators

import (
	"context"
	"net/http"
	"time"

	"ordering/internal/core/ports"
)

type pricedSkusRequest struct {
	SkuIDs []string `json:"sku_ids"`
}

type pricedSkuDTO struct {
	SkuID    string `json:"sku_id"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

type pricedSkusResponse struct {
	Skus []pricedSkuDTO `json:"skus"`
}

// CatalogClient prices skus through POST /skus/priced.
type CatalogClient struct {
	client jsonClient
}

var _ ports.CatalogService = (*CatalogClient)(nil)

func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	return &CatalogClient{client: newJSONClient("catalog", baseURL, timeout)}
}

func (c *CatalogClient) GetPricedSkus(ctx context.Context, skuIDs []string) ([]ports.PricedSku, error) {
	var resp pricedSkusResponse
	if err := c.client.do(ctx, http.MethodPost, "/skus/priced", pricedSkusRequest{SkuIDs: skuIDs}, &resp); err != nil {
		return nil, err
	}

	skus := make([]ports.PricedSku, 0, len(resp.Skus))
	for _, s := range resp.Skus {
		skus = append(skus, ports.PricedSku{
			SkuID:    s.SkuID,
			Quantity: s.Quantity,
			Price:    s.Price,
			Name:     s.Name,
			ImageURL: s.ImageURL,
		})
	}
	return skus, nil
}
