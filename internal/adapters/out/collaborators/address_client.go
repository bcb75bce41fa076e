package collaborators

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/google/uuid"
)

type addressDTO struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	Detail string `json:"detail"`
}

// AddressClient reads one entry of a buyer's address book.
type AddressClient struct {
	client jsonClient
}

var _ ports.AddressService = (*AddressClient)(nil)

func NewAddressClient(baseURL string, timeout time.Duration) *AddressClient {
	return &AddressClient{client: newJSONClient("address book", baseURL, timeout)}
}

func (c *AddressClient) GetAddress(ctx context.Context, userID, addressID uuid.UUID) (order.Address, error) {
	var dto addressDTO
	path := fmt.Sprintf("/users/%s/addresses/%s", userID, addressID)
	if err := c.client.do(ctx, http.MethodGet, path, nil, &dto); err != nil {
		return order.Address{}, err
	}
	return order.Address{Name: dto.Name, Mobile: dto.Mobile, Detail: dto.Detail}, nil
}
