// Package addresscheck verifies postal addresses against the remote address service.
package addresscheck

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ordertaking/internal/core/domain/model/order"
)

const verifyPath = "/v1/addresses/verify"

// Address is the request and response body of the verify endpoint.
type Address struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	AddressLine3 string `json:"addressLine3,omitempty"`
	AddressLine4 string `json:"addressLine4,omitempty"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
}

// Client calls POST {baseURL}/v1/addresses/verify.
//
// A 200 response carries the normalized address. A 404 means the address
// does not exist. Anything else, including transport failures, is reported
// as an *order.RemoteServiceError.
type Client struct {
	url    string
	client *http.Client
}

// NewClient creates a client for the service at baseURL.
// A nil httpClient is replaced by one with the given timeout.
func NewClient(baseURL string, timeout time.Duration, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		url:    strings.TrimSuffix(baseURL, "/") + verifyPath,
		client: httpClient,
	}
}

// CheckAddressExists matches order.CheckAddressExists.
func (c *Client) CheckAddressExists(ctx context.Context, address order.UnvalidatedAddress) (order.CheckedAddress, error) {
	body, err := json.Marshal(fromUnvalidated(address))
	if err != nil {
		return order.CheckedAddress{}, remote(fmt.Errorf("encode address: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return order.CheckedAddress{}, remote(fmt.Errorf("build verify request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return order.CheckedAddress{}, remote(fmt.Errorf("verify request: %w", err))
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return order.CheckedAddress{}, order.ErrAddressNotFound
	default:
		return order.CheckedAddress{}, remote(fmt.Errorf("verify returned %s", resp.Status))
	}

	var checked Address
	if err = json.NewDecoder(resp.Body).Decode(&checked); err != nil {
		return order.CheckedAddress{}, remote(fmt.Errorf("decode verify response: %w", err))
	}

	return checked.toChecked(), nil
}

func remote(err error) error {
	return order.NewRemoteServiceError(order.AddressServiceName, err)
}

func fromUnvalidated(a order.UnvalidatedAddress) Address {
	return Address{
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		AddressLine3: a.AddressLine3,
		AddressLine4: a.AddressLine4,
		City:         a.City,
		ZipCode:      a.ZipCode,
	}
}

func (a Address) toChecked() order.CheckedAddress {
	return order.CheckedAddress{
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		AddressLine3: a.AddressLine3,
		AddressLine4: a.AddressLine4,
		City:         a.City,
		ZipCode:      a.ZipCode,
	}
}
