package books

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var (
	// ErrUnavailable means the books service could not be reached at all.
	ErrUnavailable = errors.New("books service unavailable")
	// ErrBadStatus means the books service answered with a non-200 status.
	ErrBadStatus = errors.New("books service rejected the lookup")
	// ErrNotFound means the books service has no record for the ISBN.
	ErrNotFound = errors.New("book not found")
)

// Book is the subset of the books-service record the loans API copies
// into a loan at creation time.
type Book struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Lookup resolves an ISBN against the books service.
type Lookup interface {
	ByISBN(ctx context.Context, isbn string) (Book, error)
}

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// ByISBN queries GET {base}/books?ISBN=<isbn> and returns the first match.
func (c *Client) ByISBN(ctx context.Context, isbn string) (Book, error) {
	reqURL := fmt.Sprintf("%s/books?ISBN=%s", c.baseURL, url.QueryEscape(isbn))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Book{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Book{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Book{}, fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}

	var results []Book
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Book{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(results) == 0 {
		return Book{}, fmt.Errorf("%w: ISBN %s", ErrNotFound, isbn)
	}

	return results[0], nil
}
