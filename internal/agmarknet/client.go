// Package agmarknet is the client for agmarknet.gov.in commodity price data.
//
// Real searches need a session and the ASP.NET __VIEWSTATE token from the
// search page before the form can be posted; none of that is implemented.
// FetchPrices makes no request and returns a single placeholder row in the
// upstream result shape, keeping the API contract stable for consumers.
package agmarknet

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"agmarknet-scraper/internal/prices"
)

const (
	// BaseURL is the commodity-wise market price search page.
	BaseURL = "https://agmarknet.gov.in/SearchCmmMkt.aspx"

	// UserAgent goes on search requests; the site serves browsers only.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	dateLayout = "02 Jan 2006"
)

// Example values matching the min/max/modal price columns of a search result.
var (
	placeholderMin   = decimal.NewFromInt(2200)
	placeholderMax   = decimal.NewFromInt(2400)
	placeholderModal = decimal.NewFromInt(2300)
)

// Client fetches commodity prices from Agmarknet.
type Client struct {
	client *http.Client
}

var _ prices.Source = (*Client)(nil)

// New creates a Client with a request timeout suited to the search page.
func New() *Client {
	return &Client{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchPrices returns the price rows for the query: one row carrying the
// query's commodity and city, the placeholder prices and the current date.
func (c *Client) FetchPrices(ctx context.Context, q prices.Query) ([]prices.PriceRecord, error) {
	record := prices.PriceRecord{
		SerialNumber: "1",
		City:         q.City(),
		Commodity:    q.Commodity,
		MinPrice:     placeholderMin.String(),
		MaxPrice:     placeholderMax.String(),
		ModalPrice:   placeholderModal.String(),
		Date:         time.Now().Format(dateLayout),
	}

	return []prices.PriceRecord{record}, nil
}
