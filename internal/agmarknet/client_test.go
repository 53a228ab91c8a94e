package agmarknet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agmarknet-scraper/internal/prices"
)

func TestNew(t *testing.T) {
	c := New()

	require.NotNil(t, c)
	require.NotNil(t, c.client)
	assert.Equal(t, 10*time.Second, c.client.Timeout)
}

func TestFetchPrices(t *testing.T) {
	c := New()

	t.Run("returns a single row for the query", func(t *testing.T) {
		records, err := c.FetchPrices(context.Background(), prices.Query{
			Commodity: "Wheat",
			State:     "Punjab",
		})

		require.NoError(t, err)
		require.Len(t, records, 1)

		record := records[0]
		assert.Equal(t, "1", record.SerialNumber)
		assert.Equal(t, "Punjab", record.City)
		assert.Equal(t, "Wheat", record.Commodity)
		assert.Equal(t, "2200", record.MinPrice)
		assert.Equal(t, "2400", record.MaxPrice)
		assert.Equal(t, "2300", record.ModalPrice)
		assert.Equal(t, time.Now().Format(dateLayout), record.Date)
	})

	t.Run("market narrows the city", func(t *testing.T) {
		records, err := c.FetchPrices(context.Background(), prices.Query{
			Commodity: "Onion",
			State:     "Maharashtra",
			Market:    "Pune",
		})

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Pune", records[0].City)
	})

	t.Run("date is formatted like the result table", func(t *testing.T) {
		records, err := c.FetchPrices(context.Background(), prices.Query{
			Commodity: "Rice",
			State:     "Kerala",
		})

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Regexp(t, `^\d{2} [A-Z][a-z]{2} \d{4}$`, records[0].Date)
	})
}
