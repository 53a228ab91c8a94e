package prices

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryCity(t *testing.T) {
	q := Query{Commodity: "Wheat", State: "Punjab"}
	assert.Equal(t, "Punjab", q.City())

	q.Market = "Ludhiana"
	assert.Equal(t, "Ludhiana", q.City())
}
