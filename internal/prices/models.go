package prices

// PriceRecord is one row of commodity price data in the shape Agmarknet
// search results use. Field order is the column order of the serialized
// response, and the JSON names (including the "Prize" spelling) are what
// existing consumers parse.
type PriceRecord struct {
	SerialNumber string `json:"S.No"`
	City         string `json:"City"`
	Commodity    string `json:"Commodity"`
	MinPrice     string `json:"Min Prize"`
	MaxPrice     string `json:"Max Prize"`
	ModalPrice   string `json:"Model Prize"`
	Date         string `json:"Date"`
}

// Query is the validated parameter bundle for a price request. Commodity and
// state must be present and non-empty; market optionally narrows the search.
type Query struct {
	Commodity string `form:"commodity" binding:"required"`
	State     string `form:"state" binding:"required"`
	Market    string `form:"market"`
}

// City resolves the reported city: the market when one was given, otherwise
// the state.
func (q Query) City() string {
	if q.Market != "" {
		return q.Market
	}
	return q.State
}
