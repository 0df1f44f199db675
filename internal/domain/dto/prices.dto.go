package dto

import "encoding/json"

// PriceQuery filters the commodity price dataset. Commodity, state and market
// are required; the rest narrow the result.
type PriceQuery struct {
	Commodity   string
	State       string
	Market      string
	Variety     string
	ArrivalDate string
	Offset      int64
	Limit       int64
}

// PriceRecord is one mandi price row. Prices arrive as strings or numbers
// depending on the dataset revision, so they stay as json.Number.
type PriceRecord struct {
	Commodity   string      `json:"commodity"`
	State       string      `json:"state"`
	Market      string      `json:"market"`
	Variety     string      `json:"variety"`
	ArrivalDate string      `json:"arrival_date"`
	MinPrice    json.Number `json:"min_price"`
	MaxPrice    json.Number `json:"max_price"`
	ModalPrice  json.Number `json:"modal_price"`
}

// PricePage is the inbound response shape for the prices endpoint.
type PricePage struct {
	Records []PriceRecord `json:"records"`
	Total   int64         `json:"total"`
	Offset  int64         `json:"offset"`
	Limit   int64         `json:"limit"`
}

// ValidParams lists the distinct filter values known to the dataset.
type ValidParams struct {
	Commodities []string `json:"commodities"`
	States      []string `json:"states"`
	Markets     []string `json:"markets"`
	Varieties   []string `json:"varieties"`
}
