package model

type PriceItemResponse struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	PricePerRai string `json:"price_per_rai"`
	SortOrder   int32  `json:"sort_order,omitempty"`
	Active      bool   `json:"active"`
}

type PriceListResponse struct {
	Crops       []PriceItemResponse `json:"crops"`
	Sprays      []PriceItemResponse `json:"sprays"`
	DepositRate string              `json:"deposit_rate"`
}

type ListPriceItemsResponse struct {
	Items []PriceItemResponse `json:"items"`
}

type UpsertPriceItemRequest struct {
	Key         string        `json:"key" validate:"required,max=64,excludesall=/ "`
	Name        string        `json:"name" validate:"required,max=128"`
	PricePerRai NumericString `json:"price_per_rai" validate:"required"`
	SortOrder   int32         `json:"sort_order"`
	Active      *bool         `json:"active"`
}
