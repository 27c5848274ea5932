package upstream

import "encoding/json"

// Envelope is the uniform wrapper every backend microservice returns.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
	Errors  []string        `json:"errors,omitempty"`
	Meta    *Meta           `json:"meta,omitempty"`
}

type Meta struct {
	Pagination *Pagination `json:"pagination,omitempty"`
	Timestamp  string      `json:"timestamp,omitempty"`
	Version    string      `json:"version,omitempty"`
}

type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// pagedItems is the list payload nested under Envelope.Data.
type pagedItems[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}
