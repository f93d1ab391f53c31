package model

import (
	"net/http"
	"time"
)

// Response is a fully read HTTP response from the catalog API.
type Response struct {
	Status   int
	Duration time.Duration
	Headers  http.Header
	Body     []byte
}

// ErrorResponse is the body the catalog API sends with 4xx/5xx statuses.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ListParams are the query parameters accepted by the collection endpoints.
// Nil pointers and empty strings are not sent.
type ListParams struct {
	Limit  *int
	Skip   *int
	Select []string
	SortBy string
	Order  string
}

// SortOrder values accepted by the order parameter.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)
