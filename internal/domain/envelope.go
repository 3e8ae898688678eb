package domain

// Envelope is the {"data": ...} wrapper listmonk places around every payload.
type Envelope[T any] struct {
	Data T `json:"data"`
}

// Page is a paginated result set.
type Page[T any] struct {
	Results []T    `json:"results"`
	Query   string `json:"query,omitempty"`
	Total   int    `json:"total"`
	PerPage int    `json:"per_page"`
	Page    int    `json:"page"`
}

// PageQuery holds pagination and free-text search parameters shared by the
// list endpoints.
type PageQuery struct {
	Page    int
	PerPage int
	Query   string
}
