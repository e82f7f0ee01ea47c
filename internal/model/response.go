package model

// Response is the envelope every successful handler returns.
type Response struct {
	Status  int         `json:"status"`
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// ErrorResponse is the envelope every failed handler returns. Data is
// always null and Errors is always present, possibly empty.
type ErrorResponse struct {
	Status  int         `json:"status"`
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  []string    `json:"errors"`
	Data    interface{} `json:"data"`
}

// Page wraps a paginated listing.
type Page struct {
	Data        interface{} `json:"data"`
	TotalDocs   int64       `json:"totalDocs"`
	TotalPages  int64       `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
	Limit       int         `json:"limit"`
}

func NewPage(data interface{}, totalDocs int64, page, limit int) Page {
	totalPages := totalDocs / int64(limit)
	if totalDocs%int64(limit) != 0 {
		totalPages++
	}
	return Page{
		Data:        data,
		TotalDocs:   totalDocs,
		TotalPages:  totalPages,
		CurrentPage: page,
		Limit:       limit,
	}
}
