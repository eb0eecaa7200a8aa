package models

// REAPIResponse is the native envelope returned by the re-api backend.
// ResultCount is the server's own count and may reflect server-side
// truncation, so it is carried verbatim rather than recomputed from the
// aircraft slice.
type REAPIResponse struct {
	Now         float64    `json:"now"`
	ResultCount int        `json:"resultCount"`
	Ptime       float64    `json:"ptime"`
	Aircraft    []Aircraft `json:"aircraft"`
}

// V2Response is the native envelope returned by the OpenAPI v2 endpoints.
// It has no processing-time field.
type V2Response struct {
	Now   float64    `json:"now"`
	Total int        `json:"total"`
	Ctime float64    `json:"ctime"`
	Ptime float64    `json:"ptime"`
	Msg   string     `json:"msg"`
	Ac    []Aircraft `json:"ac"`
}
