package api

// Common request/response structures

// CalculateRequest defines the payload for the plain-text calculate endpoint.
// The srs field carries the item's serialized state in the legacy
// "Day, Mon DayNum F.FF/I.II" form; absent or null means a new item and the
// default state is substituted. The signal has no default - omitting it is a
// caller error.
type CalculateRequest struct {
	SRS    *string `json:"srs,omitempty"`
	Signal *int    `json:"signal"        validate:"required,gte=0,lte=4"`
}

// ReviewRequest defines the payload for the structured review endpoint.
// Absent interval/factor fields take the new-item defaults independently.
type ReviewRequest struct {
	Interval *float64 `json:"interval,omitempty"`
	Factor   *float64 `json:"factor,omitempty"`
	Signal   *int     `json:"signal"             validate:"required,gte=0,lte=4"`
}

// ReviewResponse defines the successful response for the structured review
// endpoint. ReviewID identifies this calculation in the logs; the service
// stores nothing under it.
type ReviewResponse struct {
	ReviewID       string  `json:"review_id"`
	NextReviewDate string  `json:"next_review_date"` // YYYY-MM-DD
	NewFactor      float64 `json:"new_factor"`
	NewInterval    float64 `json:"new_interval"`
}
