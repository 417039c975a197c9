package recommendation

// Answers captures a volunteer's preferences for new initiatives.
type Answers struct {
	Cause      string `json:"cause" validate:"required"`
	Scale      string `json:"scale" validate:"required"`
	Timeline   string `json:"timeline" validate:"required"`
	Additional string `json:"additional,omitempty"`
}

// Request is the body of POST /generate-recommendations.
type Request struct {
	Answers *Answers `json:"answers" validate:"required"`
}

// Recommendation is one generated initiative idea.
type Recommendation struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Volunteers  string `json:"volunteers"`
	Timeline    string `json:"timeline"`
	Impact      string `json:"impact"`
}

// Response wraps the generated ideas.
type Response struct {
	Recommendations []Recommendation `json:"recommendations"`
}
