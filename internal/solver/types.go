package solver

// SolveRequest is the body of POST /api/solve. Caller-supplied, lives for
// one request.
type SolveRequest struct {
	Platform string `json:"platform"`
	Slug     string `json:"slug"`
	Language string `json:"language"`
}

// SolveResponse is the uniform response envelope. Exactly one of Code and
// Error is non-nil; both fields are always present in the JSON body.
type SolveResponse struct {
	Code  *string `json:"code"`
	Error *string `json:"error"`
}

func codeResponse(code string) SolveResponse {
	return SolveResponse{Code: &code}
}

func errorResponse(msg string) SolveResponse {
	return SolveResponse{Error: &msg}
}
