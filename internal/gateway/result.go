package gateway

// Result is the outcome of a single tool invocation. A success carries the
// decoded response body prior to envelope unwrapping; a failure carries a
// human-readable reason. Network faults, bad statuses and decode problems
// are deliberately collapsed into the same failure shape.
type Result struct {
	Tool    string
	Success bool
	Body    map[string]any
	Reason  string
}

func success(tool string, body map[string]any) Result {
	return Result{Tool: tool, Success: true, Body: body}
}

func failure(tool string, err error) Result {
	return Result{Tool: tool, Reason: err.Error()}
}
