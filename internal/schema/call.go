package schema

// ContentBlock is a single piece of tool output in MCP content format.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// CallResult is the outcome of a single tool call as seen by the protocol
// layer. Failures travel as error-flagged text payloads; they never cross
// the protocol boundary as errors.
type CallResult struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError,omitempty"`
}

// TextResult wraps plain text in a successful CallResult.
func TextResult(text string) CallResult {
	return CallResult{Content: []ContentBlock{{Type: "text", Text: text}}}
}

// ErrorResult wraps a failure message in an error-flagged CallResult.
func ErrorResult(text string) CallResult {
	return CallResult{
		Content: []ContentBlock{{Type: "text", Text: text}},
		IsError: true,
	}
}
