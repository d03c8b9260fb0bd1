// sheets/decode.go
package sheets

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fadhlanhapp/tripdash-backend/models"
)

// ErrBadResponse is returned when the gviz envelope or the embedded
// JSON is malformed.
var ErrBadResponse = errors.New("malformed sheet response")

// gvizResponse is the JSON body inside the setResponse() wrapper
type gvizResponse struct {
	Status string            `json:"status"`
	Table  models.SheetTable `json:"table"`
}

// DecodeResponse strips the gviz wrapper and parses the embedded table.
// The wrapper is a JS comment plus a google.visualization.Query.setResponse(...)
// call; its exact length varies between deployments, so the JSON body is
// located by content (first '{' to last '}') rather than by fixed offsets.
func DecodeResponse(raw []byte) (*models.SheetTable, error) {
	start := bytes.IndexByte(raw, '{')
	end := bytes.LastIndexByte(raw, '}')
	if start < 0 || end <= start {
		return nil, fmt.Errorf("%w: no JSON body in %d bytes", ErrBadResponse, len(raw))
	}

	var resp gvizResponse
	if err := json.Unmarshal(raw[start:end+1], &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}

	if resp.Status == "error" {
		return nil, fmt.Errorf("%w: source reported an error response", ErrBadResponse)
	}

	return &resp.Table, nil
}
