package render

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/story-editor/internal/domain"
)

// maxProblemBody caps how much of an error body is read.
const maxProblemBody = 64 << 10

// problem is the subset of an RFC 9457 body the renderer sends back.
type problem struct {
	Detail string         `json:"detail"`
	Errors []problemField `json:"errors"`
}

type problemField struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// translateStatus maps a non-success response from the renderer to a domain
// error. Problem bodies contribute their detail and field errors.
func translateStatus(resp *http.Response) error {
	p := readProblem(resp)

	detail := p.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}
	detail = "render: " + detail

	switch code := resp.StatusCode; {
	case code == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		if len(p.Errors) > 0 {
			fields := make(map[string]string, len(p.Errors))
			for _, f := range p.Errors {
				fields[strings.TrimPrefix(f.Location, "body.")] = f.Message
			}
			return &domain.ValidationError{Fields: fields}
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)
	case code == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)
	case code == http.StatusTooManyRequests || code >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("%s: unexpected status %d", detail, code)
	}
}

func readProblem(resp *http.Response) problem {
	var p problem
	if resp.Body == nil || !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return p
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProblemBody))
	if err != nil {
		return problem{}
	}
	if err := json.Unmarshal(body, &p); err != nil {
		return problem{}
	}
	return p
}
