// Package collaborators holds the HTTP clients of the services an order
// depends on: the sku catalog, the buyer address book and the payment service.
package collaborators

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ordering/internal/pkg/errs"

	pkgerrors "github.com/pkg/errors"
)

const DefaultTimeout = 5 * time.Second

// maxErrorBody caps how much of a failed response ends up in the error.
const maxErrorBody = 512

type jsonClient struct {
	name    string
	baseURL string
	http    *http.Client
}

func newJSONClient(name, baseURL string, timeout time.Duration) jsonClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return jsonClient{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// do sends in as JSON (when not nil) and decodes a 2xx body into out. Every
// failure is reported as a collaborator failure of c.
func (c jsonClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errs.NewCollaboratorFailureError(c.name, pkgerrors.Wrap(err, "encode request"))
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errs.NewCollaboratorFailureError(c.name, pkgerrors.Wrap(err, "build request"))
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.NewCollaboratorFailureError(c.name, pkgerrors.Wrapf(err, "%s %s", method, path))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return errs.NewCollaboratorFailureError(c.name,
			fmt.Errorf("%s %s: unexpected status %d: %s", method, path, resp.StatusCode, bytes.TrimSpace(snippet)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.NewCollaboratorFailureError(c.name, pkgerrors.Wrap(err, "decode response"))
	}
	return nil
}
