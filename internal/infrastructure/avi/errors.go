package avi

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrEmptyResponse = errors.New("response carried neither AddressInfo nor Error")
)

const maxErrorBody = 512

// statusError keeps a bounded excerpt of a non-200 body.
func statusError(statusCode int, body io.Reader) error {
	excerpt, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
	text := strings.TrimSpace(string(excerpt))
	if text == "" {
		return fmt.Errorf("unexpected status %d", statusCode)
	}
	return fmt.Errorf("unexpected status %d: %s", statusCode, text)
}

type faultError struct {
	Code   string
	String string
}

func (e *faultError) Error() string {
	return fmt.Sprintf("soap fault [%s]: %s", e.Code, e.String)
}
