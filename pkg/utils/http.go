package utils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxResponseBodySize limita o corpo lido de fontes remotas
const MaxResponseBodySize = 10 << 20

// ErrBodyTooLarge indica um corpo de resposta acima do limite
var ErrBodyTooLarge = errors.New("response body too large")

// MakeRequest executa um GET e devolve o corpo quando o status for 2xx
func MakeRequest(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("error on request: %s status: %s body: %s", url, resp.Status, string(snippet))
	}

	return ReadLimited(resp.Body, MaxResponseBodySize)
}

// ReadLimited lê r inteiro e falha com ErrBodyTooLarge se passar de limit bytes
func ReadLimited(r io.Reader, limit int64) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}

	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, limit)
	}

	return body, nil
}
