// helpers/http_client.go
package helpers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goccy/go-json"

	"github.com/condominios-online/condominios_mid/internal/metrics"
)

// HTTPError envuelve códigos de estado no exitosos para permitir un manejo granular.
type HTTPError struct {
	Status int
	Body   string
}

// Error imprime el estado y cuerpo asociado.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

// Mensaje extrae el texto que el backend pone en message, error o response.
func (e *HTTPError) Mensaje() string {
	var body map[string]any
	if err := json.Unmarshal([]byte(e.Body), &body); err != nil {
		return ""
	}
	for _, k := range []string{"message", "error", "response", "Message"} {
		if s, ok := body[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// IsHTTPError permite consultar si el error corresponde a un status específico.
func IsHTTPError(err error, status int) bool {
	if err == nil {
		return false
	}
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Status == status
	}
	return false
}

// Config global de reintentos
var (
	defaultRetryCount  = 0
	defaultBackoffBase = 300 * time.Millisecond
	maxBackoff         = 3 * time.Second
)

func SetDefaultRetryCount(n int) {
	if n < 0 {
		n = 0
	}
	defaultRetryCount = n
}

func SetRetryBackoff(baseMs int) {
	if baseMs <= 0 {
		baseMs = 300
	}
	defaultBackoffBase = time.Duration(baseMs) * time.Millisecond
}

// Request describe una llamada saliente. Upstream etiqueta las métricas.
type Request struct {
	Upstream string
	Method   string
	URL      string
	Headers  map[string]string
	Body     any
	Timeout  time.Duration
}

var httpClient = &http.Client{
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		if len(via) >= 5 {
			return errors.New("too many redirects")
		}
		return nil
	},
}

// Do ejecuta la llamada y retorna el cuerpo crudo. Un status fuera de 2xx retorna *HTTPError.
// Solo las lecturas (GET, HEAD, OPTIONS) se reintentan, y solo ante errores de transporte o 5xx.
// Una escritura se envía una sola vez.
func Do(ctx context.Context, r Request) ([]byte, error) {
	var body []byte
	if r.Body != nil {
		var err error
		body, err = json.Marshal(r.Body)
		if err != nil {
			return nil, err
		}
	}

	var out []byte
	operation := func() error {
		res, err := doOnce(ctx, r, body)
		if err != nil {
			if !idempotente(r.Method) || !isRetryableErr(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		out = res
		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(retryPolicy(), ctx))
	return out, err
}

// DoJSON ejecuta la llamada y decodifica la respuesta JSON en out.
func DoJSON(ctx context.Context, r Request, out any) error {
	raw, err := Do(ctx, r)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("respuesta JSON inválida de %s: %w", upstreamLabel(r), err)
	}
	return nil
}

func doOnce(ctx context.Context, r Request, body []byte) ([]byte, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range r.Headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}

	start := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream(upstreamLabel(r), r.Method, 0, time.Since(start))
		return nil, err
	}
	defer resp.Body.Close()
	metrics.ObserveUpstream(upstreamLabel(r), r.Method, resp.StatusCode, time.Since(start))

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(b)),
		}
	}
	return b, nil
}

func retryPolicy() backoff.BackOff {
	boff := backoff.NewExponentialBackOff()
	boff.InitialInterval = defaultBackoffBase
	boff.MaxInterval = maxBackoff
	boff.MaxElapsedTime = 0
	return backoff.WithMaxRetries(boff, uint64(defaultRetryCount))
}

func idempotente(method string) bool {
	switch strings.ToUpper(method) {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

func upstreamLabel(r Request) string {
	if r.Upstream != "" {
		return r.Upstream
	}
	return "desconocido"
}

func isRetryableErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Status >= 500 && he.Status != http.StatusNotImplemented
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	l := strings.ToLower(err.Error())
	return strings.Contains(l, "connection reset") ||
		strings.Contains(l, "connection refused") ||
		strings.Contains(l, "server closed idle connection")
}
