package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Korikanas/ncart/src/shared/domain/failure"
)

// Resultados registrados por el observer
const (
	OutcomeSuccess  = "success"
	OutcomeNetwork  = "network_error"
	OutcomeRejected = "rejected"
)

// RequestObserver recibe el resultado de cada llamada al backend
type RequestObserver interface {
	ObserveBackendRequest(op, outcome string)
}

// RestClient cliente HTTP base para el backend REST de la tienda
type RestClient struct {
	httpClient *http.Client
	baseURL    string
	observer   RequestObserver
}

// NewRestClient crea una nueva instancia del cliente
func NewRestClient(baseURL string, timeout time.Duration) *RestClient {
	return &RestClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// WithObserver registra un observer de llamadas (métricas)
func (c *RestClient) WithObserver(observer RequestObserver) *RestClient {
	c.observer = observer
	return c
}

// Do ejecuta una llamada y decodifica la respuesta en out (si no es nil).
// Errores de transporte -> failure.Network; status no 2xx -> failure.Rejected.
func (c *RestClient) Do(ctx context.Context, op, method, path, authToken string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: error marshalling request: %w", op, err)
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: error creating request: %w", op, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", BearerToken(authToken))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(op, OutcomeNetwork)
		return failure.NewNetwork(op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(op, OutcomeNetwork)
		return failure.NewNetwork(op, fmt.Errorf("error reading response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.observe(op, OutcomeRejected)
		return failure.NewRejected(op, resp.StatusCode, ServerMessage(respBody))
	}

	if out != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			c.observe(op, OutcomeRejected)
			return failure.NewRejected(op, resp.StatusCode, "invalid response body: "+err.Error())
		}
	}

	c.observe(op, OutcomeSuccess)
	return nil
}

func (c *RestClient) observe(op, outcome string) {
	if c.observer != nil {
		c.observer.ObserveBackendRequest(op, outcome)
	}
}

// BearerToken arma el header Authorization; un esquema ya presente
// (en cualquier capitalización) no se duplica
func BearerToken(token string) string {
	if scheme, rest, found := strings.Cut(token, " "); found && strings.EqualFold(scheme, "Bearer") {
		return "Bearer " + strings.TrimSpace(rest)
	}
	return "Bearer " + token
}

const maxRawMessage = 200

// ServerMessage extrae el mensaje de error del body de la respuesta
func ServerMessage(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(trimmed, &payload); err == nil {
		for _, key := range []string{"message", "error", "msg"} {
			if v, ok := payload[key].(string); ok && v != "" {
				return v
			}
		}
		return ""
	}

	raw := string(trimmed)
	if len(raw) > maxRawMessage {
		raw = raw[:maxRawMessage]
	}
	return raw
}
