package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/CompraGlobal-api/internal/domain"
	"github.com/jhoicas/CompraGlobal-api/pkg/logger"
)

// Client cliente HTTP compartido contra la pasarela upstream. Política de
// reintento acotada: máximo 1 reintento con backoff fijo, solo ante fallo de
// transporte o 5xx. Los fallos se convierten en domain.ErrUpstreamUnavailable;
// el transporte crudo nunca escapa hacia las capas superiores.
type Client struct {
	baseURL string
	http    *http.Client
	backoff time.Duration
	log     *logger.Logger
}

// NewClient construye el cliente con el timeout y backoff configurados.
func NewClient(baseURL string, timeout, backoff time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		backoff: backoff,
		log:     log,
	}
}

// DoJSON ejecuta la petición con auth Bearer y decodifica la respuesta JSON en out.
func (c *Client) DoJSON(ctx context.Context, method, path, token string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("upstream: serializar cuerpo: %w", err)
		}
	}

	raw, err := c.doOnce(ctx, method, path, token, payload)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) {
			// 4xx no se reintenta: el cuerpo puede traer un código de negocio
			// (ej. "ya existe" en wishlist) que decide el caller.
			return se
		}
		// Un único reintento con backoff fijo; nada de timers ad hoc por pantalla.
		c.log.Debug().Err(err).Str("path", path).Msg("reintentando petición upstream")
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, ctx.Err())
		case <-time.After(c.backoff):
		}
		raw, err = c.doOnce(ctx, method, path, token, payload)
		if err != nil {
			if errors.As(err, &se) {
				return se
			}
			c.log.Warn().Err(err).Str("path", path).Msg("colaborador upstream no disponible")
			return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: respuesta ilegible: %v", domain.ErrUpstreamUnavailable, err)
	}
	return nil
}

func (c *Client) doOnce(ctx context.Context, method, path, token string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("upstream %s: status %d", path, resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		return raw, &StatusError{Code: resp.StatusCode, Body: raw}
	}
	return raw, nil
}

// StatusError respuesta 4xx con su cuerpo, para que el caller decida.
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream: status %d", e.Code)
}
