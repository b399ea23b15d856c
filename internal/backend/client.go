package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/StudioBellaVista/salon-admin/internal/cache"
)

// Prefixo de cache invalidado por qualquer escrita de agendamento.
const appointmentsCachePrefix = "GET /api/appointments"

// Client fala com o backend do salão. Construído explicitamente e
// injetado onde for preciso: nada de singleton de pacote.
type Client struct {
	baseURL string
	http    *http.Client
	store   cache.Store
	ttl     time.Duration
	token   string
	log     zerolog.Logger
}

type Options struct {
	BaseURL string
	Timeout time.Duration
	Store   cache.Store
	TTL     time.Duration
	Token   string
	Logger  zerolog.Logger
}

func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.TTL <= 0 {
		opts.TTL = 60 * time.Second
	}
	if opts.Store == nil {
		opts.Store = cache.NewMemory()
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    &http.Client{Timeout: opts.Timeout},
		store:   opts.Store,
		ttl:     opts.TTL,
		token:   opts.Token,
		log:     opts.Logger,
	}
}

// --------------------------------------------------
// Core request
// --------------------------------------------------

func (c *Client) do(
	ctx context.Context,
	method string,
	path string,
	payload any,
) ([]byte, error) {

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().
			Str("method", method).
			Str("path", path).
			Err(err).
			Msg("backend request failed")
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("backend request")

	if resp.StatusCode >= 400 {
		if resp.StatusCode >= 500 {
			return nil, fmt.Errorf("backend returned %d for %s %s", resp.StatusCode, method, path)
		}
		msg := firstMessage(data)
		if msg == "" {
			msg = fmt.Sprintf("backend returned %d", resp.StatusCode)
		}
		return nil, &ValidationError{Status: resp.StatusCode, Message: msg}
	}

	return data, nil
}

// --------------------------------------------------
// GET com cache read-through
// --------------------------------------------------

func (c *Client) getCached(ctx context.Context, path string) ([]byte, error) {
	key := "GET " + path

	if data, ok := c.store.Get(ctx, key); ok {
		c.log.Debug().Str("path", path).Msg("cache hit")
		return data, nil
	}

	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	c.store.Set(ctx, key, data, c.ttl)
	return data, nil
}

// --------------------------------------------------
// Escritas (invalidam o cache de agendamentos)
// --------------------------------------------------

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	data, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return nil, err
	}
	c.store.DeletePrefix(ctx, appointmentsCachePrefix)
	return data, nil
}

func (c *Client) put(ctx context.Context, path string, payload any) ([]byte, error) {
	data, err := c.do(ctx, http.MethodPut, path, payload)
	if err != nil {
		return nil, err
	}
	c.store.DeletePrefix(ctx, appointmentsCachePrefix)
	return data, nil
}

func (c *Client) delete(ctx context.Context, path string) error {
	if _, err := c.do(ctx, http.MethodDelete, path, nil); err != nil {
		return err
	}
	c.store.DeletePrefix(ctx, appointmentsCachePrefix)
	return nil
}

// listInto busca uma lista cacheada e normaliza o envelope. Formato
// desconhecido degrada para coleção vazia, só logando.
func (c *Client) listInto(ctx context.Context, path string, out any) error {
	data, err := c.getCached(ctx, path)
	if err != nil {
		return err
	}

	if err := UnmarshalList(data, out); err != nil {
		c.log.Warn().Str("path", path).Msg("unrecognized list shape, returning empty")
	}
	return nil
}
