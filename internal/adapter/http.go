package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. Requests that outlive the timeout are reported as [ErrTimeout].
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, baseURL: baseURL, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/user/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/register")
	if err != nil {
		return mapTransportError("register request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// Login implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/user/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/login")
	if err != nil {
		return mapTransportError("login request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// Version implements [ServerAdapter]. It GETs /api/version and returns the
// server's build version string.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", mapTransportError("version request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var vr models.VersionResponse
	if err = json.Unmarshal(resp.Body(), &vr); err != nil {
		return "", fmt.Errorf("decode version response: %w", err)
	}

	return vr.Version, nil
}

// List implements [notebook.RemoteNoteStore]. It GETs the full note
// collection from GET /api/notes. Requires a valid bearer token.
func (h *httpServerAdapter) List(ctx context.Context) ([]models.Note, error) {
	resp, err := h.authedRequest(ctx).Get("/api/notes")
	if err != nil {
		return nil, mapTransportError("list notes request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var notes []models.Note
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("decode notes response: %w", err)
	}

	return notes, nil
}

// Create implements [notebook.RemoteNoteStore]. It POSTs the note input to
// POST /api/notes and returns the created record with its server-assigned id
// and timestamps. Requires a valid bearer token.
func (h *httpServerAdapter) Create(ctx context.Context, input models.NoteInput) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&note).
		Post("/api/notes")
	if err != nil {
		return models.Note{}, mapTransportError("create note request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// Update implements [notebook.RemoteNoteStore]. It PATCHes the note fields to
// PATCH /api/notes/{id} and returns the full updated record. Requires a valid
// bearer token.
func (h *httpServerAdapter) Update(ctx context.Context, noteID string, patch models.NotePatch) (models.Note, error) {
	var note models.Note

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		SetResult(&note).
		Patch("/api/notes/" + url.PathEscape(noteID))
	if err != nil {
		return models.Note{}, mapTransportError("update note request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// Delete implements [notebook.RemoteNoteStore]. It sends a DELETE request to
// DELETE /api/notes/{id}. The server echoes the deleted record; the adapter
// only reports success or failure. Requires a valid bearer token.
func (h *httpServerAdapter) Delete(ctx context.Context, noteID string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/notes/" + url.PathEscape(noteID))
	if err != nil {
		return mapTransportError("delete note request", err)
	}

	return mapHTTPError(resp)
}

// Upload implements [notebook.RemoteBlobStore]. It POSTs the named payload to
// POST /api/blobs and returns the canonical storage path the server filed the
// blob under. Requires a valid bearer token.
func (h *httpServerAdapter) Upload(ctx context.Context, name string, payload []byte) (string, error) {
	var uploaded models.BlobUploadResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.BlobUploadRequest{Name: name, Data: payload}).
		SetResult(&uploaded).
		Post("/api/blobs")
	if err != nil {
		return "", mapTransportError("upload blob request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return uploaded.Path, nil
}

// ResolveURL implements [notebook.RemoteBlobStore]. It GETs a short-lived
// signed URL for the stored blob from GET /api/blobs/resolve. The server
// mints the URL relative to its own root, so the adapter resolves it against
// the configured base URL before returning: callers always receive a URL
// that is fetchable outside the client. Requires a valid bearer token.
func (h *httpServerAdapter) ResolveURL(ctx context.Context, path string) (string, error) {
	var resolved models.BlobURLResponse

	resp, err := h.authedRequest(ctx).
		SetQueryParam("path", path).
		SetResult(&resolved).
		Get("/api/blobs/resolve")
	if err != nil {
		return "", mapTransportError("resolve blob url request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return h.absoluteURL(resolved.URL)
}

// absoluteURL resolves a server-relative fetch URL against the adapter's
// base URL. An already-absolute URL passes through unchanged.
func (h *httpServerAdapter) absoluteURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse blob fetch url: %w", err)
	}
	if u.IsAbs() {
		return raw, nil
	}

	base, err := url.Parse(h.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	return base.ResolveReference(u).String(), nil
}

// Remove implements [notebook.RemoteBlobStore]. It sends a DELETE request to
// DELETE /api/blobs for the given storage path. Requires a valid bearer
// token.
func (h *httpServerAdapter) Remove(ctx context.Context, path string) error {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("path", path).
		Delete("/api/blobs")
	if err != nil {
		return mapTransportError("remove blob request", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
