package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	httputil "jumatrek/pkg/http"
	"jumatrek/pkg/model"
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api returned %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// Diagnostics mirrors the GET /test body.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
	AdminOpenMode    bool     `json:"admin_open_mode"`
}

// APIClient talks to a running Juma Trek API.
type APIClient struct {
	http *HttpClient
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{http: NewHttpClient(baseURL)}
}

func (c *APIClient) HTTP() *HttpClient {
	return c.http
}

func (c *APIClient) UseAdminKey(key string) {
	c.http.Headers["X-Admin-Key"] = key
}

func (c *APIClient) UseToken(token string) {
	c.http.Headers["Authorization"] = "Bearer " + token
}

func (c *APIClient) Diagnostics(ctx context.Context) (*Diagnostics, error) {
	var out Diagnostics
	if err := c.call(ctx, http.MethodGet, "/test", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	var out model.LoginResponse
	body := model.LoginRequest{Email: email, Password: password}
	if err := c.call(ctx, http.MethodPost, "/api/admin/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) ListTreks(ctx context.Context, query url.Values) ([]model.Trek, error) {
	path := "/api/treks"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	var out []model.Trek
	if err := c.call(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) GetTrek(ctx context.Context, id string) (*model.Trek, error) {
	var out model.Trek
	if err := c.call(ctx, http.MethodGet, "/api/treks/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTrek returns the id of the stored trek.
func (c *APIClient) CreateTrek(ctx context.Context, trek *model.Trek) (string, error) {
	var out httputil.IDResponse
	if err := c.call(ctx, http.MethodPost, "/api/treks", trek, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *APIClient) DeleteTrek(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/api/treks/"+url.PathEscape(id), nil, nil)
}

func (c *APIClient) SubmitInquiry(ctx context.Context, inq *model.Inquiry) (*httputil.MessageResponse, error) {
	var out httputil.MessageResponse
	if err := c.call(ctx, http.MethodPost, "/api/inquiries", inq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) ListInquiries(ctx context.Context) ([]model.Inquiry, error) {
	var out []model.Inquiry
	if err := c.call(ctx, http.MethodGet, "/api/inquiries", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) CreateAdmin(ctx context.Context, req *model.CreateAdminRequest) (string, error) {
	var out httputil.IDResponse
	if err := c.call(ctx, http.MethodPost, "/api/admin/users", req, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *APIClient) call(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.http.request(ctx, method, path, body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: GetErrorMessage(resp)}
		var errBody struct {
			Code string `json:"code"`
		}
		if resp.DecodeJSON(&errBody) == nil {
			apiErr.Code = errBody.Code
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := resp.DecodeJSON(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
