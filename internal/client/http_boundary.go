package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"todo-tracker/internal/api"
	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/validation"
)

// HTTPBoundary talks to the task API over HTTP.
type HTTPBoundary struct {
	baseURL string
	client  *http.Client
}

// NewHTTPBoundary creates a boundary for the server at baseURL. A zero
// timeout leaves requests bounded only by their context.
func NewHTTPBoundary(baseURL string, timeout time.Duration) *HTTPBoundary {
	return NewHTTPBoundaryWithClient(baseURL, &http.Client{Timeout: timeout})
}

// NewHTTPBoundaryWithClient creates a boundary using the given http.Client.
func NewHTTPBoundaryWithClient(baseURL string, client *http.Client) *HTTPBoundary {
	return &HTTPBoundary{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// List returns every task in server order.
func (b *HTTPBoundary) List(ctx context.Context) ([]domain.Task, error) {
	var body []api.TaskResponse
	if err := b.do(ctx, http.MethodGet, "/tasks", nil, &body); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(body))
	for _, resp := range body {
		task, err := decodeTask(resp)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// Create posts a new task.
func (b *HTTPBoundary) Create(ctx context.Context, draft domain.Draft) (domain.Task, error) {
	req := api.CreateTaskRequest{
		TaskName:    draft.Name,
		Description: draft.Description,
		Status:      statusToWire(draft.Status),
	}

	var body api.TaskResponse
	if err := b.do(ctx, http.MethodPost, "/tasks", req, &body); err != nil {
		return domain.Task{}, err
	}
	return decodeTask(body)
}

// Update replaces every mutable field of the task.
func (b *HTTPBoundary) Update(ctx context.Context, id int64, draft domain.Draft) (domain.Task, error) {
	req := api.UpdateTaskRequest{
		TaskName:    draft.Name,
		Description: draft.Description,
		Status:      statusToWire(draft.Status),
	}

	var body api.TaskResponse
	if err := b.do(ctx, http.MethodPut, taskPath(id), req, &body); err != nil {
		return domain.Task{}, err
	}
	return decodeTask(body)
}

// Delete removes the task.
func (b *HTTPBoundary) Delete(ctx context.Context, id int64) error {
	return b.do(ctx, http.MethodDelete, taskPath(id), nil, nil)
}

func (b *HTTPBoundary) do(ctx context.Context, method, path string, in, out interface{}) error {
	operation := method + " " + path

	var reqBody io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errors.WrapError(err, errors.ErrorTypeInvalidInput, "encode request")
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reqBody)
	if err != nil {
		return errors.NewNetworkError(operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return errors.NewNetworkError(operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return errorFromResponse(operation, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewNetworkError(operation, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// errorFromResponse maps a non-2xx response onto an AppError.
func errorFromResponse(operation string, resp *http.Response) error {
	var body api.ErrorResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, &body); err != nil || body.Detail == "" {
		body.Detail = http.StatusText(resp.StatusCode)
	}
	cause := fmt.Errorf("%s: %d %s", operation, resp.StatusCode, body.Detail)

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return errors.NewValidationError(body.Detail, &validation.ValidationError{
			Errors: []validation.FieldError{{
				Field:   "request",
				Message: body.Detail,
				Type:    validation.ErrorTypeInvalidValue,
			}},
		})
	case resp.StatusCode == http.StatusNotFound:
		return errors.WrapError(cause, errors.ErrorTypeNotFound, body.Detail)
	case resp.StatusCode == http.StatusGatewayTimeout:
		return errors.WrapError(cause, errors.ErrorTypeTimeout, body.Detail)
	case resp.StatusCode >= 500:
		return errors.NewStorageError(operation, cause)
	default:
		return errors.WrapError(cause, errors.ErrorTypeInvalidInput, body.Detail)
	}
}

func decodeTask(resp api.TaskResponse) (domain.Task, error) {
	task, err := resp.ToDomain()
	if err != nil {
		return domain.Task{}, errors.NewNetworkError("decode task", err)
	}
	if !task.IsValid() {
		return domain.Task{}, errors.NewNetworkError("decode task", fmt.Errorf("task %d has no name", task.ID))
	}
	return task, nil
}

func statusToWire(s domain.Status) *string {
	if s == "" {
		return nil
	}
	wire := s.String()
	return &wire
}

func taskPath(id int64) string {
	return "/tasks/" + strconv.FormatInt(id, 10)
}
