package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/eshopcore/backoffice/internal/domain/errors"
	"github.com/eshopcore/backoffice/internal/domain/model"
	"github.com/eshopcore/backoffice/internal/domain/repository"
	"github.com/eshopcore/backoffice/internal/server/http/dto"
	"github.com/eshopcore/backoffice/internal/server/http/middleware"
	testhelpers "github.com/eshopcore/backoffice/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, route, target string, handler gin.HandlerFunc, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, handler)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func TestCurrentOperator(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentOperator(c); got != "" {
		t.Fatalf("expected empty operator when not set, got %q", got)
	}

	c.Set(middleware.OperatorContextKey, "operator")
	if got := CurrentOperator(c); got != "operator" {
		t.Fatalf("expected operator, got %q", got)
	}
}

func TestSessionHandlerOpen(t *testing.T) {
	key := testhelpers.RandomASCIIString(16, 32)
	body, _ := json.Marshal(dto.SessionRequest{AccessKey: key})
	handler := NewSessionHandler(testhelpers.SessionFacadeStub{OpenFn: func(gotKey string) (string, error) {
		if gotKey != key {
			t.Fatalf("unexpected access key passed to facade: %q", gotKey)
		}
		return "session-token", nil
	}})
	resp := performRequest(t, http.MethodPost, "/session", "/session", handler.Open, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Authorization"); got != "Bearer session-token" {
		t.Fatalf("unexpected authorization header %q", got)
	}

	result := resp.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	foundCookie := false
	for _, cookie := range result.Cookies() {
		if cookie.Name == "backoffice_token" {
			if cookie.Value != "session-token" {
				t.Fatalf("unexpected token stored in cookie: %q", cookie.Value)
			}
			foundCookie = true
			break
		}
	}
	if !foundCookie {
		t.Fatal("expected session cookie named backoffice_token")
	}
}

func TestSessionHandlerOpenFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.SessionFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "wrong key", body: []byte(`{"access_key":"nope"}`), facade: testhelpers.SessionFacadeStub{OpenFn: func(string) (string, error) {
			return "", domainErrors.ErrInvalidAccessKey
		}}, status: http.StatusUnauthorized},
		{name: "internal", body: []byte(`{"access_key":"key"}`), facade: testhelpers.SessionFacadeStub{OpenFn: func(string) (string, error) {
			return "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/session", "/session", NewSessionHandler(tt.facade).Open, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerRegister(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{})
	body := []byte(`{"total":125.5}`)
	resp := performRequest(t, http.MethodPost, "/orders", "/orders", handler.Register, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var decoded dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Total != 125.5 {
		t.Fatalf("unexpected order: %+v", decoded)
	}
}

func TestOrderHandlerRegisterFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.OrderFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("oops"), status: http.StatusBadRequest},
		{name: "negative total", body: []byte(`{"total":-1}`), facade: testhelpers.OrderFacadeStub{RegisterFn: func(context.Context, float64) (*model.Order, error) {
			return nil, domainErrors.ErrInvalidAmount
		}}, status: http.StatusUnprocessableEntity},
		{name: "internal", body: []byte(`{"total":1}`), facade: testhelpers.OrderFacadeStub{RegisterFn: func(context.Context, float64) (*model.Order, error) {
			return nil, errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/orders", "/orders", NewOrderHandler(tt.facade).Register, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerGet(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{})
	resp := performRequest(t, http.MethodGet, "/orders/:id", "/orders/7", handler.Get, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.ID != 7 {
		t.Fatalf("unexpected order: %+v", decoded)
	}
}

func TestOrderHandlerGetFailures(t *testing.T) {
	missing := testhelpers.OrderFacadeStub{OrderFn: func(context.Context, int64) (*model.Order, error) {
		return nil, domainErrors.ErrNotFound
	}}

	tests := []struct {
		name   string
		facade testhelpers.OrderFacadeStub
		target string
		status int
	}{
		{name: "bad id", facade: missing, target: "/orders/abc", status: http.StatusBadRequest},
		{name: "missing", facade: missing, target: "/orders/999", status: http.StatusNotFound},
		{name: "internal", facade: testhelpers.OrderFacadeStub{OrderFn: func(context.Context, int64) (*model.Order, error) {
			return nil, errors.New("boom")
		}}, target: "/orders/1", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodGet, "/orders/:id", tt.target, NewOrderHandler(tt.facade).Get, nil, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerRefunds(t *testing.T) {
	refunds := []model.Refund{{ID: 1, OrderID: 7}, {ID: 2, OrderID: 7}}
	facade := testhelpers.OrderFacadeStub{RefundsFn: func(context.Context, int64) ([]model.Refund, error) {
		return refunds, nil
	}}
	resp := performRequest(t, http.MethodGet, "/orders/:id/refunds", "/orders/7/refunds", NewOrderHandler(facade).Refunds, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded []dto.RefundResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded) != len(refunds) {
		t.Fatalf("expected %d refunds, got %d", len(refunds), len(decoded))
	}
}

func TestOrderHandlerRefundTotal(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{TotalFn: func(ctx context.Context, orderID int64) (float64, error) {
		if orderID != 7 {
			t.Fatalf("unexpected order id %d", orderID)
		}
		return 80, nil
	}}
	resp := performRequest(t, http.MethodGet, "/orders/:id/refunds/total", "/orders/7/refunds/total", NewOrderHandler(facade).RefundTotal, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.RefundTotalResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.OrderID != 7 || decoded.Total != 80 {
		t.Fatalf("unexpected total payload: %+v", decoded)
	}
}

func TestRefundHandlerCreate(t *testing.T) {
	handler := NewRefundHandler(testhelpers.RefundFacadeStub{}, 30)
	body := []byte(`{"order_id":7,"reason":"damaged","amount":50}`)
	resp := performRequest(t, http.MethodPost, "/refunds", "/refunds", handler.Create, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var decoded dto.RefundResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.OrderID != 7 || decoded.Amount != 50 || decoded.Status != string(model.RefundStatusPending) {
		t.Fatalf("unexpected refund: %+v", decoded)
	}
}

func TestRefundHandlerCreateFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.RefundFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("oops"), status: http.StatusBadRequest},
		{name: "missing order id", body: []byte(`{"amount":50}`), status: http.StatusBadRequest},
		{name: "unknown status", body: []byte(`{"order_id":7,"status":"SHIPPED"}`), facade: testhelpers.RefundFacadeStub{CreateFn: func(context.Context, repository.CreateRefundParams) (*model.Refund, error) {
			return nil, domainErrors.ErrInvalidStatus
		}}, status: http.StatusUnprocessableEntity},
		{name: "internal", body: []byte(`{"order_id":7,"amount":50}`), facade: testhelpers.RefundFacadeStub{CreateFn: func(context.Context, repository.CreateRefundParams) (*model.Refund, error) {
			return nil, errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/refunds", "/refunds", NewRefundHandler(tt.facade, 30).Create, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestRefundHandlerGet(t *testing.T) {
	handler := NewRefundHandler(testhelpers.RefundFacadeStub{}, 30)
	resp := performRequest(t, http.MethodGet, "/refunds/:id", "/refunds/5", handler.Get, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	missing := NewRefundHandler(testhelpers.RefundFacadeStub{RefundFn: func(context.Context, int64) (*model.Refund, error) {
		return nil, nil
	}}, 30)
	resp = performRequest(t, http.MethodGet, "/refunds/:id", "/refunds/999", missing.Get, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for missing refund, got %d", resp.Code)
	}
}

func TestRefundHandlerList(t *testing.T) {
	facade := testhelpers.RefundFacadeStub{ListByStatusFn: func(ctx context.Context, status model.RefundStatus) ([]model.Refund, error) {
		if status != model.RefundStatusApproved {
			t.Fatalf("unexpected status filter %s", status)
		}
		return []model.Refund{{ID: 1, Status: status}}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/refunds", "/refunds?status=APPROVED", NewRefundHandler(facade, 30).List, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/refunds", "/refunds", NewRefundHandler(testhelpers.RefundFacadeStub{}, 30).List, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 without filter, got %d", resp.Code)
	}

	invalid := testhelpers.RefundFacadeStub{ListByStatusFn: func(context.Context, model.RefundStatus) ([]model.Refund, error) {
		return nil, domainErrors.ErrInvalidStatus
	}}
	resp = performRequest(t, http.MethodGet, "/refunds", "/refunds?status=SHIPPED", NewRefundHandler(invalid, 30).List, nil, nil)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422 for unknown status, got %d", resp.Code)
	}
}

func TestRefundHandlerUpdate(t *testing.T) {
	handler := NewRefundHandler(testhelpers.RefundFacadeStub{}, 30)
	body := []byte(`{"reason":"customer kept item"}`)
	resp := performRequest(t, http.MethodPatch, "/refunds/:id", "/refunds/5", handler.Update, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.RefundResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Reason != "customer kept item" {
		t.Fatalf("unexpected refund: %+v", decoded)
	}
}

func TestRefundHandlerDelete(t *testing.T) {
	handler := NewRefundHandler(testhelpers.RefundFacadeStub{}, 30)
	resp := performRequest(t, http.MethodDelete, "/refunds/:id", "/refunds/5", handler.Delete, nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}

	missing := NewRefundHandler(testhelpers.RefundFacadeStub{DeleteFn: func(context.Context, int64) bool {
		return false
	}}, 30)
	resp = performRequest(t, http.MethodDelete, "/refunds/:id", "/refunds/999", missing.Delete, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for missing refund, got %d", resp.Code)
	}
}

func TestRefundHandlerResolution(t *testing.T) {
	handler := NewRefundHandler(testhelpers.RefundFacadeStub{}, 30)

	tests := []struct {
		name    string
		op      gin.HandlerFunc
		want model.RefundStatus
	}{
		{"approve", handler.Approve, model.RefundStatusApproved},
		{"reject", handler.Reject, model.RefundStatusRejected},
		{"cancel", handler.Cancel, model.RefundStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/refunds/:id/"+tt.name, "/refunds/5/"+tt.name, tt.op, nil, nil)
			if resp.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", resp.Code)
			}
			var decoded dto.RefundResponse
			if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if decoded.Status != string(tt.want) {
				t.Fatalf("expected status %s, got %s", tt.want, decoded.Status)
			}
		})
	}
}

func TestRefundHandlerResolutionFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "closed refund", err: domainErrors.ErrIllegalTransition, status: http.StatusConflict},
		{name: "missing refund", err: domainErrors.ErrNotFound, status: http.StatusNotFound},
		{name: "internal", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := testhelpers.RefundFacadeStub{ProcessFn: func(context.Context, int64, model.RefundStatus) (*model.Refund, error) {
				return nil, tt.err
			}}
			resp := performRequest(t, http.MethodPost, "/refunds/:id/approve", "/refunds/5/approve", NewRefundHandler(facade, 30).Approve, nil, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestRefundHandlerAmount(t *testing.T) {
	handler := NewRefundHandler(testhelpers.RefundFacadeStub{}, 30)
	body := []byte(`{"amount":30}`)
	resp := performRequest(t, http.MethodPut, "/refunds/:id/amount", "/refunds/5/amount", handler.Amount, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.RefundResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Amount != 30 {
		t.Fatalf("unexpected refund: %+v", decoded)
	}

	negative := NewRefundHandler(testhelpers.RefundFacadeStub{IssueFn: func(context.Context, int64, float64) (*model.Refund, error) {
		return nil, domainErrors.ErrInvalidAmount
	}}, 30)
	resp = performRequest(t, http.MethodPut, "/refunds/:id/amount", "/refunds/5/amount", negative.Amount, []byte(`{"amount":-1}`), jsonHeaders)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422 for negative amount, got %d", resp.Code)
	}
}

func TestRefundHandlerEligibility(t *testing.T) {
	facade := testhelpers.RefundFacadeStub{EligibleFn: func(ctx context.Context, id int64, windowDays int) (bool, error) {
		if windowDays != 30 {
			t.Fatalf("expected configured window 30, got %d", windowDays)
		}
		return true, nil
	}}
	resp := performRequest(t, http.MethodGet, "/refunds/:id/eligibility", "/refunds/5/eligibility", NewRefundHandler(facade, 30).Eligibility, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.EligibilityResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !decoded.Eligible || decoded.WindowDays != 30 {
		t.Fatalf("unexpected eligibility payload: %+v", decoded)
	}
}

func TestRefundHandlerEligibilityWindowOverride(t *testing.T) {
	facade := testhelpers.RefundFacadeStub{EligibleFn: func(ctx context.Context, id int64, windowDays int) (bool, error) {
		if windowDays != 7 {
			t.Fatalf("expected override window 7, got %d", windowDays)
		}
		return false, nil
	}}
	resp := performRequest(t, http.MethodGet, "/refunds/:id/eligibility", "/refunds/5/eligibility?days=7", NewRefundHandler(facade, 30).Eligibility, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/refunds/:id/eligibility", "/refunds/5/eligibility?days=zero", NewRefundHandler(facade, 30).Eligibility, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for bad override, got %d", resp.Code)
	}
}

func TestHealthHandler(t *testing.T) {
	ok := NewHealthHandler(pingerStub{})
	resp := performRequest(t, http.MethodGet, "/healthz", "/healthz", ok.Check, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	down := NewHealthHandler(pingerStub{err: errors.New("store unavailable")})
	resp = performRequest(t, http.MethodGet, "/healthz", "/healthz", down.Check, nil, nil)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", resp.Code)
	}
}

type pingerStub struct {
	err error
}

func (p pingerStub) HealthCheck(context.Context) error { return p.err }
