package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/infinitechange/coaching-site/internal/core/domain"
)

type stubTestimonialService struct {
	listActiveFn func(ctx context.Context) ([]domain.Testimonial, error)
	listAllFn    func(ctx context.Context) ([]domain.Testimonial, error)
	getFn        func(ctx context.Context, id string) (*domain.Testimonial, error)
	createFn     func(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error)
	updateFn     func(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error)
	deleteFn     func(ctx context.Context, id string) error
}

func (s *stubTestimonialService) ListActive(ctx context.Context) ([]domain.Testimonial, error) {
	return s.listActiveFn(ctx)
}

func (s *stubTestimonialService) ListAll(ctx context.Context) ([]domain.Testimonial, error) {
	return s.listAllFn(ctx)
}

func (s *stubTestimonialService) Get(ctx context.Context, id string) (*domain.Testimonial, error) {
	return s.getFn(ctx, id)
}

func (s *stubTestimonialService) Create(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error) {
	return s.createFn(ctx, t)
}

func (s *stubTestimonialService) Update(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error) {
	return s.updateFn(ctx, t)
}

func (s *stubTestimonialService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

// asAdmin plants a verified identity the way the route guard would.
func asAdmin(c echo.Context) {
	c.Set("identity", &domain.Identity{ID: "user-1", Email: "admin@example.com", Role: domain.RoleAdmin})
}

func TestTestimonialHandler_PublicList_HidesFlag(t *testing.T) {
	e := newTestEcho()
	stub := &stubTestimonialService{
		listActiveFn: func(ctx context.Context) ([]domain.Testimonial, error) {
			return []domain.Testimonial{{ID: "t-1", Name: "Jane", Content: "Great", Rating: 5, IsActive: true}}, nil
		},
	}
	h := NewTestimonialHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/testimonials", nil), rec)

	if err := h.PublicList(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if _, present := items[0]["isActive"]; present {
		t.Fatalf("public feed must not expose the moderation flag")
	}
}

func TestTestimonialHandler_AdminList_IncludesFlag(t *testing.T) {
	e := newTestEcho()
	stub := &stubTestimonialService{
		listAllFn: func(ctx context.Context) ([]domain.Testimonial, error) {
			return []domain.Testimonial{{ID: "t-1", Name: "Jane", Content: "Great", IsActive: false}}, nil
		},
	}
	h := NewTestimonialHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/admin/testimonials", nil), rec)

	if err := h.AdminList(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if active, present := items[0]["isActive"]; !present || active != false {
		t.Fatalf("admin list must expose isActive, got %+v", items[0])
	}
}

func TestTestimonialHandler_Create_Defaults(t *testing.T) {
	e := newTestEcho()
	stub := &stubTestimonialService{
		createFn: func(ctx context.Context, in *domain.Testimonial) (*domain.Testimonial, error) {
			if in.Rating != 5 {
				t.Fatalf("expected default rating 5, got %d", in.Rating)
			}
			if !in.IsActive {
				t.Fatalf("expected default isActive true")
			}
			created := *in
			created.ID = "t-new"
			return &created, nil
		},
	}
	h := NewTestimonialHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/admin/testimonials", `{"name":"Jane","content":"Great session"}`), rec)
	asAdmin(c)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestTestimonialHandler_Create_RatingOutOfRange(t *testing.T) {
	e := newTestEcho()
	stub := &stubTestimonialService{
		createFn: func(ctx context.Context, in *domain.Testimonial) (*domain.Testimonial, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewTestimonialHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/admin/testimonials", `{"name":"Jane","content":"x","rating":6}`), rec)
	asAdmin(c)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp validationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Details) == 0 {
		t.Fatalf("expected validation details")
	}
}

func TestTestimonialHandler_Create_NoIdentity(t *testing.T) {
	e := newTestEcho()
	h := NewTestimonialHandler(&stubTestimonialService{})

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/admin/testimonials", `{"name":"Jane","content":"x"}`), rec)

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestTestimonialHandler_Update_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubTestimonialService{
		updateFn: func(ctx context.Context, in *domain.Testimonial) (*domain.Testimonial, error) {
			if in.ID != "missing" {
				t.Fatalf("expected path id, got %s", in.ID)
			}
			return nil, domain.ErrNotFound
		},
	}
	h := NewTestimonialHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, "/api/admin/testimonials/missing", `{"name":"Jane","content":"x"}`), rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	asAdmin(c)

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTestimonialHandler_Delete(t *testing.T) {
	e := newTestEcho()
	stub := &stubTestimonialService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "t-1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	h := NewTestimonialHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/api/admin/testimonials/t-1", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("t-1")
	asAdmin(c)

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
