package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/infinitechange/coaching-site/internal/core/domain"
)

type stubCatalogService struct {
	listPublicFn func(ctx context.Context, kind domain.ServiceKind) ([]domain.Service, error)
	listAdminFn  func(ctx context.Context, kind domain.ServiceKind) ([]domain.Service, error)
	getFn        func(ctx context.Context, kind domain.ServiceKind, id string) (*domain.Service, error)
	createFn     func(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	updateFn     func(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	deleteFn     func(ctx context.Context, kind domain.ServiceKind, id string) error
	countsFn     func(ctx context.Context) (map[domain.ServiceKind]int64, error)
}

func (s *stubCatalogService) ListPublic(ctx context.Context, kind domain.ServiceKind) ([]domain.Service, error) {
	return s.listPublicFn(ctx, kind)
}

func (s *stubCatalogService) ListAdmin(ctx context.Context, kind domain.ServiceKind) ([]domain.Service, error) {
	return s.listAdminFn(ctx, kind)
}

func (s *stubCatalogService) Get(ctx context.Context, kind domain.ServiceKind, id string) (*domain.Service, error) {
	return s.getFn(ctx, kind, id)
}

func (s *stubCatalogService) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	return s.createFn(ctx, svc)
}

func (s *stubCatalogService) Update(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	return s.updateFn(ctx, svc)
}

func (s *stubCatalogService) Delete(ctx context.Context, kind domain.ServiceKind, id string) error {
	return s.deleteFn(ctx, kind, id)
}

func (s *stubCatalogService) Counts(ctx context.Context) (map[domain.ServiceKind]int64, error) {
	return s.countsFn(ctx)
}

func TestCatalogHandler_PublicList(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		listPublicFn: func(ctx context.Context, kind domain.ServiceKind) ([]domain.Service, error) {
			if kind != domain.KindMindfulness {
				t.Fatalf("unexpected kind: %s", kind)
			}
			return []domain.Service{{
				ID:          "svc-1",
				Kind:        kind,
				Title:       "Intro",
				Description: "desc",
				Duration:    "60 minutes",
				Level:       "Beginner",
				BookingLink: "https://calendly.com/x",
			}}, nil
		},
	}
	h := NewCatalogHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/mindfulness-services", nil), rec)

	if err := h.PublicList(domain.KindMindfulness)(c); err != nil {
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
	if items[0]["calendlyLink"] != "https://calendly.com/x" {
		t.Fatalf("expected calendlyLink, got %+v", items[0])
	}
	if _, present := items[0]["serviceLink"]; present {
		t.Fatalf("individual services must not expose serviceLink")
	}
	if items[0]["features"] == nil {
		t.Fatalf("features must serialise as an array, not null")
	}
}

func TestCatalogHandler_Corporate_UsesServiceLink(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		listPublicFn: func(ctx context.Context, kind domain.ServiceKind) ([]domain.Service, error) {
			return []domain.Service{{
				ID:          "svc-2",
				Kind:        domain.KindCorporate,
				Title:       "Workshop",
				Icon:        "briefcase",
				Category:    "Workshops",
				BookingLink: "https://example.com/enquire",
			}}, nil
		},
	}
	h := NewCatalogHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/corporate-services", nil), rec)

	if err := h.PublicList(domain.KindCorporate)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if items[0]["serviceLink"] != "https://example.com/enquire" {
		t.Fatalf("expected serviceLink, got %+v", items[0])
	}
	if _, present := items[0]["calendlyLink"]; present {
		t.Fatalf("corporate services must not expose calendlyLink")
	}
}

func TestCatalogHandler_Create_CoreShape(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		createFn: func(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
			if svc.Kind != domain.KindCounselling {
				t.Fatalf("unexpected kind: %s", svc.Kind)
			}
			if svc.Title != "Individual Counselling" || svc.Duration != "50 minutes" {
				t.Fatalf("unexpected service: %+v", svc)
			}
			created := *svc
			created.ID = "svc-new"
			return &created, nil
		},
	}
	h := NewCatalogHandler(stub)

	body := `{"title":"Individual Counselling","description":"One to one","duration":"50 minutes","level":"Individual","calendlyLink":"https://calendly.com/x"}`
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/admin/counselling-services", body), rec)
	asAdmin(c)

	if err := h.Create(domain.KindCounselling)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestCatalogHandler_Create_MissingFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		createFn: func(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	h := NewCatalogHandler(stub)

	// Corporate entries require icon and category.
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/admin/corporate-services", `{"title":"Workshop","description":"x"}`), rec)
	asAdmin(c)

	if err := h.Create(domain.KindCorporate)(c); err != nil {
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

func TestCatalogHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		getFn: func(ctx context.Context, kind domain.ServiceKind, id string) (*domain.Service, error) {
			return nil, domain.ErrNotFound
		},
	}
	h := NewCatalogHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/admin/mindfulness-services/missing", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(domain.KindMindfulness)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCatalogHandler_Delete(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		deleteFn: func(ctx context.Context, kind domain.ServiceKind, id string) error {
			if kind != domain.KindBeyondWords || id != "svc-1" {
				t.Fatalf("unexpected args: %s %s", kind, id)
			}
			return nil
		},
	}
	h := NewCatalogHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/api/admin/beyond-words-services/svc-1", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("svc-1")
	asAdmin(c)

	if err := h.Delete(domain.KindBeyondWords)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCatalogHandler_Counts(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		countsFn: func(ctx context.Context) (map[domain.ServiceKind]int64, error) {
			return map[domain.ServiceKind]int64{
				domain.KindMindfulness: 3,
				domain.KindCounselling: 2,
				domain.KindBeyondWords: 1,
				domain.KindCorporate:   4,
			}, nil
		},
	}
	h := NewCatalogHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/admin/service-counts", nil), rec)
	asAdmin(c)

	if err := h.Counts(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp countsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.MindfulnessServices != 3 || resp.CounsellingServices != 2 || resp.BeyondWordsServices != 1 || resp.CorporateServices != 4 {
		t.Fatalf("unexpected counts: %+v", resp)
	}
}
