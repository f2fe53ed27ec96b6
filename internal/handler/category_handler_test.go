package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"restaurant-hub/internal/model"
)

// MockCategoryService is a mock implementation of service.CategoryService.
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryService) Create(ctx context.Context, in *model.CategoryCreate) (*model.Category, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryService) Update(ctx context.Context, id int, in *model.CategoryUpdate) (*model.Category, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// newCategoryRouter mounts the handler the way the real router does so
// path parameters resolve.
func newCategoryRouter(h *CategoryHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/categories", h.List)
	r.Post("/api/categories", h.Create)
	r.Put("/api/categories/{id}", h.Update)
	r.Delete("/api/categories/{id}", h.Delete)
	return r
}

func TestCategoryHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockCategoryService)
		router := newCategoryRouter(NewCategoryHandler(mockSvc, logger))

		stored := &model.Category{ID: 1, Name: "Drinks"}
		mockSvc.On("Create", mock.Anything, &model.CategoryCreate{Name: "Drinks"}).Return(stored, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(`{"name":"Drinks"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp model.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)

		data := resp.Data.(map[string]any)
		assert.Equal(t, "Drinks", data["name"])
		assert.EqualValues(t, 0, data["orderIndex"])
	})

	t.Run("Validation failure", func(t *testing.T) {
		mockSvc := new(MockCategoryService)
		router := newCategoryRouter(NewCategoryHandler(mockSvc, logger))

		mockSvc.On("Create", mock.Anything, &model.CategoryCreate{}).
			Return(nil, model.NewDomainError(model.ErrCodeValidation, "Category name is required"))

		req := httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		mockSvc := new(MockCategoryService)
		router := newCategoryRouter(NewCategoryHandler(mockSvc, logger))

		req := httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(`{"name":`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "Create")
	})
}

func TestCategoryHandler_Delete(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockCategoryService)
		router := newCategoryRouter(NewCategoryHandler(mockSvc, logger))

		mockSvc.On("Delete", mock.Anything, 5).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/categories/5", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Category deleted")
	})

	t.Run("Dependent items yield 400 with the count", func(t *testing.T) {
		mockSvc := new(MockCategoryService)
		router := newCategoryRouter(NewCategoryHandler(mockSvc, logger))

		mockSvc.On("Delete", mock.Anything, 5).Return(&model.DependentItemsError{Count: 3})

		req := httptest.NewRequest(http.MethodDelete, "/api/categories/5", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp model.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "Cannot delete category with 3 menu items. Move items to another category first.", resp.Error)
	})

	t.Run("Not found", func(t *testing.T) {
		mockSvc := new(MockCategoryService)
		router := newCategoryRouter(NewCategoryHandler(mockSvc, logger))

		mockSvc.On("Delete", mock.Anything, 42).Return(model.ErrCategoryNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/categories/42", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Invalid id", func(t *testing.T) {
		mockSvc := new(MockCategoryService)
		router := newCategoryRouter(NewCategoryHandler(mockSvc, logger))

		req := httptest.NewRequest(http.MethodDelete, "/api/categories/abc", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "Delete")
	})
}

func TestCategoryHandler_Update(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Partial update", func(t *testing.T) {
		mockSvc := new(MockCategoryService)
		router := newCategoryRouter(NewCategoryHandler(mockSvc, logger))

		name := "Desserts"
		stored := &model.Category{ID: 2, Name: name}
		mockSvc.On("Update", mock.Anything, 2, &model.CategoryUpdate{Name: &name}).Return(stored, nil)

		req := httptest.NewRequest(http.MethodPut, "/api/categories/2", strings.NewReader(`{"name":"Desserts"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Empty body is a validation error", func(t *testing.T) {
		mockSvc := new(MockCategoryService)
		router := newCategoryRouter(NewCategoryHandler(mockSvc, logger))

		mockSvc.On("Update", mock.Anything, 2, &model.CategoryUpdate{}).Return(nil, model.ErrNoFieldsToUpdate)

		req := httptest.NewRequest(http.MethodPut, "/api/categories/2", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "No fields to update")
	})
}

func TestCategoryHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	mockSvc := new(MockCategoryService)
	router := newCategoryRouter(NewCategoryHandler(mockSvc, logger))

	categories := []model.Category{
		{ID: 1, Name: "Starters"},
		{ID: 2, Name: "Mains", OrderIndex: 1},
	}
	mockSvc.On("List", mock.Anything).Return(categories, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp model.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 2)
}
