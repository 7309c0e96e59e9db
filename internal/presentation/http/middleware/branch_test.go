package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranps/tradebooks-api/internal/domain/entity"
	infraRepo "github.com/kiranps/tradebooks-api/internal/infrastructure/repository"
	"github.com/kiranps/tradebooks-api/pkg/pagination"
)

type stubBranchRepo struct {
	branch *entity.Branch
}

func (r *stubBranchRepo) Create(ctx context.Context, branch *entity.Branch) error { return nil }

func (r *stubBranchRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error) {
	if r.branch != nil && r.branch.ID == id {
		return r.branch, nil
	}
	return nil, nil
}

func (r *stubBranchRepo) GetByCode(ctx context.Context, code string) (*entity.Branch, error) {
	return nil, nil
}

func (r *stubBranchRepo) Update(ctx context.Context, branch *entity.Branch) error { return nil }
func (r *stubBranchRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }

func (r *stubBranchRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Branch, int64, error) {
	return nil, 0, nil
}

func (r *stubBranchRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	return false, nil
}

func (r *stubBranchRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func runBranchMiddleware(t *testing.T, repo *stubBranchRepo, header, role string) (*httptest.ResponseRecorder, context.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var reqCtx context.Context
	w := httptest.NewRecorder()
	r := gin.New()
	if role != "" {
		r.Use(func(c *gin.Context) { c.Set("user_role", role) })
	}
	r.Use(BranchMiddleware(repo))
	r.GET("/", func(c *gin.Context) {
		reqCtx = c.Request.Context()
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(BranchHeader, header)
	}
	r.ServeHTTP(w, req)
	return w, reqCtx
}

func TestBranchMiddlewarePropagatesBranchIntoContext(t *testing.T) {
	branch := &entity.Branch{ID: uuid.New(), Name: "Kochi", Code: "KCH"}
	repo := &stubBranchRepo{branch: branch}

	w, ctx := runBranchMiddleware(t, repo, branch.ID.String(), entity.RoleStaff)
	require.Equal(t, http.StatusOK, w.Code)

	got, ok := infraRepo.GetBranchID(ctx)
	require.True(t, ok)
	assert.Equal(t, branch.ID, got)
}

func TestBranchMiddlewareUnknownBranch(t *testing.T) {
	repo := &stubBranchRepo{}

	w, _ := runBranchMiddleware(t, repo, uuid.New().String(), entity.RoleStaff)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBranchMiddlewareAllBypassesScopeForAdmin(t *testing.T) {
	repo := &stubBranchRepo{}

	w, ctx := runBranchMiddleware(t, repo, "all", entity.RoleAdmin)
	require.Equal(t, http.StatusOK, w.Code)

	_, ok := infraRepo.GetBranchID(ctx)
	assert.False(t, ok)
	assert.Equal(t, true, ctx.Value(infraRepo.SkipBranchScopeKey))
}

func TestBranchMiddlewareAllForbiddenForStaff(t *testing.T) {
	repo := &stubBranchRepo{}

	w, _ := runBranchMiddleware(t, repo, "all", entity.RoleStaff)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
