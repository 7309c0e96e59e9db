package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ctxKey string

const (
	// BranchIDKey is the context key for branch ID
	BranchIDKey ctxKey = "branch_id"
	// SkipBranchScopeKey is the context key for skipping branch scope (admin)
	SkipBranchScopeKey ctxKey = "skip_branch_scope"
)

// BranchScope returns a GORM scope that filters by branch.
// Apply it to queries for branch-scoped documents. If SkipBranchScopeKey
// is set in the context (admin viewing all branches), no filter is applied.
func BranchScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if skipScope, ok := ctx.Value(SkipBranchScopeKey).(bool); ok && skipScope {
			return db
		}

		branchID, ok := GetBranchID(ctx)
		if !ok {
			return db
		}
		return db.Where("branch_id = ?", branchID)
	}
}

// WithSkipBranchScope adds skip branch scope flag to context (for admins)
func WithSkipBranchScope(ctx context.Context, skip bool) context.Context {
	return context.WithValue(ctx, SkipBranchScopeKey, skip)
}

// WithBranch adds branch ID to context
func WithBranch(ctx context.Context, branchID uuid.UUID) context.Context {
	return context.WithValue(ctx, BranchIDKey, branchID)
}

// GetBranchID extracts branch ID from context
func GetBranchID(ctx context.Context) (uuid.UUID, bool) {
	branchID, ok := ctx.Value(BranchIDKey).(uuid.UUID)
	return branchID, ok
}
