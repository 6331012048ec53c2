package authctx

import (
	"context"

	"github.com/jspsoluciones/raffle-backend/internal/model"
)

type ctxKey string

const keyViewer ctxKey = "raffle_viewer"

// Viewer identifies the authenticated staff member behind a request.
type Viewer struct {
	ID   string
	Role model.Role
}

// WithViewer stores the authenticated viewer for downstream handlers.
func WithViewer(ctx context.Context, v Viewer) context.Context {
	return context.WithValue(ctx, keyViewer, v)
}

// ViewerFrom returns the viewer if the request was authenticated.
func ViewerFrom(ctx context.Context) (Viewer, bool) {
	v, ok := ctx.Value(keyViewer).(Viewer)
	return v, ok
}
