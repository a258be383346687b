package middleware

import (
	"context"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
)

type compactMiddleware struct {
	next ports.ReportStore
}

// NewCompactMiddleware creates a middleware that drops step traces before saving.
func NewCompactMiddleware() Middleware {
	return func(next ports.ReportStore) ports.ReportStore {
		return &compactMiddleware{next: next}
	}
}

func (m *compactMiddleware) Save(ctx context.Context, report *domain.Report) error {
	// Clone so the caller's report keeps its traces.
	cloned := *report
	cloned.Results = make([]domain.Result, len(report.Results))
	for i, res := range report.Results {
		res.Trace = nil
		cloned.Results[i] = res
	}
	return m.next.Save(ctx, &cloned)
}

func (m *compactMiddleware) Load(ctx context.Context, id string) (*domain.Report, error) {
	return m.next.Load(ctx, id)
}

func (m *compactMiddleware) Delete(ctx context.Context, id string) error {
	return m.next.Delete(ctx, id)
}

func (m *compactMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}
