package middleware

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
)

type retentionMiddleware struct {
	next ports.ReportStore
	max  int
}

// NewRetentionMiddleware creates a middleware that keeps at most max reports,
// deleting the oldest (by CreatedAt) after each save.
func NewRetentionMiddleware(max int) Middleware {
	if max < 1 {
		panic("retention must keep at least one report")
	}
	return func(next ports.ReportStore) ports.ReportStore {
		return &retentionMiddleware{next: next, max: max}
	}
}

func (m *retentionMiddleware) Save(ctx context.Context, report *domain.Report) error {
	if err := m.next.Save(ctx, report); err != nil {
		return err
	}
	return m.prune(ctx, report.ID)
}

func (m *retentionMiddleware) prune(ctx context.Context, keep string) error {
	ids, err := m.next.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}
	if len(ids) <= m.max {
		return nil
	}

	type entry struct {
		id      string
		created int64
	}
	entries := make([]entry, 0, len(ids))
	for _, id := range ids {
		r, err := m.next.Load(ctx, id)
		if errors.Is(err, domain.ErrReportNotFound) {
			continue // expired or deleted concurrently
		}
		if err != nil {
			return fmt.Errorf("failed to load report %s: %w", id, err)
		}
		entries = append(entries, entry{id: id, created: r.CreatedAt.UnixNano()})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].created != entries[j].created {
			return entries[i].created < entries[j].created
		}
		return entries[i].id < entries[j].id
	})

	excess := len(entries) - m.max
	for _, e := range entries {
		if excess <= 0 {
			break
		}
		if e.id == keep {
			continue
		}
		if err := m.next.Delete(ctx, e.id); err != nil {
			return fmt.Errorf("failed to delete report %s: %w", e.id, err)
		}
		excess--
	}
	return nil
}

func (m *retentionMiddleware) Load(ctx context.Context, id string) (*domain.Report, error) {
	return m.next.Load(ctx, id)
}

func (m *retentionMiddleware) Delete(ctx context.Context, id string) error {
	return m.next.Delete(ctx, id)
}

func (m *retentionMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}
