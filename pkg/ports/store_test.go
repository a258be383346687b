package ports_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
)

// MockStore is a map-backed ReportStore that round-trips through JSON like a real backend.
type MockStore struct {
	data map[string][]byte
}

func NewMockStore() *MockStore {
	return &MockStore{
		data: make(map[string][]byte),
	}
}

func (m *MockStore) Save(ctx context.Context, report *domain.Report) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return err
	}
	m.data[report.ID] = raw
	return nil
}

func (m *MockStore) Load(ctx context.Context, id string) (*domain.Report, error) {
	raw, ok := m.data[id]
	if !ok {
		return nil, domain.ErrReportNotFound
	}
	var report domain.Report
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (m *MockStore) Delete(ctx context.Context, id string) error {
	delete(m.data, id)
	return nil
}

func (m *MockStore) List(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(m.data))
	for id := range m.data {
		ids = append(ids, id)
	}
	return ids, nil
}

func TestMockStore_Contract(t *testing.T) {
	ports.RunReportStoreContract(t, NewMockStore())
}
