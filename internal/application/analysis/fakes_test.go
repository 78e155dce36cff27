package analysis_test

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/StyleWatch-api/internal/application/dto"
	"github.com/jhoicas/StyleWatch-api/internal/domain/entity"
	"github.com/jhoicas/StyleWatch-api/internal/domain/repository"
)

const sampleReport = "Tee: 昨日售出9件\n" +
	"2024-01-09 Tee M 红: 7件\n" +
	"天猫 旗舰店A 2024-01-10 Tee L 白: 2件\n" +
	"esta línea no se reconoce"

const sampleFeed = "Tee,红,M,杭州仓,2,3\nTee,白,L,杭州仓,50,50\nTee,白,S,上海仓,0,1"

type fakeSalesRepo struct {
	mu      sync.Mutex
	saved   map[string][]entity.SaleRecord
	runIDs  []string
	saveErr error
	listErr error
}

func newFakeSalesRepo() *fakeSalesRepo {
	return &fakeSalesRepo{saved: make(map[string][]entity.SaleRecord)}
}

func (r *fakeSalesRepo) SaveBatch(_ context.Context, runID, style string, records []entity.SaleRecord) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runIDs = append(r.runIDs, runID)
	r.saved[style] = append(r.saved[style], records...)
	return nil
}

func (r *fakeSalesRepo) ListByStyle(_ context.Context, style string) ([]entity.SaleRecord, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saved[style], nil
}

type fakeSnapshotRepo struct {
	mu      sync.Mutex
	latest  map[string]*repository.StoredSnapshot
	saveErr error
	getErr  error
}

func newFakeSnapshotRepo() *fakeSnapshotRepo {
	return &fakeSnapshotRepo{latest: make(map[string]*repository.StoredSnapshot)}
}

func (r *fakeSnapshotRepo) Save(_ context.Context, runID, style string, snap entity.InventorySnapshot) (*repository.StoredSnapshot, error) {
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s := &repository.StoredSnapshot{
		ID:         "snap-" + runID,
		RunID:      runID,
		Style:      style,
		CapturedAt: time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC),
		Snapshot:   snap,
	}
	r.latest[style] = s
	return s, nil
}

func (r *fakeSnapshotRepo) LatestByStyle(_ context.Context, style string) (*repository.StoredSnapshot, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.latest[style], nil
}

type fakeRunRepo struct {
	mu     sync.Mutex
	runs   []entity.AnalysisRun
	getErr error
}

func (r *fakeRunRepo) Create(_ context.Context, run *entity.AnalysisRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, *run)
	return nil
}

func (r *fakeRunRepo) ListByStyle(_ context.Context, style string, limit int) ([]entity.AnalysisRun, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.AnalysisRun
	for i := len(r.runs) - 1; i >= 0 && len(out) < limit; i-- {
		if r.runs[i].Style == style {
			out = append(out, r.runs[i])
		}
	}
	return out, nil
}

// fakeTx ejecuta fn con los repos en memoria; no hay rollback real.
type fakeTx struct {
	sales *fakeSalesRepo
	snaps *fakeSnapshotRepo
	runs  *fakeRunRepo
	calls int
}

func newFakeTx() *fakeTx {
	return &fakeTx{sales: newFakeSalesRepo(), snaps: newFakeSnapshotRepo(), runs: &fakeRunRepo{}}
}

func (t *fakeTx) Run(_ context.Context, fn func(
	repository.SaleRecordRepository,
	repository.InventorySnapshotRepository,
	repository.AnalysisRunRepository,
) error) error {
	t.calls++
	return fn(t.sales, t.snaps, t.runs)
}

type fakeMetrics struct {
	parsed    map[string]int
	skipped   map[string]int
	shortages int
	persists  []error
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{parsed: map[string]int{}, skipped: map[string]int{}}
}

func (m *fakeMetrics) ObserveParse(source string, parsed, skipped int) {
	m.parsed[source] += parsed
	m.skipped[source] += skipped
}
func (m *fakeMetrics) ObserveShortages(n int)   { m.shortages += n }
func (m *fakeMetrics) ObservePersist(err error) { m.persists = append(m.persists, err) }

type fakeGenerator struct {
	got *dto.StyleAnalysisDTO
	err error
}

func (g *fakeGenerator) GenerateStyleReport(_ context.Context, a *dto.StyleAnalysisDTO) ([]byte, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.got = a
	return []byte("%PDF-1.4 fake"), nil
}
