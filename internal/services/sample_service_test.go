package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sampledata/internal/repositories"
)

type recordedExport struct {
	table, format string
}

type fakeRecorder struct {
	mu        sync.Mutex
	generated map[string]int
	exports   []recordedExport
	notFound  int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{generated: map[string]int{}}
}

func (r *fakeRecorder) ObserveGeneration(table string, rows int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generated[table] += rows
}

func (r *fakeRecorder) IncExport(table, format string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exports = append(r.exports, recordedExport{table, format})
}

func (r *fakeRecorder) IncTableNotFound() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notFound++
}

func newTestService(rec *fakeRecorder) *SampleService {
	synth := NewSynthesizer(NewFakerSource(1)).WithClock(fixedClock)
	return NewSampleService(repositories.NewSchemaRepository(), synth, rec, nil)
}

func TestSampleService_Generate(t *testing.T) {
	rec := newFakeRecorder()
	svc := newTestService(rec)

	ds, err := svc.Generate(context.Background(), "Customers")
	require.NoError(t, err)

	assert.Equal(t, "Customers", ds.Table)
	assert.Equal(t, []string{"CustomerID", "FirstName", "LastName", "Email", "Phone", "Age", "Address", "City", "Country", "JoinDate"}, ds.Columns)
	require.Len(t, ds.Rows, DefaultRowCount)
	for i, row := range ds.Rows {
		assert.Equal(t, i+1, row["CustomerID"])
	}
	assert.Equal(t, DefaultRowCount, rec.generated["Customers"])
}

func TestSampleService_GenerateUnknownTable(t *testing.T) {
	rec := newFakeRecorder()
	svc := newTestService(rec)

	ds, err := svc.Generate(context.Background(), "Foo")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repositories.ErrTableNotFound))
	assert.Empty(t, ds.Rows)
	assert.Empty(t, ds.Columns)
	assert.Equal(t, 1, rec.notFound)
	assert.Empty(t, rec.generated)
}

func TestSampleService_GenerateRows(t *testing.T) {
	svc := newTestService(newFakeRecorder())

	ds, err := svc.GenerateRows(context.Background(), "Products", 3)
	require.NoError(t, err)
	assert.Len(t, ds.Rows, 3)
}

func TestSampleService_CanceledContext(t *testing.T) {
	svc := newTestService(newFakeRecorder())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Generate(ctx, "Customers")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSampleService_Schema(t *testing.T) {
	svc := newTestService(newFakeRecorder())

	schema := svc.Schema()
	assert.Len(t, schema, 10)
	assert.Equal(t, []string{"ShipmentID", "OrderID", "Carrier", "TrackingNumber", "ShipDate", "EstimatedDelivery", "ActualDelivery", "ShippingCost", "Status", "DeliveryAddress"}, schema["Shipments"])
	assert.Len(t, svc.TableNames(), 10)
}

func TestSampleService_GenerateAll(t *testing.T) {
	rec := newFakeRecorder()
	svc := newTestService(rec)

	all, err := svc.GenerateAll(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, all, 10)

	for name, ds := range all {
		assert.Equal(t, name, ds.Table)
		assert.Len(t, ds.Rows, 4)
		assert.Equal(t, 4, rec.generated[name])
	}
}

func TestSampleService_RecordExport(t *testing.T) {
	rec := newFakeRecorder()
	svc := newTestService(rec)

	svc.RecordExport("Orders", "csv")
	assert.Equal(t, []recordedExport{{"Orders", "csv"}}, rec.exports)
}

func TestNewSampleService_NilDependencies(t *testing.T) {
	synth := NewSynthesizer(boundarySource{})
	svc := NewSampleService(repositories.NewSchemaRepository(), synth, nil, nil)

	_, err := svc.Generate(context.Background(), "Nope")
	assert.ErrorIs(t, err, repositories.ErrTableNotFound)
}
