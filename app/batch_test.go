package app

import (
	"context"
	"errors"
	"math"
	"testing"

	"gosupport/adapters/stats/support"
	"gosupport/domain/core"
	"gosupport/domain/stats"
	"gosupport/internal/testkit"
)

func TestBatchOneWayMatchesSequential(t *testing.T) {
	engine := support.NewEngine()
	svc := NewBatchService(engine).WithLimit(4)
	kit := testkit.NewKit(7)

	inputs := make([][]float64, 12)
	for i := range inputs {
		inputs[i] = kit.MultinomialCounts(200, 3, []float64{0.2, 0.3, 0.5})
	}
	opts := stats.DefaultCategoricalOptions()

	got, err := svc.OneWayAll(context.Background(), inputs, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(inputs) {
		t.Fatalf("got %d results, want %d", len(got), len(inputs))
	}

	for i, counts := range inputs {
		want, err := engine.OneWay(counts, opts)
		if err != nil {
			t.Fatal(err)
		}
		if got[i] == nil {
			t.Fatalf("result %d missing", i)
		}
		if math.Abs(got[i].Metrics.Support-want.Metrics.Support) > 1e-12 {
			t.Errorf("result %d support %f, want %f", i, got[i].Metrics.Support, want.Metrics.Support)
		}
	}
}

func TestBatchTwoWayMatchesSequential(t *testing.T) {
	engine := support.NewEngine()
	svc := NewBatchService(engine).WithLimit(2)
	kit := testkit.NewKit(11)

	tables := make([][][]float64, 6)
	for i := range tables {
		tables[i] = kit.ContingencyTable(3, 4, 300)
	}

	got, err := svc.TwoWayAll(context.Background(), tables)
	if err != nil {
		t.Fatal(err)
	}
	for i, table := range tables {
		want, err := engine.TwoWay(table)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got[i].Metrics.Support-want.Metrics.Support) > 1e-12 {
			t.Errorf("table %d support %f, want %f", i, got[i].Metrics.Support, want.Metrics.Support)
		}
	}
}

func TestBatchPropagatesValidationError(t *testing.T) {
	svc := NewBatchService(support.NewEngine()).WithLimit(1)

	inputs := [][]float64{
		{10, 20, 30},
		{5, -1, 3},
		{7, 7, 7},
	}
	_, err := svc.OneWayAll(context.Background(), inputs, stats.DefaultCategoricalOptions())
	if err == nil {
		t.Fatal("expected the invalid input to fail the batch")
	}
	if !errors.Is(err, core.ErrNegativeCount) {
		t.Errorf("error %v does not wrap %v", err, core.ErrNegativeCount)
	}
}

func TestBatchHonorsCancelledContext(t *testing.T) {
	svc := NewBatchService(support.NewEngine()).WithLimit(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.OneWayAll(ctx, [][]float64{{10, 20}}, stats.DefaultCategoricalOptions())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestBatchEmptyInput(t *testing.T) {
	svc := NewBatchService(support.NewEngine())
	got, err := svc.OneWayAll(context.Background(), nil, stats.DefaultCategoricalOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result set, got %d", len(got))
	}
}
