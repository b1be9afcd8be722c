package excel

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadCSVTable(t *testing.T) {
	path := writeCSV(t, "10,20,30\n25,15,10\n")

	table, err := NewTableReader(path).ReadTable(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := [][]float64{{10, 20, 30}, {25, 15, 10}}
	if len(table) != len(want) {
		t.Fatalf("got %d rows, want %d", len(table), len(want))
	}
	for i, row := range want {
		for j, v := range row {
			if table[i][j] != v {
				t.Errorf("cell [%d][%d] = %f, want %f", i, j, table[i][j], v)
			}
		}
	}
}

func TestReadCSVSkipsHeaderRows(t *testing.T) {
	path := writeCSV(t, "group,a,b,c\n10,20,30\n25,15,10\n")

	table, err := NewTableReader(path).ReadTable(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(table) != 2 {
		t.Fatalf("header row not skipped, got %d rows", len(table))
	}
	if table[0][0] != 10 {
		t.Errorf("first body cell = %f, want 10", table[0][0])
	}
}

func TestReadCSVRejectsTextInBody(t *testing.T) {
	path := writeCSV(t, "10,20\n25,oops\n")

	_, err := NewTableReader(path).ReadTable(context.Background())
	if err == nil {
		t.Fatal("expected parse error for text inside the body")
	}
	if !strings.Contains(err.Error(), "non-numeric") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestReadCSVAllHeadersIsError(t *testing.T) {
	path := writeCSV(t, "a,b,c\nx,y,z\n")

	_, err := NewTableReader(path).ReadTable(context.Background())
	if err == nil {
		t.Fatal("expected error when no numeric rows exist")
	}
}

func TestReadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.csv")

	_, err := NewTableReader(path).ReadTable(context.Background())
	if err == nil {
		t.Fatal("expected error for a missing file")
	}
}

func TestReadHonorsCancelledContext(t *testing.T) {
	path := writeCSV(t, "1,2\n3,4\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewTableReader(path).ReadTable(ctx); err == nil {
		t.Fatal("expected context cancellation error")
	}
}

func TestExtensionDetection(t *testing.T) {
	if NewTableReader("data.CSV").fileType != "csv" {
		t.Error("uppercase .CSV extension not detected")
	}
	if NewTableReader("data.xlsx").fileType != "xlsx" {
		t.Error(".xlsx should use the Excel path")
	}
}
