package loader

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/seedkit/hrseed/internal/config"
	"github.com/seedkit/hrseed/internal/database/sqlite"
	"github.com/seedkit/hrseed/internal/dberr"
)

func newTestLoader(t *testing.T) *Loader {
	t.Helper()

	a := sqlite.New()
	path := filepath.Join(t.TempDir(), "hr.db")
	if err := a.Connect(context.Background(), "sqlite://"+path); err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Database.Provider = "sqlite"

	l := NewWithAdapter(cfg, a)
	t.Cleanup(func() { l.Close() })
	return l
}

func TestLoadFreshTarget(t *testing.T) {
	ctx := context.Background()
	l := newTestLoader(t)

	if err := l.Load(ctx); err != nil {
		t.Fatalf("Failed to load: %v", err)
	}

	st, err := l.Status(ctx)
	if err != nil {
		t.Fatalf("Failed to get status: %v", err)
	}
	if !st.Loaded {
		t.Error("Expected status to report a complete load")
	}
	for _, ts := range st.Tables {
		if !ts.Exists {
			t.Errorf("Expected table %s to exist", ts.Name)
		}
		if ts.Rows != 7 {
			t.Errorf("Expected 7 rows in %s, got %d", ts.Name, ts.Rows)
		}
	}
}

func TestStatusFailsWhenConnectionClosed(t *testing.T) {
	ctx := context.Background()

	a := sqlite.New()
	path := filepath.Join(t.TempDir(), "hr.db")
	if err := a.Connect(ctx, "sqlite://"+path); err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Database.Provider = "sqlite"
	l := NewWithAdapter(cfg, a)

	if err := a.Close(); err != nil {
		t.Fatalf("Failed to close: %v", err)
	}

	if _, err := l.Status(ctx); err == nil {
		t.Error("Expected status to fail against a closed connection")
	}
}

func TestLoadTwiceFailsWithSchemaConflict(t *testing.T) {
	ctx := context.Background()
	l := newTestLoader(t)

	if err := l.Load(ctx); err != nil {
		t.Fatalf("Failed to load: %v", err)
	}

	err := l.Load(ctx)
	var conflict *dberr.SchemaConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Expected SchemaConflictError on second load, got %v", err)
	}

	// the failed load must not have touched the data
	st, err := l.Status(ctx)
	if err != nil {
		t.Fatalf("Failed to get status: %v", err)
	}
	if !st.Loaded {
		t.Error("Expected data to be intact after the rejected second load")
	}
}

func TestVerifyLoadedData(t *testing.T) {
	ctx := context.Background()
	l := newTestLoader(t)

	if err := l.Load(ctx); err != nil {
		t.Fatalf("Failed to load: %v", err)
	}

	if err := l.Verify(ctx); err != nil {
		t.Errorf("Expected verification to pass, got %v", err)
	}
}

func TestVerifyFailsWithoutLoad(t *testing.T) {
	ctx := context.Background()
	l := newTestLoader(t)

	if err := l.Verify(ctx); err == nil {
		t.Error("Expected verification to fail on an empty target")
	}
}

func TestResetAndReload(t *testing.T) {
	ctx := context.Background()
	l := newTestLoader(t)

	if err := l.Load(ctx); err != nil {
		t.Fatalf("Failed to load: %v", err)
	}

	if err := l.Reset(ctx, true); err != nil {
		t.Fatalf("Failed to reset: %v", err)
	}

	st, err := l.Status(ctx)
	if err != nil {
		t.Fatalf("Failed to get status: %v", err)
	}
	if st.Loaded {
		t.Error("Expected status to report no data after reset")
	}
	for _, ts := range st.Tables {
		if ts.Exists {
			t.Errorf("Expected table %s to be dropped", ts.Name)
		}
	}

	if err := l.Load(ctx); err != nil {
		t.Fatalf("Failed to reload after reset: %v", err)
	}
	if err := l.Verify(ctx); err != nil {
		t.Errorf("Expected verification to pass after reload, got %v", err)
	}
}
