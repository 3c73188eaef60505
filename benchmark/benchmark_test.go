package benchmark

import (
	"errors"
	"testing"
	"time"
)

func TestRunReportsAndPassesError(t *testing.T) {
	called := false
	report, err := Run("sleep", func() error {
		called = true
		time.Sleep(2 * time.Millisecond)
		return nil
	})
	if err != nil || !called {
		t.Fatalf("Run: called=%v err=%v", called, err)
	}
	if report.Label != "sleep" || report.Elapsed < 2*time.Millisecond {
		t.Errorf("report = %+v", report)
	}

	boom := errors.New("boom")
	if _, err := Run("fail", func() error { return boom }); !errors.Is(err, boom) {
		t.Errorf("Run error = %v, want boom", err)
	}
}
