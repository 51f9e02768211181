package api

import (
	"testing"

	"github.com/esgbuddy/esgbuddy/pkg/scoring"
)

func TestReportCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewReportCache(2)
	a := &scoring.ComputedReport{OverallScore: 1}
	b := &scoring.ComputedReport{OverallScore: 2}

	c.Put("a", a)
	c.Put("b", b)
	if c.Get("a") != a {
		t.Fatal("expected a")
	}
	// b is now the least recently used.
	c.Put("c", &scoring.ComputedReport{OverallScore: 3})

	if c.Get("b") != nil {
		t.Error("b should have been evicted")
	}
	if c.Get("a") != a {
		t.Error("a should still be cached")
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
}

func TestReportCachePutReplaces(t *testing.T) {
	c := NewReportCache(2)
	c.Put("a", &scoring.ComputedReport{OverallScore: 1})
	c.Put("a", &scoring.ComputedReport{OverallScore: 9})

	if got := c.Get("a"); got == nil || got.OverallScore != 9 {
		t.Errorf("Get(a) = %+v", got)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestReportCacheDeleteAndClear(t *testing.T) {
	c := NewReportCache(0)
	if c.maxSize != 100 {
		t.Errorf("default maxSize = %d, want 100", c.maxSize)
	}

	c.Put("a", &scoring.ComputedReport{})
	c.Put("b", &scoring.ComputedReport{})
	c.Delete("a")
	c.Delete("missing")
	if c.Get("a") != nil || c.Len() != 1 {
		t.Error("Delete did not remove a")
	}

	c.Clear()
	if c.Len() != 0 || len(c.order) != 0 {
		t.Error("Clear left entries behind")
	}
}

func TestNewReportCacheFromEnv(t *testing.T) {
	t.Setenv("REPORT_CACHE_SIZE", "7")
	if got := NewReportCacheFromEnv().maxSize; got != 7 {
		t.Errorf("maxSize = %d, want 7", got)
	}

	t.Setenv("REPORT_CACHE_SIZE", "bogus")
	if got := NewReportCacheFromEnv().maxSize; got != 100 {
		t.Errorf("maxSize = %d, want 100", got)
	}
}
