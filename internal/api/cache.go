package api

import (
	"os"
	"strconv"
	"sync"

	"github.com/esgbuddy/esgbuddy/pkg/scoring"
)

// ReportCache is a thread-safe LRU cache of computed reports keyed by
// company row ID.
type ReportCache struct {
	mu      sync.Mutex
	maxSize int
	entries map[string]*scoring.ComputedReport
	order   []string // oldest first
}

// NewReportCache creates a cache with the given maximum number of entries.
// If maxSize <= 0, it defaults to 100.
func NewReportCache(maxSize int) *ReportCache {
	if maxSize <= 0 {
		maxSize = 100
	}
	return &ReportCache{
		maxSize: maxSize,
		entries: make(map[string]*scoring.ComputedReport),
	}
}

// NewReportCacheFromEnv creates a cache with size from REPORT_CACHE_SIZE env var.
func NewReportCacheFromEnv() *ReportCache {
	size := 100
	if v := os.Getenv("REPORT_CACHE_SIZE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			size = parsed
		}
	}
	return NewReportCache(size)
}

// Get retrieves a report from the cache, or nil if not found.
func (c *ReportCache) Get(id string) *scoring.ComputedReport {
	c.mu.Lock()
	defer c.mu.Unlock()

	report, ok := c.entries[id]
	if !ok {
		return nil
	}

	// Move to end (most recently used)
	c.moveToEnd(id)
	return report
}

// Put adds a report to the cache, evicting the oldest if full.
func (c *ReportCache) Put(id string, report *scoring.ComputedReport) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[id]; ok {
		c.entries[id] = report
		c.moveToEnd(id)
		return
	}

	for len(c.entries) >= c.maxSize && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[id] = report
	c.order = append(c.order, id)
}

// Delete drops one entry.
func (c *ReportCache) Delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[id]; !ok {
		return
	}
	delete(c.entries, id)
	c.removeFromOrder(id)
}

// Clear drops every entry.
func (c *ReportCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
	c.order = c.order[:0]
}

// Len returns the number of cached reports.
func (c *ReportCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *ReportCache) moveToEnd(id string) {
	c.removeFromOrder(id)
	c.order = append(c.order, id)
}

func (c *ReportCache) removeFromOrder(id string) {
	for i, k := range c.order {
		if k == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
