package metrics

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Simple Prometheus-style metrics for HTTP requests and scrapes.
// This is intentionally minimal and in-memory only.

var (
	mu             sync.RWMutex
	requestsTotal  = make(map[reqKey]int64)
	latencyMsSum   = make(map[latKey]int64)
	latencyMsCount = make(map[latKey]int64)

	scrapesTotal         = make(map[scrapeKey]int64)
	scrapedProductsTotal = make(map[string]int64)

	retentionSessionsTotal int64
)

type reqKey struct {
	Method string
	Path   string
	Status int
}

type latKey struct {
	Method string
	Path   string
}

type scrapeKey struct {
	Platform string
	Outcome  string
}

// RecordRequest increments request counter and records latency.
func RecordRequest(method, path string, status int, latencyMs int64) {
	mu.Lock()
	defer mu.Unlock()

	rk := reqKey{Method: method, Path: path, Status: status}
	requestsTotal[rk]++

	lk := latKey{Method: method, Path: path}
	latencyMsSum[lk] += latencyMs
	latencyMsCount[lk]++
}

// RecordScrape counts one product scrape by detected platform and
// outcome ("ok", "empty", "error"), plus the number of products found.
func RecordScrape(platform, outcome string, products int) {
	mu.Lock()
	defer mu.Unlock()

	scrapesTotal[scrapeKey{Platform: platform, Outcome: outcome}]++
	if products > 0 {
		scrapedProductsTotal[platform] += int64(products)
	}
}

// RecordRetentionSessions counts sessions deleted by TTL cleanup.
func RecordRetentionSessions(n int64) {
	mu.Lock()
	defer mu.Unlock()
	retentionSessionsTotal += n
}

// Export returns Prometheus-style metrics text.
func Export() string {
	mu.RLock()
	defer mu.RUnlock()

	var b strings.Builder

	b.WriteString("# HELP studio_http_requests_total Total HTTP requests\n")
	b.WriteString("# TYPE studio_http_requests_total counter\n")

	// Sort keys for stable output
	var reqKeys []reqKey
	for k := range requestsTotal {
		reqKeys = append(reqKeys, k)
	}
	sort.Slice(reqKeys, func(i, j int) bool {
		if reqKeys[i].Method != reqKeys[j].Method {
			return reqKeys[i].Method < reqKeys[j].Method
		}
		if reqKeys[i].Path != reqKeys[j].Path {
			return reqKeys[i].Path < reqKeys[j].Path
		}
		return reqKeys[i].Status < reqKeys[j].Status
	})

	for _, k := range reqKeys {
		fmt.Fprintf(&b, "studio_http_requests_total{method=\"%s\",path=\"%s\",status=\"%d\"} %d\n",
			k.Method, k.Path, k.Status, requestsTotal[k])
	}

	b.WriteString("# HELP studio_http_request_duration_ms_sum Total request duration in milliseconds\n")
	b.WriteString("# TYPE studio_http_request_duration_ms_sum counter\n")
	b.WriteString("# HELP studio_http_request_duration_ms_count Request count for latency metric\n")
	b.WriteString("# TYPE studio_http_request_duration_ms_count counter\n")

	var latKeys []latKey
	for k := range latencyMsSum {
		latKeys = append(latKeys, k)
	}
	sort.Slice(latKeys, func(i, j int) bool {
		if latKeys[i].Method != latKeys[j].Method {
			return latKeys[i].Method < latKeys[j].Method
		}
		return latKeys[i].Path < latKeys[j].Path
	})

	for _, k := range latKeys {
		fmt.Fprintf(&b, "studio_http_request_duration_ms_sum{method=\"%s\",path=\"%s\"} %d\n",
			k.Method, k.Path, latencyMsSum[k])
		fmt.Fprintf(&b, "studio_http_request_duration_ms_count{method=\"%s\",path=\"%s\"} %d\n",
			k.Method, k.Path, latencyMsCount[k])
	}

	b.WriteString("# HELP studio_scrapes_total Total product scrapes by platform and outcome\n")
	b.WriteString("# TYPE studio_scrapes_total counter\n")

	var scrapeKeys []scrapeKey
	for k := range scrapesTotal {
		scrapeKeys = append(scrapeKeys, k)
	}
	sort.Slice(scrapeKeys, func(i, j int) bool {
		if scrapeKeys[i].Platform != scrapeKeys[j].Platform {
			return scrapeKeys[i].Platform < scrapeKeys[j].Platform
		}
		return scrapeKeys[i].Outcome < scrapeKeys[j].Outcome
	})

	for _, k := range scrapeKeys {
		fmt.Fprintf(&b, "studio_scrapes_total{platform=\"%s\",outcome=\"%s\"} %d\n",
			k.Platform, k.Outcome, scrapesTotal[k])
	}

	b.WriteString("# HELP studio_scraped_products_total Total products discovered by platform\n")
	b.WriteString("# TYPE studio_scraped_products_total counter\n")

	var platforms []string
	for p := range scrapedProductsTotal {
		platforms = append(platforms, p)
	}
	sort.Strings(platforms)
	for _, p := range platforms {
		fmt.Fprintf(&b, "studio_scraped_products_total{platform=\"%s\"} %d\n", p, scrapedProductsTotal[p])
	}

	if retentionSessionsTotal > 0 {
		b.WriteString("# HELP studio_retention_sessions_total Sessions deleted by retention cleanup\n")
		b.WriteString("# TYPE studio_retention_sessions_total counter\n")
		fmt.Fprintf(&b, "studio_retention_sessions_total %d\n", retentionSessionsTotal)
	}

	return b.String()
}
