package metrics

import (
	"strings"
	"testing"
)

func TestRecordRequestAndExport(t *testing.T) {
	RecordRequest("POST", "/v1/scrape-products", 200, 120)
	RecordRequest("POST", "/v1/scrape-products", 200, 80)
	RecordRequest("GET", "/healthz", 200, 1)

	out := Export()

	if !strings.Contains(out, `studio_http_requests_total{method="POST",path="/v1/scrape-products",status="200"} 2`) {
		t.Fatalf("missing request counter in output:\n%s", out)
	}
	if !strings.Contains(out, `studio_http_request_duration_ms_sum{method="POST",path="/v1/scrape-products"} 200`) {
		t.Fatalf("missing latency sum in output:\n%s", out)
	}
	if !strings.Contains(out, `studio_http_request_duration_ms_count{method="POST",path="/v1/scrape-products"} 2`) {
		t.Fatalf("missing latency count in output:\n%s", out)
	}
}

func TestRecordScrape(t *testing.T) {
	RecordScrape("shopify", "ok", 12)
	RecordScrape("shopify", "ok", 8)
	RecordScrape("generic", "empty", 0)

	out := Export()

	if !strings.Contains(out, `studio_scrapes_total{platform="shopify",outcome="ok"} 2`) {
		t.Fatalf("missing scrape counter in output:\n%s", out)
	}
	if !strings.Contains(out, `studio_scrapes_total{platform="generic",outcome="empty"} 1`) {
		t.Fatalf("missing empty outcome in output:\n%s", out)
	}
	if !strings.Contains(out, `studio_scraped_products_total{platform="shopify"} 20`) {
		t.Fatalf("missing product counter in output:\n%s", out)
	}
}
