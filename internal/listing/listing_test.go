// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package listing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/paperscout/paperscout/internal/filter"
	"github.com/paperscout/paperscout/pkg/types"
)

const sampleListingHTML = `<!DOCTYPE html>
<html><body>
<dl id="articles">
  <h3>New submissions (showing 3 of 3 entries)</h3>

  <dt>
    <a name="item1">[1]</a>
    <a href="/abs/2401.00001" title="Abstract" id="2401.00001">arXiv:2401.00001</a>
  </dt>
  <dd>
    <div class="meta">
      <div class="list-title mathjax"><span class="descriptor">Title:</span> Diffusion Models
for Image Synthesis</div>
      <div class="list-authors">Authors: Jane Smith, Wei Chen</div>
      <div class="list-subjects"><span class="descriptor">Subjects:</span> Computer Vision (cs.CV); Machine Learning (cs.LG)</div>
      <p class="mathjax">We present a diffusion model for images.</p>
    </div>
  </dd>

  <dt>
    <a name="item2">[2]</a>
    <a href="/abs/2401.00002" title="Abstract" id="2401.00002">arXiv:2401.00002</a>
  </dt>
  <dd>
    <div class="meta">
      <div class="list-title mathjax">Title: Legged Robots in the Wild</div>
      <div class="list-authors">Authors: Ada Lovelace</div>
      <div class="list-subjects">Subjects: Robotics (cs.RO)</div>
      <p class="mathjax">A study of legged locomotion.</p>
    </div>
  </dd>

  <dt>
    <a name="item3">[3]</a>
    <a href="/abs/2401.00003" title="Abstract" id="2401.00003">arXiv:2401.00003</a>
  </dt>

  <h3>Cross submissions (showing 1 of 1 entries)</h3>

  <dt>
    <a name="item4">[4]</a>
    <a href="/abs/2401.00004" title="Abstract" id="2401.00004">arXiv:2401.00004</a>
  </dt>
  <dd>
    <div class="meta">
      <div class="list-title mathjax">Title: Retrieval for Language Models</div>
      <div class="list-authors">Authors: Grace Hopper</div>
      <div class="list-subjects">Subjects: Computation and Language (cs.CL)</div>
    </div>
  </dd>

  <h3>Replacements</h3>

  <dt>
    <a name="item5">[5]</a>
    <a href="/abs/2401.00005" title="Abstract" id="2401.00005">arXiv:2401.00005</a>
  </dt>
  <dd>
    <div class="meta">
      <div class="list-title mathjax">Title: Should Never Appear</div>
      <div class="list-authors">Authors: Nobody</div>
      <div class="list-subjects">Subjects: Computer Vision (cs.CV)</div>
    </div>
  </dd>
</dl>
</body></html>`

func TestParseListing(t *testing.T) {
	papers, err := Parse(strings.NewReader(sampleListingHTML), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// Entry 3 has no adjacent <dd> and is skipped; the replacement entry
	// is never reached.
	if len(papers) != 3 {
		t.Fatalf("len(papers) = %d, want 3", len(papers))
	}

	p := papers[0]
	if p.Title != "Diffusion Models for Image Synthesis" {
		t.Errorf("Title = %q, want newline collapsed", p.Title)
	}
	if p.Authors != "Jane Smith, Wei Chen" {
		t.Errorf("Authors = %q", p.Authors)
	}
	if p.Subjects != "Computer Vision (cs.CV); Machine Learning (cs.LG)" {
		t.Errorf("Subjects = %q", p.Subjects)
	}
	if p.Abstract != "We present a diffusion model for images." {
		t.Errorf("Abstract = %q", p.Abstract)
	}
	if p.URL != "https://arxiv.org/abs/2401.00001" {
		t.Errorf("URL = %q", p.URL)
	}

	// Cross submissions are included; missing abstract becomes empty.
	last := papers[2]
	if last.Title != "Retrieval for Language Models" {
		t.Errorf("cross entry Title = %q", last.Title)
	}
	if last.Abstract != "" {
		t.Errorf("missing abstract should be empty, got %q", last.Abstract)
	}

	for _, p := range papers {
		if strings.Contains(p.Title, "Should Never Appear") {
			t.Error("replacement entries must be ignored")
		}
	}
}

func TestParseListingCategoryFilter(t *testing.T) {
	papers, err := Parse(strings.NewReader(sampleListingHTML), []string{"cs.cv"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(papers) != 1 {
		t.Fatalf("len(papers) = %d, want 1", len(papers))
	}
	if !strings.Contains(papers[0].Subjects, "cs.CV") {
		t.Errorf("kept wrong record: %q", papers[0].Subjects)
	}
}

func TestParseListingNoContainer(t *testing.T) {
	_, err := Parse(strings.NewReader("<html><body><p>maintenance</p></body></html>"), nil)
	if err == nil {
		t.Fatal("expected error when the article list is absent")
	}
}

func testListingConfig() types.ListingConfig {
	return types.ListingConfig{
		HTTPConfig: types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "Mozilla/5.0"},
	}
}

func TestScrape(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); !strings.Contains(ua, "Mozilla") {
			t.Errorf("User-Agent = %q, want browser-like", ua)
		}
		w.Write([]byte(sampleListingHTML))
	}))
	defer ts.Close()

	old := listingURL
	listingURL = ts.URL
	defer func() { listingURL = old }()

	papers := Scrape(context.Background(), ts.Client(), testListingConfig(),
		filter.Params{Keywords: []string{"diffusion model"}}, types.ScoringConfig{})
	if len(papers) != 1 {
		t.Fatalf("len(papers) = %d, want 1", len(papers))
	}
	if papers[0].RelevanceScore <= 0 {
		t.Error("keyword search should set a relevance score")
	}
}

func TestScrapeFailsSoft(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	old := listingURL
	listingURL = ts.URL
	defer func() { listingURL = old }()

	papers := Scrape(context.Background(), ts.Client(), testListingConfig(), filter.Params{}, types.ScoringConfig{})
	if len(papers) != 0 {
		t.Errorf("transport failure should yield empty result, got %d", len(papers))
	}
}
