package match

import (
	"context"
	"testing"

	"github.com/jakopako/cselect/fetch"
	"github.com/jakopako/cselect/selector"
)

const htmlString = `
<html>
<body>
	<div id="main" class="container">
		<div class="teaser event-teaser">
			<a href="/events/1" class="event-title">Krachstock</a>
			<img src="/img/1.png">
			<div class="tag">Konzert</div>
			<div class="tag">Metal</div>
		</div>
		<div class="teaser event-teaser">
			<a href="/events/2" class="event-title">Final Story</a>
			<img src="/img/2.jpg">
			<div class="tag">Metalcore</div>
		</div>
	</div>
</body>
</html>`

func TestCheckPage(t *testing.T) {
	tests := []struct {
		name          string
		sel           selector.Stringifier
		expectedCount int
		expectedFirst string
	}{
		{
			name:          "classes",
			sel:           selector.Class("teaser").Class("event-teaser"),
			expectedCount: 2,
		},
		{
			name:          "id with class",
			sel:           selector.ID("main").Class("container"),
			expectedCount: 1,
		},
		{
			name:          "element with attribute expression",
			sel:           selector.Element("img").Attr(`src$=".png"`),
			expectedCount: 1,
		},
		{
			name:          "element with class",
			sel:           selector.Element("a").Class("event-title"),
			expectedCount: 2,
			expectedFirst: "Krachstock",
		},
		{
			name:          "combined child selector",
			sel:           selector.Combine(selector.ID("main"), ">", selector.Element("div")),
			expectedCount: 2,
		},
		{
			name:          "no matches",
			sel:           selector.Element("table"),
			expectedCount: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			results, err := CheckPage(htmlString, []NamedSelector{{Name: tc.name, Selector: tc.sel}})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(results) != 1 {
				t.Fatalf("unexpected number of results: %d", len(results))
			}
			if results[0].Count != tc.expectedCount {
				t.Fatalf("unexpected match count for %q\n got: %d\nwant: %d", results[0].Selector, results[0].Count, tc.expectedCount)
			}
			if tc.expectedFirst != "" && results[0].Sample != tc.expectedFirst {
				t.Fatalf("unexpected sample\n got: %q\nwant: %q", results[0].Sample, tc.expectedFirst)
			}
		})
	}
}

func TestCheckPageKeepsSelectorOrder(t *testing.T) {
	sels := []NamedSelector{
		{Name: "tags", Selector: selector.Class("tag")},
		{Name: "teasers", Selector: selector.Class("teaser")},
		{Name: "images", Selector: selector.Element("img")},
	}
	results, err := CheckPage(htmlString, sels)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("unexpected number of results: %d", len(results))
	}
	for i, name := range []string{"tags", "teasers", "images"} {
		if results[i].Name != name {
			t.Fatalf("results out of order: %v", results)
		}
	}
	if results[0].Count != 3 || results[1].Count != 2 || results[2].Count != 2 {
		t.Fatalf("unexpected counts: %+v", results)
	}
}

func TestCheckPageNodePath(t *testing.T) {
	results, err := CheckPage(htmlString, []NamedSelector{
		{Name: "title", Selector: selector.Element("a").Class("event-title")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].NodePath != "html > body > div > div > a" {
		t.Fatalf("unexpected node path: %q", results[0].NodePath)
	}
}

func TestCheckPageBuilderErrorPropagates(t *testing.T) {
	_, err := CheckPage(htmlString, []NamedSelector{
		{Name: "broken", Selector: selector.ID("a").Element("b")},
	})
	if err == nil {
		t.Fatal("expected the builder's ordering error to propagate")
	}
}

func TestCheckerWithDummyFetcher(t *testing.T) {
	fc := &fetch.FetcherConfig{
		Type: fetch.DUMMY_FETCHER_TYPE,
		DummyPages: []fetch.DummyPage{
			{Url: "http://localhost/events", Content: htmlString},
		},
	}
	f, err := fetch.NewFetcher(fc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer f.Cancel()

	c := NewChecker(f, []NamedSelector{
		{Name: "teasers", Selector: selector.Class("teaser")},
	})
	results, status, err := c.CheckURL(context.Background(), "http://localhost/events")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Count != 2 {
		t.Fatalf("unexpected results: %+v", results)
	}
	if status.NrSelectors != 1 || status.NrErrors != 0 {
		t.Fatalf("unexpected status: %+v", status)
	}
	if status.LastCheckEnd.Before(status.LastCheckStart) {
		t.Fatalf("unexpected status timestamps: %+v", status)
	}
}

func TestCheckerFetchError(t *testing.T) {
	f, err := fetch.NewFetcher(&fetch.FetcherConfig{Type: fetch.DUMMY_FETCHER_TYPE})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := NewChecker(f, nil)
	_, status, err := c.CheckURL(context.Background(), "http://localhost/unknown")
	if err == nil {
		t.Fatal("expected a fetch error")
	}
	if status.NrErrors != 1 {
		t.Fatalf("unexpected status: %+v", status)
	}
}
