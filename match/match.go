// Package match checks built selectors against the content of a web page
// and reports how many nodes they select.
package match

import (
	"fmt"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/jakopako/cselect/selector"
	"github.com/jakopako/cselect/types"
	"github.com/jakopako/cselect/utils"
	"golang.org/x/net/html"
)

// number of concurrent selector checks per page
const nrWorkers = 4

// maximum length of the sample text in a MatchResult
const sampleMaxLength = 60

// A NamedSelector pairs a built selector with the name it was declared
// under.
type NamedSelector struct {
	Name     string
	Selector selector.Stringifier
}

// CheckPage applies each selector to the given page content and returns
// one MatchResult per selector. The order of the results follows the
// order of the given selectors.
func CheckPage(pageContent string, sels []NamedSelector) ([]types.MatchResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageContent))
	if err != nil {
		return nil, err
	}

	results := make([]types.MatchResult, len(sels))
	errs := make([]error, len(sels))

	// the goquery document is only read, so the workers can share it
	var wg sync.WaitGroup
	indexChan := make(chan int)
	for range nrWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexChan {
				results[i], errs[i] = checkSelector(doc, sels[i])
			}
		}()
	}
	for i := range sels {
		indexChan <- i
	}
	close(indexChan)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func checkSelector(doc *goquery.Document, ns NamedSelector) (types.MatchResult, error) {
	s, err := ns.Selector.Stringify()
	if err != nil {
		return types.MatchResult{}, fmt.Errorf("selector '%s': %w", ns.Name, err)
	}
	result := types.MatchResult{
		Name:     ns.Name,
		Selector: s,
	}
	// the builder does not validate fragment content, so compile explicitly
	// instead of letting goquery's Find panic on a bad selector
	matcher, err := cascadia.Compile(s)
	if err != nil {
		return types.MatchResult{}, fmt.Errorf("selector '%s' is not valid css: %w", ns.Name, err)
	}
	selection := doc.FindMatcher(matcher)
	result.Count = selection.Length()
	if result.Count > 0 {
		first := selection.First()
		result.Sample = utils.ShortenString(strings.TrimSpace(first.Text()), sampleMaxLength)
		if len(first.Nodes) > 0 {
			result.NodePath = nodePath(first.Nodes[0])
		}
	}
	return result, nil
}

// nodePath returns the tag path from the document root down to n,
// e.g. "html > body > div > a".
func nodePath(n *html.Node) string {
	tags := []string{}
	for ; n != nil; n = n.Parent {
		if n.Type == html.ElementNode {
			tags = append(tags, n.Data)
		}
	}
	for i, j := 0, len(tags)-1; i < j; i, j = i+1, j-1 {
		tags[i], tags[j] = tags[j], tags[i]
	}
	return strings.Join(tags, " > ")
}
