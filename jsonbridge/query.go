package jsonbridge

import (
	"strings"

	"github.com/antchfx/jsonquery"
)

// Query evaluates an xpath-style expression against a JSON document and
// returns the values of all matching nodes.
func Query(text, expr string) ([]any, error) {
	doc, err := jsonquery.Parse(strings.NewReader(text))
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	nodes, err := jsonquery.QueryAll(doc, expr)
	if err != nil {
		return nil, err
	}
	values := make([]any, 0, len(nodes))
	for _, n := range nodes {
		values = append(values, n.Value())
	}
	return values, nil
}
