package selector

import "github.com/agnivade/levenshtein"

// Distance calculates the levenshtein distance between the string
// representation of two selectors.
func Distance(a, b Stringifier) (int, error) {
	as, err := a.Stringify()
	if err != nil {
		return 0, err
	}
	bs, err := b.Stringify()
	if err != nil {
		return 0, err
	}
	return levenshtein.ComputeDistance(as, bs), nil
}
