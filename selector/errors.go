package selector

import "fmt"

// requiredOrder names the category order that ordering errors refer to.
const requiredOrder = "element, id, class, attribute, pseudo-class, pseudo-element"

// An OrderError reports a fragment that was added out of order.
type OrderError struct {
	Kind Kind // the fragment kind that was rejected
	Last Kind // the kind added before it
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("selector fragments have to be added in the following order: %s ('%s' cannot follow '%s')", requiredOrder, e.Kind, e.Last)
}

// A DuplicateError reports a second element, id or pseudo-element inside
// the same selector.
type DuplicateError struct {
	Kind Kind
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("'%s' must not occur more than once inside a selector", e.Kind)
}
