package selector

// Combinator tokens expressing the DOM relationship between two selectors.
const (
	Descendant      = " "
	Child           = ">"
	AdjacentSibling = "+"
	GeneralSibling  = "~"
)

// A Combined joins two selectors with a combinator token. Operands may
// themselves be Combined values, nesting expands left-to-right.
type Combined struct {
	left  Stringifier
	token string
	right Stringifier
}

// Combine wraps two already-built selectors with the given combinator
// token. The operands are not modified afterwards.
func Combine(left Stringifier, token string, right Stringifier) *Combined {
	return &Combined{left: left, token: token, right: right}
}

// Stringify renders `<left> <token> <right>`, with a single space on each
// side of the token. Errors of the operands propagate.
func (c *Combined) Stringify() (string, error) {
	l, err := c.left.Stringify()
	if err != nil {
		return "", err
	}
	r, err := c.right.Stringify()
	if err != nil {
		return "", err
	}
	return l + " " + c.token + " " + r, nil
}
