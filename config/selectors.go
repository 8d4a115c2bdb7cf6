package config

import (
	"fmt"

	"github.com/jakopako/cselect/selector"
)

// SelectorConfig declares one named selector. The fragments are fed to the
// selector builder in category order, so a declaration can never violate
// the builder's ordering grammar.
type SelectorConfig struct {
	Name          string   `yaml:"name"`
	Element       string   `yaml:"element,omitempty"`
	ID            string   `yaml:"id,omitempty"`
	Classes       []string `yaml:"classes,omitempty"`
	Attrs         []string `yaml:"attrs,omitempty"`
	PseudoClasses []string `yaml:"pseudo_classes,omitempty"`
	PseudoElement string   `yaml:"pseudo_element,omitempty"`
	// if true, class names are escaped before they are added to the builder
	EscapeClasses bool `yaml:"escape_classes,omitempty"`
}

// Build compiles the declaration through the selector builder.
func (sc *SelectorConfig) Build() (*selector.Builder, error) {
	if sc.Name == "" {
		return nil, fmt.Errorf("selector declaration needs a name")
	}
	b := &selector.Builder{}
	if sc.Element != "" {
		b.Element(sc.Element)
	}
	if sc.ID != "" {
		b.ID(sc.ID)
	}
	for _, cl := range sc.Classes {
		if sc.EscapeClasses {
			cl = selector.EscapeClass(cl)
		}
		b.Class(cl)
	}
	for _, a := range sc.Attrs {
		b.Attr(a)
	}
	for _, pc := range sc.PseudoClasses {
		b.PseudoClass(pc)
	}
	if sc.PseudoElement != "" {
		b.PseudoElement(sc.PseudoElement)
	}
	if _, err := b.Stringify(); err != nil {
		return nil, fmt.Errorf("selector '%s': %w", sc.Name, err)
	}
	return b, nil
}

// CombinedConfig declares a combined selector. Left and right refer to the
// names of previously declared selectors or combined selectors.
type CombinedConfig struct {
	Name       string `yaml:"name"`
	Left       string `yaml:"left"`
	Combinator string `yaml:"combinator"`
	Right      string `yaml:"right"`
}

func validCombinator(token string) bool {
	switch token {
	case selector.Descendant, selector.Child, selector.AdjacentSibling, selector.GeneralSibling:
		return true
	}
	return false
}

// BuildAll compiles all declared selectors and combined selectors and
// returns them by name. Combined declarations may refer to earlier
// combined declarations, references to later ones are an error.
func (c *Config) BuildAll() (map[string]selector.Stringifier, error) {
	built := map[string]selector.Stringifier{}
	for _, sc := range c.Selectors {
		if _, ok := built[sc.Name]; ok {
			return nil, fmt.Errorf("duplicate selector name '%s'", sc.Name)
		}
		b, err := sc.Build()
		if err != nil {
			return nil, err
		}
		built[sc.Name] = b
	}
	for _, cc := range c.Combined {
		if cc.Name == "" {
			return nil, fmt.Errorf("combined declaration needs a name")
		}
		if _, ok := built[cc.Name]; ok {
			return nil, fmt.Errorf("duplicate selector name '%s'", cc.Name)
		}
		if !validCombinator(cc.Combinator) {
			return nil, fmt.Errorf("combined '%s': invalid combinator %q", cc.Name, cc.Combinator)
		}
		left, ok := built[cc.Left]
		if !ok {
			return nil, fmt.Errorf("combined '%s': unknown selector '%s'", cc.Name, cc.Left)
		}
		right, ok := built[cc.Right]
		if !ok {
			return nil, fmt.Errorf("combined '%s': unknown selector '%s'", cc.Name, cc.Right)
		}
		built[cc.Name] = selector.Combine(left, cc.Combinator, right)
	}
	return built, nil
}
