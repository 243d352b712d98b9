package dom

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// The matcher evaluates the selector grammar the builder emits: compound
// selectors made of tag/universal/id/class/attribute fragments and the
// pseudo-classes :not(), :is(), :has() (including relative arguments with a
// leading > or ~ combinator), :nth-child(n), :nth-last-child(n),
// :first-child, :last-child, :only-child, :empty and :root, joined by
// descendant and child combinators. Anything outside that grammar is a parse
// error, which callers treat as an invalid candidate selector.

// matcher is a compiled selector group.
type matcher struct {
	groups []complexSelector
}

// complexSelector is a sequence of compound selectors joined by combinators,
// stored left to right. part.comb is the combinator preceding the compound;
// it is zero for the first compound of an absolute selector and holds the
// leading combinator (defaulting to descendant) for relative selectors.
type complexSelector []part

type part struct {
	comb     byte
	compound compound
}

// compound is a sequence of simple selectors that must all match.
type compound []func(*html.Node) bool

func (c compound) match(n *html.Node) bool {
	for _, simple := range c {
		if !simple(n) {
			return false
		}
	}
	return true
}

// match reports whether the node matches any selector in the group.
func (m *matcher) match(n *html.Node) bool {
	for _, sel := range m.groups {
		if matchParts(n, sel) {
			return true
		}
	}
	return false
}

// matchParts matches a complex selector right to left, anchored on n.
func matchParts(n *html.Node, parts complexSelector) bool {
	last := parts[len(parts)-1]
	if !last.compound.match(n) {
		return false
	}
	if len(parts) == 1 {
		return true
	}
	prefix := parts[:len(parts)-1]
	switch last.comb {
	case '>':
		p := ParentElement(n)
		return p != nil && matchParts(p, prefix)
	case '~':
		for s := PrevElementSibling(n); s != nil; s = PrevElementSibling(s) {
			if matchParts(s, prefix) {
				return true
			}
		}
		return false
	case '+':
		s := PrevElementSibling(n)
		return s != nil && matchParts(s, prefix)
	default: // descendant
		for p := ParentElement(n); p != nil; p = ParentElement(p) {
			if matchParts(p, prefix) {
				return true
			}
		}
		return false
	}
}

// matchRelative matches a relative complex selector (a :has() argument) left
// to right, scoped to the given node.
func matchRelative(scope *html.Node, parts complexSelector) bool {
	head := parts[0]
	rest := parts[1:]
	step := func(candidate *html.Node) bool {
		if !head.compound.match(candidate) {
			return false
		}
		if len(rest) == 0 {
			return true
		}
		return matchRelative(candidate, rest)
	}
	switch head.comb {
	case '>':
		for _, c := range ElementChildren(scope) {
			if step(c) {
				return true
			}
		}
	case '~':
		for s := NextElementSibling(scope); s != nil; s = NextElementSibling(s) {
			if step(s) {
				return true
			}
		}
	case '+':
		if s := NextElementSibling(scope); s != nil && step(s) {
			return true
		}
	default: // descendant
		found := false
		walkElements(scope, func(n *html.Node) bool {
			if n == scope {
				return true
			}
			if step(n) {
				found = true
				return false
			}
			return true
		})
		return found
	}
	return false
}

// compile parses a selector group into a matcher.
func compile(selector string) (*matcher, error) {
	if strings.TrimSpace(selector) == "" {
		return nil, ErrEmptySelector
	}
	p := &parser{input: selector}
	groups, err := p.parseGroup(false)
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.done() {
		return nil, p.errorf("unexpected character %q", p.peek())
	}
	return &matcher{groups: groups}, nil
}

// parser is a recursive-descent parser over the selector string.
type parser struct {
	input string
	pos   int
}

func (p *parser) done() bool {
	return p.pos >= len(p.input)
}

func (p *parser) peek() byte {
	if p.done() {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s at position %d in %q",
		ErrInvalidSelector, fmt.Sprintf(format, args...), p.pos, p.input)
}

// skipSpace consumes whitespace and reports whether any was consumed.
func (p *parser) skipSpace() bool {
	start := p.pos
	for !p.done() {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r', '\f':
			p.pos++
		default:
			return p.pos > start
		}
	}
	return p.pos > start
}

// parseGroup parses comma-separated complex selectors. When relative is true
// each selector may begin with a >, ~ or + combinator.
func (p *parser) parseGroup(relative bool) ([]complexSelector, error) {
	var groups []complexSelector
	for {
		sel, err := p.parseComplex(relative)
		if err != nil {
			return nil, err
		}
		groups = append(groups, sel)
		p.skipSpace()
		if p.peek() != ',' {
			return groups, nil
		}
		p.pos++
	}
}

// parseComplex parses one complex selector.
func (p *parser) parseComplex(relative bool) (complexSelector, error) {
	var parts complexSelector
	comb := byte(0)

	p.skipSpace()
	if relative {
		comb = ' '
		if c := p.peek(); c == '>' || c == '~' || c == '+' {
			comb = c
			p.pos++
			p.skipSpace()
		}
	}

	for {
		comp, err := p.parseCompound()
		if err != nil {
			return nil, err
		}
		parts = append(parts, part{comb: comb, compound: comp})

		sawSpace := p.skipSpace()
		switch c := p.peek(); {
		case c == '>' || c == '~' || c == '+':
			comb = c
			p.pos++
			p.skipSpace()
		case sawSpace && p.startsCompound():
			comb = ' '
		default:
			return parts, nil
		}
	}
}

// startsCompound reports whether the next character can begin a compound
// selector.
func (p *parser) startsCompound() bool {
	switch c := p.peek(); c {
	case '*', '#', '.', '[', ':', '\\':
		return true
	default:
		return isIdentStart(c)
	}
}

// parseCompound parses a non-empty sequence of simple selectors.
func (p *parser) parseCompound() (compound, error) {
	var comp compound
	for {
		switch c := p.peek(); {
		case c == '*':
			p.pos++
			comp = append(comp, func(*html.Node) bool { return true })
		case c == '#':
			p.pos++
			id, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			comp = append(comp, func(n *html.Node) bool { return ID(n) == id })
		case c == '.':
			p.pos++
			class, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			comp = append(comp, func(n *html.Node) bool { return HasClass(n, class) })
		case c == '[':
			simple, err := p.parseAttribute()
			if err != nil {
				return nil, err
			}
			comp = append(comp, simple)
		case c == ':':
			simple, err := p.parsePseudo()
			if err != nil {
				return nil, err
			}
			comp = append(comp, simple)
		case isIdentStart(c) || c == '\\':
			tag, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			tag = strings.ToLower(tag)
			comp = append(comp, func(n *html.Node) bool { return TagName(n) == tag })
		default:
			if len(comp) == 0 {
				return nil, p.errorf("expected selector")
			}
			return comp, nil
		}
	}
}

// parseAttribute parses [name], [name=value] and [name="value"].
func (p *parser) parseAttribute() (func(*html.Node) bool, error) {
	p.pos++ // consume '['
	p.skipSpace()
	name := p.parseAttrName()
	if name == "" {
		return nil, p.errorf("expected attribute name")
	}
	p.skipSpace()
	if p.peek() == ']' {
		p.pos++
		return func(n *html.Node) bool {
			_, ok := Attr(n, name)
			return ok
		}, nil
	}
	if p.peek() != '=' {
		return nil, p.errorf("expected '=' or ']' in attribute selector")
	}
	p.pos++
	p.skipSpace()
	value, err := p.parseAttrValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.peek() != ']' {
		return nil, p.errorf("expected ']' in attribute selector")
	}
	p.pos++
	return func(n *html.Node) bool {
		v, ok := Attr(n, name)
		return ok && v == value
	}, nil
}

// parseAttrName reads an attribute name. Namespaced names such as
// xmlns:xlink are allowed.
func (p *parser) parseAttrName() string {
	start := p.pos
	for !p.done() {
		c := p.input[p.pos]
		if isIdentChar(c) || c == ':' {
			p.pos++
			continue
		}
		break
	}
	return strings.ToLower(p.input[start:p.pos])
}

// parseAttrValue reads a quoted or bare attribute value.
func (p *parser) parseAttrValue() (string, error) {
	quote := p.peek()
	if quote == '"' || quote == '\'' {
		p.pos++
		var b strings.Builder
		for !p.done() {
			c := p.input[p.pos]
			if c == quote {
				p.pos++
				return b.String(), nil
			}
			if c == '\\' && p.pos+1 < len(p.input) {
				p.pos++
				r, err := p.parseEscape()
				if err != nil {
					return "", err
				}
				b.WriteRune(r)
				continue
			}
			b.WriteByte(c)
			p.pos++
		}
		return "", p.errorf("unterminated attribute value")
	}
	return p.parseIdent()
}

// parsePseudo parses a pseudo-class selector.
func (p *parser) parsePseudo() (func(*html.Node) bool, error) {
	p.pos++ // consume ':'
	start := p.pos
	for !p.done() && (isIdentChar(p.input[p.pos])) {
		p.pos++
	}
	name := strings.ToLower(p.input[start:p.pos])
	if name == "" {
		return nil, p.errorf("expected pseudo-class name")
	}

	if p.peek() != '(' {
		return p.simplePseudo(name)
	}
	p.pos++ // consume '('

	var simple func(*html.Node) bool
	switch name {
	case "not":
		groups, err := p.parseGroup(false)
		if err != nil {
			return nil, err
		}
		simple = func(n *html.Node) bool {
			for _, sel := range groups {
				if matchParts(n, sel) {
					return false
				}
			}
			return true
		}
	case "is", "where", "matches":
		groups, err := p.parseGroup(false)
		if err != nil {
			return nil, err
		}
		simple = func(n *html.Node) bool {
			for _, sel := range groups {
				if matchParts(n, sel) {
					return true
				}
			}
			return false
		}
	case "has":
		groups, err := p.parseGroup(true)
		if err != nil {
			return nil, err
		}
		simple = func(n *html.Node) bool {
			for _, sel := range groups {
				if matchRelative(n, sel) {
					return true
				}
			}
			return false
		}
	case "nth-child", "nth-last-child":
		index, err := p.parseNumber()
		if err != nil {
			return nil, err
		}
		if name == "nth-child" {
			simple = func(n *html.Node) bool { return ElementIndex(n) == index }
		} else {
			simple = func(n *html.Node) bool { return ElementIndexFromEnd(n) == index }
		}
	default:
		return nil, p.errorf("unsupported functional pseudo-class :%s", name)
	}

	p.skipSpace()
	if p.peek() != ')' {
		return nil, p.errorf("expected ')' after :%s argument", name)
	}
	p.pos++
	return simple, nil
}

// simplePseudo builds a matcher for an argument-less pseudo-class.
func (p *parser) simplePseudo(name string) (func(*html.Node) bool, error) {
	switch name {
	case "first-child":
		return func(n *html.Node) bool { return PrevElementSibling(n) == nil }, nil
	case "last-child":
		return func(n *html.Node) bool { return NextElementSibling(n) == nil }, nil
	case "only-child":
		return func(n *html.Node) bool {
			return PrevElementSibling(n) == nil && NextElementSibling(n) == nil
		}, nil
	case "empty":
		return isEmptyElement, nil
	case "root":
		return func(n *html.Node) bool { return ParentElement(n) == nil }, nil
	default:
		return nil, p.errorf("unsupported pseudo-class :%s", name)
	}
}

// isEmptyElement reports whether the element has no element or text child
// nodes. Comment nodes are ignored, matching CSS :empty.
func isEmptyElement(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode || c.Type == html.TextNode {
			return false
		}
	}
	return true
}

// parseNumber reads an unsigned decimal integer.
func (p *parser) parseNumber() (int, error) {
	p.skipSpace()
	start := p.pos
	for !p.done() && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, p.errorf("expected number")
	}
	return strconv.Atoi(p.input[start:p.pos])
}

// parseIdent reads a CSS identifier, resolving backslash escapes.
func (p *parser) parseIdent() (string, error) {
	var b strings.Builder
	for !p.done() {
		c := p.input[p.pos]
		switch {
		case c == '\\':
			p.pos++
			r, err := p.parseEscape()
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
		case isIdentChar(c):
			b.WriteByte(c)
			p.pos++
		default:
			if b.Len() == 0 {
				return "", p.errorf("expected identifier")
			}
			return b.String(), nil
		}
	}
	if b.Len() == 0 {
		return "", p.errorf("expected identifier")
	}
	return b.String(), nil
}

// parseEscape resolves the escape sequence after a consumed backslash.
func (p *parser) parseEscape() (rune, error) {
	if p.done() {
		return 0, p.errorf("dangling escape")
	}
	c := p.input[p.pos]
	if !isHexDigit(c) {
		p.pos++
		return rune(c), nil
	}
	start := p.pos
	for !p.done() && p.pos-start < 6 && isHexDigit(p.input[p.pos]) {
		p.pos++
	}
	value, err := strconv.ParseUint(p.input[start:p.pos], 16, 32)
	if err != nil {
		return 0, p.errorf("invalid hex escape")
	}
	// A single whitespace character terminates a hex escape.
	if !p.done() && p.input[p.pos] == ' ' {
		p.pos++
	}
	return rune(value), nil
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '-' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
