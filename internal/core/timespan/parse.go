package timespan

import (
	"iter"
	"strings"
	"time"
)

// Context carries the anchor every relative phrase resolves against
type Context struct {
	Now time.Time
}

// NewContext pins now to its fixed offset
func NewContext(now time.Time) Context {
	return Context{Now: Fixed(now)}
}

// ParseString splits text on whitespace and parses the words
func ParseString(text string, c Context) (TimeSpan, error) {
	return Parse(strings.Fields(text), c)
}

// Parse resolves words into a single TimeSpan.
//
//	full        := simple_span (To simple_span)?
//	simple_span := Day(d<=0) | This|Last Span(week|month|year)
//	             | Span(weekday) | Span(specific month)
//
// Either the whole phrase resolves or a *ParseError is returned.
func Parse(words []string, c Context) (TimeSpan, error) {
	next, stop := iter.Pull(Tokenize(words))
	defer stop()

	p := &parser{next: next, now: Fixed(c.Now)}
	return p.full()
}

type parser struct {
	next   func() (Token, bool)
	peeked Token
	has    bool
	now    time.Time
}

func (p *parser) peek() (Token, bool) {
	if !p.has {
		tok, ok := p.next()
		if !ok {
			return nil, false
		}
		p.peeked, p.has = tok, true
	}
	return p.peeked, true
}

func (p *parser) advance() (Token, bool) {
	tok, ok := p.peek()
	p.peeked, p.has = nil, false
	return tok, ok
}

func (p *parser) full() (TimeSpan, error) {
	tok, ok := p.advance()
	if !ok {
		return TimeSpan{}, errEmptyInput()
	}
	first, err := p.simple(tok)
	if err != nil {
		return TimeSpan{}, err
	}

	tok, ok = p.advance()
	if !ok {
		return first, nil
	}
	if _, isTo := tok.(ToToken); !isTo {
		return TimeSpan{}, errUnexpected(tok, "expected 'to' or end of input")
	}

	tok, ok = p.advance()
	if !ok {
		return TimeSpan{}, errUnexpected(nil, "expected a time span after 'to'")
	}
	second, err := p.simple(tok)
	if err != nil {
		return TimeSpan{}, err
	}
	if extra, more := p.advance(); more {
		return TimeSpan{}, errUnexpected(extra, "trailing input after time span")
	}
	return first.Extend(second)
}

func (p *parser) simple(tok Token) (TimeSpan, error) {
	switch t := tok.(type) {
	case DayToken:
		return p.day(t)
	case ThisToken:
		return p.relative(t, 0)
	case LastToken:
		return p.relative(t, 1)
	case SpanToken:
		switch t.Kind.Unit {
		case UnitWeekday:
			return p.weekday(t.Kind.Index)
		case UnitSpecificMonth:
			return p.month(t.Kind.Index)
		}
		return TimeSpan{}, errUnexpected(t, "'"+t.String()+"' needs 'this' or 'last' in front")
	case ToToken:
		return TimeSpan{}, errUnexpected(t, "a time span cannot start with 'to'")
	case UnknownToken:
		return TimeSpan{}, errInvalid(t.Word, "")
	case NumberToken, PartialISODateToken, ISODateToken:
		return TimeSpan{}, errUnexpected(t, "")
	default:
		return TimeSpan{}, errUnexpected(tok, "unhandled token")
	}
}

// day resolves today (offset 0) and days before it. Today has to stand alone.
func (p *parser) day(t DayToken) (TimeSpan, error) {
	if t.Offset > 0 {
		return TimeSpan{}, errInvalid(t.String(), "relative days cannot be in the future")
	}
	if t.Offset == 0 {
		if next, ok := p.peek(); ok {
			return TimeSpan{}, errUnexpected(next, "nothing may follow 'today'")
		}
	}
	start, ok := AddDays(AtMidnight(p.now), t.Offset)
	if !ok {
		return TimeSpan{}, errOutOfRange()
	}
	end, ok := AddDays(start, 1)
	if !ok {
		return TimeSpan{}, errOutOfRange()
	}
	if end.After(p.now) {
		end = p.now
	}
	return New(start, end)
}

// weekday is the most recent day w (Monday = 0) at or before now
func (p *parser) weekday(w int) (TimeSpan, error) {
	monday, ok := mondayOf(p.now)
	if !ok {
		return TimeSpan{}, errOutOfRange()
	}
	start, ok := AddDays(monday, w)
	if ok && start.After(p.now) {
		start, ok = SubDays(start, 7)
	}
	if !ok {
		return TimeSpan{}, errOutOfRange()
	}
	end, ok := AddDays(start, 1)
	if !ok {
		return TimeSpan{}, errOutOfRange()
	}
	return New(start, end)
}

// month is the most recent first of month m (January = 0) at or before now
func (p *parser) month(m int) (TimeSpan, error) {
	jan1 := time.Date(p.now.Year(), time.January, 1, 0, 0, 0, 0, p.now.Location())
	start, ok := AddMonths(jan1, m)
	if ok && start.After(p.now) {
		start, ok = SubMonths(start, 12)
	}
	if !ok {
		return TimeSpan{}, errOutOfRange()
	}
	end, ok := AddMonths(start, 1)
	if !ok {
		return TimeSpan{}, errOutOfRange()
	}
	return New(start, end)
}

// relative resolves "this <period>" (back = 0) and "last <period>" (back = 1)
func (p *parser) relative(lead Token, back int) (TimeSpan, error) {
	tok, ok := p.advance()
	if !ok {
		return TimeSpan{}, errUnexpected(nil, "expected week, month or year after '"+lead.String()+"'")
	}

	switch t := tok.(type) {
	case SpanToken:
		switch t.Kind.Unit {
		case UnitWeek:
			return p.shifted(back, func() (time.Time, bool) { return mondayOf(p.now) },
				func(x time.Time, n int) (time.Time, bool) { return AddDays(x, 7*n) })
		case UnitMonth:
			return p.shifted(back, func() (time.Time, bool) {
				y, m, _ := p.now.Date()
				return time.Date(y, m, 1, 0, 0, 0, 0, p.now.Location()), true
			}, AddMonths)
		case UnitYear:
			return p.shifted(back, func() (time.Time, bool) {
				return time.Date(p.now.Year(), time.January, 1, 0, 0, 0, 0, p.now.Location()), true
			}, func(x time.Time, n int) (time.Time, bool) { return AddMonths(x, 12*n) })
		case UnitWeekday, UnitSpecificMonth:
			return TimeSpan{}, errComplicated("'" + lead.String() + " " + t.String() +
				"' could mean more than one " + t.Kind.Unit.String())
		}
		return TimeSpan{}, errUnexpected(t, "unhandled span kind")
	case NumberToken:
		if back > 0 {
			return TimeSpan{}, errUnexpected(t, "'last <number> <period>' is not supported")
		}
		return TimeSpan{}, errUnexpected(t, "")
	case UnknownToken:
		return TimeSpan{}, errInvalid(t.Word, "")
	default:
		return TimeSpan{}, errUnexpected(tok, "expected week, month or year after '"+lead.String()+"'")
	}
}

// shifted builds [anchor, anchor+1 unit) and moves both ends back by back units
func (p *parser) shifted(
	back int,
	anchor func() (time.Time, bool),
	add func(time.Time, int) (time.Time, bool),
) (TimeSpan, error) {
	start, ok := anchor()
	if !ok {
		return TimeSpan{}, errOutOfRange()
	}
	end, ok := add(start, 1)
	if !ok {
		return TimeSpan{}, errOutOfRange()
	}
	if back > 0 {
		if start, ok = add(start, -back); !ok {
			return TimeSpan{}, errOutOfRange()
		}
		if end, ok = add(end, -back); !ok {
			return TimeSpan{}, errOutOfRange()
		}
	}
	return New(start, end)
}
