package extract

import (
	"bytes"
	"regexp"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dlclark/regexp2"
)

// locator finds the object literal bound to a script variable.
type locator struct {
	pattern *regexp2.Regexp
}

// newLocator builds the assignment pattern for variable. The match is the
// literal itself: everything from the opening brace to the first closing
// brace that is followed by a semicolon.
func newLocator(variable string) *locator {
	expr := `(?<=\b(?:const|let|var)\s+` + regexp.QuoteMeta(variable) + `\s*=\s*)\{[\s\S]*?\}(?=\s*;)`
	re := regexp2.MustCompile(expr, regexp2.None)
	re.MatchTimeout = 5 * time.Second
	return &locator{pattern: re}
}

// find returns the literal text, or "" when the page has none. Script
// elements are searched first; the raw body is the fallback for inputs
// that are not HTML, such as a bare .js file.
func (l *locator) find(body []byte) (string, error) {
	var found string
	var scanErr error

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err == nil {
		doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			found, scanErr = l.match(s.Text())
			return found == "" && scanErr == nil
		})
	}
	if scanErr != nil {
		return "", &ParseError{Reason: "scanning page scripts", Err: scanErr}
	}
	if found != "" {
		return found, nil
	}

	found, err = l.match(string(body))
	if err != nil {
		return "", &ParseError{Reason: "scanning page source", Err: err}
	}
	return found, nil
}

func (l *locator) match(text string) (string, error) {
	m, err := l.pattern.FindStringMatch(text)
	if err != nil || m == nil {
		return "", err
	}
	return m.String(), nil
}
