package lexer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/mdnotion"
)

const fence = "```"

var headingMarkers = [...]string{"# ", "## ", "### "}

var imagePattern = regexp.MustCompile(`!\[([^\]]+)\]\(([^)]+)\)`)

// matchHeading matches "# ", "## " or "### " followed by at least one
// character. The level-1 marker cannot match deeper headings because their
// second byte is '#', not a space.
func (s *scanner) matchHeading(line string) (mdnotion.Token, int, error) {
	for i, marker := range headingMarkers {
		if len(line) > len(marker) && strings.HasPrefix(line, marker) {
			return mdnotion.Heading{
				Level: i + 1,
				Text:  RichText(line[len(marker):]),
			}, len(line), nil
		}
	}
	return nil, 0, s.invalid(mdnotion.KindHeading, line)
}

// matchImage tokenizes an image at the start of line. The scanner cuts lines
// short before a mid-line image, so the image is always reached at the cursor.
func (s *scanner) matchImage(line string) (mdnotion.Token, int, error) {
	loc := imagePattern.FindStringSubmatchIndex(line)
	if loc == nil || loc[0] != 0 {
		return nil, 0, s.invalid(mdnotion.KindImage, line)
	}
	return mdnotion.Image{URL: strings.Clone(line[loc[4]:loc[5]])}, loc[1], nil
}

// matchEmbeddedFile runs once an allow-listed prefix is known to sit at the
// cursor. Patterns are tried in configured order and must match at the start
// of the line.
func (s *scanner) matchEmbeddedFile(line string) (mdnotion.Token, int, error) {
	for _, re := range s.cfg.EmbedPatterns {
		loc := re.FindStringIndex(line)
		if loc == nil || loc[0] != 0 || loc[1] == 0 {
			continue
		}
		return mdnotion.EmbeddedFile{URL: strings.Clone(line[:loc[1]])}, loc[1], nil
	}
	return nil, 0, s.invalid(mdnotion.KindEmbeddedFile, line)
}

func (s *scanner) matchQuote(line string) (mdnotion.Token, int, error) {
	text, ok := cutMarker(line, "> ")
	if !ok {
		return nil, 0, s.invalid(mdnotion.KindQuote, line)
	}
	return mdnotion.Quote{Text: RichText(text)}, len(line), nil
}

func (s *scanner) matchBulletList(line string) (mdnotion.Token, int, error) {
	text, ok := cutMarker(line, "- ")
	if !ok {
		return nil, 0, s.invalid(mdnotion.KindBulletList, line)
	}
	return mdnotion.BulletList{
		Text:    RichText(text),
		Nesting: s.pendingIndent,
	}, len(line), nil
}

// matchNumberedList matches one or more digits, a dot, a space and content.
// The digits are kept as written; consecutive items need not be sequential.
func (s *scanner) matchNumberedList(line string) (mdnotion.Token, int, error) {
	digits := 0
	for digits < len(line) && isDigit(line[digits]) {
		digits++
	}
	text, ok := cutMarker(line[digits:], ". ")
	if digits == 0 || !ok {
		return nil, 0, s.invalid(mdnotion.KindNumberedList, line)
	}
	ordinal, err := strconv.Atoi(line[:digits])
	if err != nil {
		return nil, 0, s.invalid(mdnotion.KindNumberedList, line)
	}
	return mdnotion.NumberedList{
		Text:    RichText(text),
		Ordinal: ordinal,
		Nesting: s.pendingIndent,
	}, len(line), nil
}

// matchCodeBlock matches an opening fence with an optional language tag, the
// body, and the first line holding only a closing fence, which may be
// indented. The consumed span ends right after the closing fence. A block
// without a closing fence runs to the end of the input.
func (s *scanner) matchCodeBlock(rest string) (mdnotion.Token, int) {
	open := strings.IndexByte(rest, '\n')
	if open < 0 {
		return mdnotion.CodeBlock{Lang: strings.Clone(strings.TrimSpace(rest[len(fence):]))}, len(rest)
	}
	lang := strings.Clone(strings.TrimSpace(rest[len(fence):open]))
	body := open + 1
	for pos := body; pos < len(rest); {
		end := len(rest)
		if i := strings.IndexByte(rest[pos:], '\n'); i >= 0 {
			end = pos + i
		}
		if strings.TrimLeft(rest[pos:end], " ") == fence {
			var text string
			if pos > body {
				text = rest[body : pos-1]
			}
			return mdnotion.CodeBlock{Text: strings.Clone(text), Lang: lang}, end
		}
		pos = end + 1
	}
	text := strings.TrimSuffix(rest[body:], "\n")
	return mdnotion.CodeBlock{Text: strings.Clone(text), Lang: lang}, len(rest)
}

// paragraph consumes the whole line verbatim. It is the default construct and
// the recovery target for every failed match.
func paragraph(line string) (mdnotion.Token, int) {
	return mdnotion.Paragraph{Text: RichText(line)}, len(line)
}

// cutMarker strips marker from line and requires at least one byte of content.
func cutMarker(line, marker string) (string, bool) {
	text, ok := strings.CutPrefix(line, marker)
	if !ok || text == "" {
		return "", false
	}
	return text, true
}
