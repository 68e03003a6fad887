package json

import (
	"fmt"

	"github.com/fwojciec/mdnotion"
)

// tokenDTO is the JSON representation of a Token with a type discriminator.
type tokenDTO struct {
	Type     string    `json:"type"`
	Level    *int      `json:"level,omitempty"`
	RichText []spanDTO `json:"rich_text,omitempty"`
	Text     *string   `json:"text,omitempty"`
	Lang     *string   `json:"lang,omitempty"`
	Ordinal  *int      `json:"ordinal,omitempty"`
	Nesting  *int      `json:"nesting,omitempty"`
	URL      *string   `json:"url,omitempty"`
}

// spanDTO is the JSON representation of a Span with a type discriminator.
type spanDTO struct {
	Type string  `json:"type"`
	Text string  `json:"text"`
	Link *string `json:"link,omitempty"`
}

func marshalToken(tok mdnotion.Token) (tokenDTO, error) {
	switch t := tok.(type) {
	case mdnotion.Heading:
		return tokenDTO{Type: string(t.Kind()), Level: &t.Level, RichText: marshalSpans(t.Text)}, nil
	case mdnotion.CodeBlock:
		return tokenDTO{Type: string(t.Kind()), Text: &t.Text, Lang: &t.Lang}, nil
	case mdnotion.BulletList:
		return tokenDTO{Type: string(t.Kind()), RichText: marshalSpans(t.Text), Nesting: &t.Nesting}, nil
	case mdnotion.NumberedList:
		return tokenDTO{
			Type:     string(t.Kind()),
			RichText: marshalSpans(t.Text),
			Ordinal:  &t.Ordinal,
			Nesting:  &t.Nesting,
		}, nil
	case mdnotion.Image:
		return tokenDTO{Type: string(t.Kind()), URL: &t.URL}, nil
	case mdnotion.Quote:
		return tokenDTO{Type: string(t.Kind()), RichText: marshalSpans(t.Text)}, nil
	case mdnotion.EmbeddedFile:
		return tokenDTO{Type: string(t.Kind()), URL: &t.URL}, nil
	case mdnotion.Paragraph:
		return tokenDTO{Type: string(t.Kind()), RichText: marshalSpans(t.Text)}, nil
	default:
		return tokenDTO{}, fmt.Errorf("unknown token type: %T", tok)
	}
}

func unmarshalToken(dto tokenDTO) (mdnotion.Token, error) {
	spans, err := unmarshalSpans(dto.RichText)
	if err != nil {
		return nil, err
	}
	switch mdnotion.Kind(dto.Type) {
	case mdnotion.KindHeading:
		return mdnotion.Heading{Level: deref(dto.Level), Text: spans}, nil
	case mdnotion.KindCodeBlock:
		return mdnotion.CodeBlock{Text: deref(dto.Text), Lang: deref(dto.Lang)}, nil
	case mdnotion.KindBulletList:
		return mdnotion.BulletList{Text: spans, Nesting: deref(dto.Nesting)}, nil
	case mdnotion.KindNumberedList:
		return mdnotion.NumberedList{
			Text:    spans,
			Ordinal: deref(dto.Ordinal),
			Nesting: deref(dto.Nesting),
		}, nil
	case mdnotion.KindImage:
		return mdnotion.Image{URL: deref(dto.URL)}, nil
	case mdnotion.KindQuote:
		return mdnotion.Quote{Text: spans}, nil
	case mdnotion.KindEmbeddedFile:
		return mdnotion.EmbeddedFile{URL: deref(dto.URL)}, nil
	case mdnotion.KindParagraph:
		return mdnotion.Paragraph{Text: spans}, nil
	default:
		return nil, fmt.Errorf("unknown token type: %q", dto.Type)
	}
}

func marshalSpans(spans []mdnotion.Span) []spanDTO {
	if len(spans) == 0 {
		return nil
	}
	result := make([]spanDTO, len(spans))
	for i, s := range spans {
		dto := spanDTO{Type: string(s.Kind()), Text: mdnotion.SpanContent(s)}
		if l, ok := s.(mdnotion.LinkSpan); ok {
			dto.Link = &l.URL
		}
		result[i] = dto
	}
	return result
}

func unmarshalSpans(dtos []spanDTO) ([]mdnotion.Span, error) {
	if len(dtos) == 0 {
		return nil, nil
	}
	result := make([]mdnotion.Span, len(dtos))
	for i, dto := range dtos {
		switch mdnotion.SpanKind(dto.Type) {
		case mdnotion.SpanCode:
			result[i] = mdnotion.CodeSpan{Text: dto.Text}
		case mdnotion.SpanBold:
			result[i] = mdnotion.BoldSpan{Text: dto.Text}
		case mdnotion.SpanItalic:
			result[i] = mdnotion.ItalicSpan{Text: dto.Text}
		case mdnotion.SpanStrikethrough:
			result[i] = mdnotion.StrikethroughSpan{Text: dto.Text}
		case mdnotion.SpanLink:
			result[i] = mdnotion.LinkSpan{Text: dto.Text, URL: deref(dto.Link)}
		case mdnotion.SpanText:
			result[i] = mdnotion.TextSpan{Text: dto.Text}
		default:
			return nil, fmt.Errorf("span %d: unknown span type: %q", i, dto.Type)
		}
	}
	return result, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
