package transform

import (
	"bytes"
	"io"

	"github.com/arthur-debert/assetpipe/pkg/asset"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

type cssMinOptions struct {
	RemoveComments      bool `mapstructure:"remove_comments"`
	RemoveLastSemicolon bool `mapstructure:"remove_last_semicolon"`
	// PreserveImportant keeps /*! ... */ comments
	PreserveImportant bool `mapstructure:"preserve_important"`
}

type cssMin struct {
	opts cssMinOptions
}

func newCSSMin(params map[string]interface{}) (Transform, error) {
	opts := cssMinOptions{RemoveComments: true, RemoveLastSemicolon: true}
	if err := decodeParams(params, &opts); err != nil {
		return nil, err
	}
	return &cssMin{opts: opts}, nil
}

// Run tokenises the stylesheet and writes it back with whitespace
// collapsed. A space is only kept between two tokens that need one: never
// around { } ; , nor after : or ( nor before ), and never before the colon
// of a declaration.
func (m *cssMin) Run(content []byte, _ *asset.Asset) ([]byte, error) {
	l := css.NewLexer(parse.NewInputBytes(content))

	var out bytes.Buffer
	out.Grow(len(content))
	space, semicolon := false, false

	// blocks records, per open brace, whether it holds declarations
	var blocks []bool
	segmentStart, segmentAt := true, ""

	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != nil && err != io.EOF {
				return nil, err
			}
			if semicolon {
				out.WriteByte(';')
			}
			return out.Bytes(), nil
		case css.WhitespaceToken:
			space = true
			continue
		case css.CommentToken:
			if !m.keepComment(data) {
				space = true
				continue
			}
		case css.SemicolonToken:
			if semicolon {
				out.WriteByte(';')
			}
			semicolon, space = true, false
			segmentStart = true
			continue
		}

		if tt != css.CommentToken && segmentStart {
			segmentAt = ""
			if tt == css.AtKeywordToken {
				segmentAt = string(bytes.ToLower(data))
			}
			segmentStart = false
		}

		if semicolon {
			if !(tt == css.RightBraceToken && m.opts.RemoveLastSemicolon) {
				out.WriteByte(';')
			}
			semicolon, space = false, false
		}
		inDeclarations := len(blocks) > 0 && blocks[len(blocks)-1]
		if space && out.Len() > 0 && needsSpace(out.Bytes()[out.Len()-1], tt, inDeclarations) {
			out.WriteByte(' ')
		}
		space = false
		out.Write(data)

		switch tt {
		case css.LeftBraceToken:
			blocks = append(blocks, holdsDeclarations(segmentAt))
			segmentStart = true
		case css.RightBraceToken:
			if len(blocks) > 0 {
				blocks = blocks[:len(blocks)-1]
			}
			segmentStart = true
		}
	}
}

// holdsDeclarations reports whether a block opened by a rule starting with
// the at-keyword at ("" for a selector) contains declarations rather than
// nested rules
func holdsDeclarations(at string) bool {
	switch at {
	case "@media", "@supports", "@document", "@-moz-document", "@layer", "@container", "@scope":
		return false
	}
	return true
}

func (m *cssMin) keepComment(data []byte) bool {
	if !m.opts.RemoveComments {
		return true
	}
	return m.opts.PreserveImportant && bytes.HasPrefix(data, []byte("/*!"))
}

func needsSpace(prev byte, next css.TokenType, inDeclarations bool) bool {
	if next == css.ColonToken && inDeclarations {
		return false
	}
	switch prev {
	case '{', '}', ';', ',', ':', '(':
		return false
	}
	switch next {
	case css.LeftBraceToken, css.RightBraceToken, css.SemicolonToken,
		css.CommaToken, css.RightParenthesisToken:
		return false
	}
	return true
}
