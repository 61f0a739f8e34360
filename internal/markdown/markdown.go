// Package markdown extracts page metadata from Markdown sources.
package markdown

import (
	"bytes"
	"errors"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter is returned when frontmatter is opened but never closed.
var ErrMissingClosingDelimiter = errors.New("frontmatter: missing closing delimiter")

// SplitFrontmatter separates YAML frontmatter (`---` delimited) from the body.
// had is false when the document does not start with a delimiter.
func SplitFrontmatter(content []byte) (frontmatter, body []byte, had bool, err error) {
	nl := "\n"
	if bytes.HasPrefix(content, []byte("---\r\n")) {
		nl = "\r\n"
	}
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	rest := content[len(open):]
	if bytes.HasPrefix(rest, open) {
		return []byte{}, rest[len(open):], true, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(rest, closeSeq)
	if idx < 0 {
		if bytes.HasSuffix(rest, []byte(nl+"---")) {
			return rest[:len(rest)-len(nl+"---")], nil, true, nil
		}
		return nil, nil, false, ErrMissingClosingDelimiter
	}
	return rest[:idx+len(nl)], rest[idx+len(closeSeq):], true, nil
}

// Title returns the page title: the frontmatter title if set, otherwise the
// text of the first level-1 heading, otherwise "".
func Title(content []byte) (string, error) {
	fm, body, had, err := SplitFrontmatter(content)
	if err != nil {
		return "", err
	}
	if had && len(fm) > 0 {
		var meta struct {
			Title string `yaml:"title"`
		}
		if err := yaml.Unmarshal(fm, &meta); err != nil {
			return "", err
		}
		if t := strings.TrimSpace(meta.Title); t != "" {
			return t, nil
		}
	}
	return FirstHeading(body, 1), nil
}

// FirstHeading returns the plain text of the first heading of the given level.
func FirstHeading(body []byte, level int) string {
	root := goldmark.New().Parser().Parse(text.NewReader(body))

	var title string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if h, ok := n.(*gmast.Heading); ok && h.Level == level {
			title = strings.TrimSpace(plainText(h, body))
			return gmast.WalkStop, nil
		}
		return gmast.WalkContinue, nil
	})
	return title
}

func plainText(n gmast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *gmast.Text:
			b.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *gmast.String:
			b.Write(node.Value)
		default:
			b.WriteString(plainText(c, source))
		}
	}
	return b.String()
}
