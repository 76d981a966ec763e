package book

import (
	"fmt"
	"strings"
)

const (
	readmeFileName  = "README.md"
	indentUnit      = "    "
	mdBookSelector  = "md"
	gitBookSelector = "git"
)

// Dialect selects the list marker and the linkless-heading style of one of the
// two supported documentation generators.
type Dialect int

const (
	// DialectMdBook renders mdBook summaries: "-" markers and "[Title](#)"
	// headings for chapters without a README.
	DialectMdBook Dialect = iota
	// DialectGitBook renders GitBook summaries: "*" markers and plain
	// "Title" bullets for chapters without a README.
	DialectGitBook
)

// ParseDialect maps a selector value to its Dialect. Only "md" and "git" are
// recognized; any other value is an error so that a misconfigured dialect
// never falls back to a default marker.
func ParseDialect(selector string) (Dialect, error) {
	switch selector {
	case mdBookSelector:
		return DialectMdBook, nil
	case gitBookSelector:
		return DialectGitBook, nil
	default:
		return 0, fmt.Errorf("unknown dialect %q (expected %q or %q)", selector, mdBookSelector, gitBookSelector)
	}
}

// String returns the selector value of the dialect.
func (dialect Dialect) String() string {
	if dialect == DialectGitBook {
		return gitBookSelector
	}
	return mdBookSelector
}

func (dialect Dialect) marker() string {
	if dialect == DialectGitBook {
		return "*"
	}
	return "-"
}

// Render walks the chapter tree and produces the complete summary document.
// Chapters named in preferredOrder render first, in that order, matched
// case-insensitively against the root's children; names without a match and
// duplicates are ignored, and all remaining chapters follow in their original
// insertion order. Deeper levels always render in insertion order.
func Render(root *Node, dialect Dialect, preferredOrder []string) string {
	var summaryBuilder strings.Builder
	summaryBuilder.WriteString("# " + root.Name + "\n\n")
	renderFiles(&summaryBuilder, root.Files, 0, dialect)
	for _, chapterNode := range orderChapters(root.Children, preferredOrder) {
		renderChapter(&summaryBuilder, chapterNode, 0, dialect)
	}
	return summaryBuilder.String()
}

// renderChapter emits one chapter heading at the given depth followed by the
// chapter's own files and subchapters at depth+1.
func renderChapter(summaryBuilder *strings.Builder, chapterNode *Node, depth int, dialect Dialect) {
	indent := strings.Repeat(indentUnit, depth)
	chapterTitle := TitleCase(chapterNode.Name)

	if readmePath, found := findReadme(chapterNode.Files); found {
		summaryBuilder.WriteString(indent + dialect.marker() + " [" + chapterTitle + "](" + readmePath + ")\n")
	} else if dialect == DialectGitBook {
		summaryBuilder.WriteString(indent + dialect.marker() + " " + chapterTitle + "\n")
	} else {
		summaryBuilder.WriteString(indent + dialect.marker() + " [" + chapterTitle + "](#)\n")
	}

	renderFiles(summaryBuilder, chapterNode.Files, depth+1, dialect)
	for _, childNode := range chapterNode.Children {
		renderChapter(summaryBuilder, childNode, depth+1, dialect)
	}
}

// renderFiles lists every non-README file as one linked bullet line. The
// README entry, when present, is suppressed here because it is promoted to the
// chapter heading (and the root heading never links).
func renderFiles(summaryBuilder *strings.Builder, files []string, depth int, dialect Dialect) {
	indent := strings.Repeat(indentUnit, depth)
	for _, filePath := range files {
		if isReadme(filePath) {
			continue
		}
		summaryBuilder.WriteString(indent + dialect.marker() + " [" + TitleCase(fileStem(filePath)) + "](" + filePath + ")\n")
	}
}

// findReadme returns the first file whose final path segment is README.md,
// compared case-insensitively.
func findReadme(files []string) (string, bool) {
	for _, filePath := range files {
		if isReadme(filePath) {
			return filePath, true
		}
	}
	return "", false
}

func isReadme(filePath string) bool {
	return strings.EqualFold(finalSegment(filePath), readmeFileName)
}

func finalSegment(filePath string) string {
	if separatorIndex := strings.LastIndex(filePath, pathSegmentSeparator); separatorIndex >= 0 {
		return filePath[separatorIndex+1:]
	}
	return filePath
}

// fileStem is the file name without its directory prefix and extension.
func fileStem(filePath string) string {
	baseName := finalSegment(filePath)
	if extensionIndex := strings.LastIndex(baseName, "."); extensionIndex > 0 {
		return baseName[:extensionIndex]
	}
	return baseName
}

// orderChapters applies the preferred-order rule to the root's chapters.
func orderChapters(chapters []*Node, preferredOrder []string) []*Node {
	if len(preferredOrder) == 0 {
		return chapters
	}
	ordered := make([]*Node, 0, len(chapters))
	alreadyOrdered := make(map[*Node]struct{}, len(chapters))
	for _, preferredName := range preferredOrder {
		for _, chapterNode := range chapters {
			if _, taken := alreadyOrdered[chapterNode]; taken {
				continue
			}
			if strings.EqualFold(chapterNode.Name, preferredName) {
				alreadyOrdered[chapterNode] = struct{}{}
				ordered = append(ordered, chapterNode)
				break
			}
		}
	}
	for _, chapterNode := range chapters {
		if _, taken := alreadyOrdered[chapterNode]; !taken {
			ordered = append(ordered, chapterNode)
		}
	}
	return ordered
}
