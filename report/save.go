package report

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/ar0000n/learning-planner/planner"
)

// Markdown renders the persisted document: title line, generation metadata,
// and the refined plan only. Draft and critique are never persisted.
func Markdown(rec *planner.RunRecord) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# 1-Week Learning Plan: %s\n\n", rec.Topic)
	fmt.Fprintf(&sb, "*Generated on %s · Familiarity: %s*\n\n",
		rec.GeneratedAt.Format("2006-01-02"), rec.Familiarity.Label)
	sb.WriteString(rec.RefinedPlan)
	sb.WriteString("\n")
	return sb.String()
}

// SaveMarkdown writes the document into dir as a UTF-8 markdown file,
// overwriting any previous plan for the same topic and date. Returns the
// path written.
func SaveMarkdown(rec *planner.RunRecord, dir string) (string, error) {
	path := filepath.Join(dir, FileName(rec.Topic, rec.GeneratedAt))
	if err := os.WriteFile(path, []byte(Markdown(rec)), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

const htmlShell = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>1-Week Learning Plan: %s</title>
</head>
<body>
%s</body>
</html>
`

// ExportHTML converts the markdown document to a standalone HTML file next to
// the markdown one. Returns the path written.
func ExportHTML(rec *planner.RunRecord, dir string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(rec)), &buf); err != nil {
		return "", err
	}
	name := strings.TrimSuffix(FileName(rec.Topic, rec.GeneratedAt), ".md") + ".html"
	path := filepath.Join(dir, name)
	doc := fmt.Sprintf(htmlShell, html.EscapeString(rec.Topic), buf.String())
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
