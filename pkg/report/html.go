package report

import (
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"github.com/sdejongh/sharemap/pkg/models"
)

// outlineNode is one folder in the nested outline, rebuilt from relative
// labels alone
type outlineNode struct {
	Name     string
	Comment  string
	Children []*outlineNode
}

// htmlRow is one line of the summary table
type htmlRow struct {
	Folder    string
	Depth     int
	FileCount int
	Comment   string
}

// htmlData feeds the report template
type htmlData struct {
	Root        string
	RootLabel   string
	RootComment string
	MaxDepth    int
	MinFiles    int
	Generated   string
	Rows        []htmlRow
	Outline     []*outlineNode
	Warnings    []string
	HasFolders  bool
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Sharemap Report</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 2rem; color: #222; }
    table { border-collapse: collapse; width: 100%; max-width: 960px; margin-bottom: 2rem; }
    th, td { border: 1px solid #ccc; padding: 0.5rem 0.75rem; text-align: left; }
    th { background-color: #f2f2f2; }
    td.num { text-align: right; width: 4rem; }
    ul { list-style-type: none; padding-left: 1.25rem; }
    ul ul { border-left: 1px solid #ddd; margin-left: 0.5rem; padding-left: 1.25rem; }
    .comment { color: #555; margin-left: 0.5rem; font-style: italic; }
    .warnings { color: #a94442; }
    .metadata { margin-bottom: 1.5rem; }
    .metadata span { display: inline-block; margin-right: 1.5rem; }
    .outline-root > .folder { font-weight: 600; }
    .outline-root { margin-left: 0.25rem; }
  </style>
</head>
<body>
  <h1>Sharemap Report</h1>
  <section class="metadata">
    <span><strong>Root:</strong> {{.Root}}</span>
    <span><strong>Max Depth:</strong> {{.MaxDepth}}</span>
    <span><strong>Min Files:</strong> {{.MinFiles}}</span>
    <span><strong>Generated:</strong> {{.Generated}}</span>
  </section>
  <section>
    <h2>Folder Summary</h2>
    <table>
      <thead>
        <tr><th>Folder</th><th>Depth</th><th>Files</th><th>Comment</th></tr>
      </thead>
      <tbody>
{{- range .Rows}}
        <tr><td>{{.Folder}}</td><td class="num">{{.Depth}}</td><td class="num">{{.FileCount}}</td><td>{{.Comment}}</td></tr>
{{- end}}
      </tbody>
    </table>
  </section>
  <section>
    <h2>Outline View</h2>
{{- if .HasFolders}}
    <div class="outline-root"><span class="folder">{{.RootLabel}}</span>{{if .RootComment}}<span class="comment">{{.RootComment}}</span>{{end}}{{template "outline" .Outline}}</div>
{{- else}}
    <p>No folders met the criteria.</p>
{{- end}}
  </section>
{{- if .Warnings}}
  <section><h2>Warnings</h2>
    <ul class="warnings">
{{- range .Warnings}}
      <li>{{.}}</li>
{{- end}}
    </ul>
  </section>
{{- end}}
</body>
</html>
{{define "outline"}}{{if .}}<ul>{{range .}}<li><span class="folder">{{.Name}}</span>{{if .Comment}}<span class="comment">{{.Comment}}</span>{{end}}{{template "outline" .Children}}</li>{{end}}</ul>{{end}}{{end}}`))

// RenderHTML serializes the scan result as a self-contained document with a
// summary table and a nested outline mirroring the folder hierarchy. All
// user-controlled text is escaped by the template engine.
func RenderHTML(result *models.ScanResult, meta Metadata) (string, error) {
	rows := make([]htmlRow, 0, len(result.Folders))
	rootComment := ""
	for _, f := range result.Folders {
		rows = append(rows, htmlRow{
			Folder:    f.RelativePath,
			Depth:     f.Depth,
			FileCount: f.FileCount,
			Comment:   f.Comment,
		})
		if f.RelativePath == "." {
			rootComment = f.Comment
		}
	}

	rootLabel := filepath.Base(meta.Root)
	if rootLabel == "" || rootLabel == string(filepath.Separator) {
		rootLabel = meta.Root
	}

	data := htmlData{
		Root:        meta.Root,
		RootLabel:   rootLabel,
		RootComment: rootComment,
		MaxDepth:    meta.MaxDepth,
		MinFiles:    meta.MinFiles,
		Generated:   meta.GeneratedAt.Format(time.RFC3339),
		Rows:        rows,
		Outline:     buildOutline(result.Folders),
		Warnings:    result.Warnings,
		HasFolders:  len(result.Folders) > 0,
	}

	var b strings.Builder
	if err := htmlTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return b.String(), nil
}

// buildOutline rebuilds the folder hierarchy from relative labels: each
// label splits on "/" and inserts into a prefix tree. Folders arrive in
// authoritative sort order, so siblings come out in lexical order.
// Intermediate path segments that did not themselves qualify still appear
// as nodes so their children have somewhere to hang.
func buildOutline(folders []models.FolderRecord) []*outlineNode {
	var roots []*outlineNode
	index := make(map[string]*outlineNode)

	for _, f := range folders {
		if f.RelativePath == "." {
			continue
		}

		parts := strings.Split(f.RelativePath, "/")
		prefix := ""
		var parent *outlineNode

		for i, part := range parts {
			if prefix == "" {
				prefix = part
			} else {
				prefix = prefix + "/" + part
			}

			node, ok := index[prefix]
			if !ok {
				node = &outlineNode{Name: part}
				index[prefix] = node
				if parent == nil {
					roots = append(roots, node)
				} else {
					parent.Children = append(parent.Children, node)
				}
			}

			if i == len(parts)-1 {
				node.Comment = f.Comment
			}
			parent = node
		}
	}

	return roots
}
