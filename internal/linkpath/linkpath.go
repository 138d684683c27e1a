// Package linkpath resolves relative img and link targets against the
// directory of the Markdown source.
//
// The PDF stage renders from a temporary file, so a relative "pic.png"
// would otherwise resolve against the temp directory.
package linkpath

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// rewritten lists the attribute rewritten for each element.
var rewritten = map[atom.Atom]string{
	atom.Img: "src",
	atom.A:   "href",
}

// skippedPrefixes mark targets that are already absolute.
var skippedPrefixes = []string{"http://", "https://", "file://", "data:", "mailto:", "//", "#"}

// Absolutize rewrites relative img[src] and a[href] values in content to
// file:// URLs under sourceDir. Targets escaping sourceDir are left as-is.
// An empty sourceDir returns content unchanged.
func Absolutize(content, sourceDir string) (string, error) {
	if sourceDir == "" {
		return content, nil
	}
	root, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}

	nodes, err := parse(content)
	if err != nil {
		return "", err
	}
	for _, n := range nodes {
		walk(n, root)
	}

	var b strings.Builder
	for _, n := range nodes {
		if err := html.Render(&b, n); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// parse returns the top-level nodes of content. Fragments are parsed in a
// body context so no html/body wrapper is added on render.
func parse(content string) ([]*html.Node, error) {
	head := strings.ToLower(strings.TrimSpace(content))
	if strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		if err != nil {
			return nil, err
		}
		return []*html.Node{doc}, nil
	}

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	return nodes, err
}

func walk(n *html.Node, root string) {
	if n.Type == html.ElementNode {
		if key, ok := rewritten[n.DataAtom]; ok {
			rewriteAttr(n, key, root)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, root)
	}
}

func rewriteAttr(n *html.Node, key, root string) {
	for i := range n.Attr {
		if n.Attr[i].Key != key || !isRelative(n.Attr[i].Val) {
			continue
		}
		if abs, ok := resolve(n.Attr[i].Val, root); ok {
			n.Attr[i].Val = abs
		}
	}
}

// resolve turns a relative target into a file:// URL under root. The query
// and fragment are carried over; only the path is joined with root.
func resolve(target, root string) (string, bool) {
	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" {
		return "", false
	}
	path := filepath.Join(root, filepath.FromSlash(u.Path))
	if !within(path, root) {
		return "", false
	}
	abs := url.URL{
		Scheme:   "file",
		Path:     filepath.ToSlash(path),
		RawQuery: u.RawQuery,
		Fragment: u.Fragment,
	}
	return abs.String(), true
}

func isRelative(target string) bool {
	if target == "" || filepath.IsAbs(target) || strings.HasPrefix(target, "/") {
		return false
	}
	for _, p := range skippedPrefixes {
		if strings.HasPrefix(target, p) {
			return false
		}
	}
	return true
}

// within reports whether path is root or below it.
func within(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
