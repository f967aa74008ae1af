// Package docs embeds the help topics shown by `crownpick docs` and the
// picker's help overlay.
package docs

import (
	"bufio"
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed content/*.md
var contentFS embed.FS

// Topic names one embedded guide. Title is the guide's first heading.
type Topic struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// Index lists every topic with its title, sorted by name.
func Index() []Topic {
	entries, err := fs.ReadDir(contentFS, "content")
	if err != nil {
		return nil
	}
	var topics []Topic
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), ".md")
		if !ok || name == "" || e.IsDir() {
			continue
		}
		body, _ := contentFS.ReadFile(path.Join("content", e.Name()))
		topics = append(topics, Topic{Name: name, Title: heading(string(body), name)})
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].Name < topics[j].Name })
	return topics
}

// Topics lists the embedded topic names, sorted.
func Topics() []string {
	index := Index()
	names := make([]string, len(index))
	for i, t := range index {
		names[i] = t.Name
	}
	return names
}

// Get returns the markdown for topic. Names are case-insensitive.
func Get(topic string) (string, bool) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" || strings.ContainsAny(topic, `/\`) {
		return "", false
	}
	b, err := contentFS.ReadFile(path.Join("content", topic+".md"))
	if err != nil {
		return "", false
	}
	return string(b), true
}

// heading is the text of the first "# " line of md, or fallback.
func heading(md, fallback string) string {
	sc := bufio.NewScanner(strings.NewReader(md))
	for sc.Scan() {
		if title, ok := strings.CutPrefix(strings.TrimSpace(sc.Text()), "# "); ok {
			if title = strings.TrimSpace(title); title != "" {
				return title
			}
		}
	}
	return fallback
}
