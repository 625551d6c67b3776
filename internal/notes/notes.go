// Package notes persists rendered documents as Markdown files. It owns
// everything the renderer does not: file naming, reserved-character
// sanitization and collision avoidance.
package notes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tengjizhang/hnmd/internal/model"
)

const sourceName = "hackernews"

// characters that are reserved on at least one supported filesystem, plus
// the ones that break wiki-style links
var reservedReplacer = strings.NewReplacer(
	"\\", "-", "/", "-", ":", "-", "*", "-", "?", "-",
	"\"", "-", "<", "-", ">", "-", "|", "-",
	"#", "-", "[", "-", "]", "-", "^", "-",
)

type Saver struct {
	dir      string
	template string
}

func NewSaver(dir, template string) *Saver {
	return &Saver{dir: dir, template: template}
}

// Save writes content under a templated filename, probing " (n)" suffixes
// until an unused name is found. Returns the path written.
func (s *Saver) Save(post model.PostInfo, content string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	base := Filename(s.template, post)

	for n := 0; n < 1000; n++ {
		name := base
		if n > 0 {
			name = fmt.Sprintf("%s (%d)", base, n)
		}
		path := filepath.Join(s.dir, name+".md")

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		if _, err := f.WriteString(content); err != nil {
			f.Close()
			return "", err
		}
		if err := f.Close(); err != nil {
			return "", err
		}
		return path, nil
	}
	return "", fmt.Errorf("no free filename for %q in %s", base, s.dir)
}

// Filename expands the template's placeholders with sanitized values. Date
// placeholders come from the acquisition time, so re-saving an acquired post
// is reproducible.
func Filename(template string, post model.PostInfo) string {
	title := post.Title
	if title == "" {
		title = "Unknown Title"
	}
	at := post.ScrapedDate

	expanded := strings.NewReplacer(
		"{{title}}", sanitizeValue(title),
		"{{post-id}}", sanitizeValue(post.PostID),
		"{{date}}", at.Format("2006-01-02"),
		"{{time}}", at.Format("15-04-05"),
		"{{datetime}}", at.Format("2006-01-02 15-04-05"),
		"{{source}}", sourceName,
	).Replace(template)

	expanded = strings.TrimSpace(expanded)
	if expanded == "" {
		expanded = sanitizeValue(post.PostID)
	}
	return expanded
}

func sanitizeValue(v string) string {
	v = reservedReplacer.Replace(v)
	v = strings.Join(strings.Fields(v), " ")
	return strings.Trim(v, " .")
}
