package runner

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/windlassio/windlass/pkg/agent"
)

var imageFilePattern = regexp.MustCompile(`^image_(\d+)\.`)

// toolImage is one image carried in a tool result's "images" field. Either
// Data (base64) or URL is set.
type toolImage struct {
	Data string
	URL  string
	Ext  string
}

// extractToolImages pulls the images field out of a tool result, accepting
// items shaped {data, ext} or {url} or a bare base64/url string.
func extractToolImages(result any) []toolImage {
	obj, ok := result.(map[string]any)
	if !ok {
		return nil
	}
	raw, ok := obj["images"].([]any)
	if !ok {
		return nil
	}

	var out []toolImage
	for _, item := range raw {
		switch v := item.(type) {
		case string:
			if strings.HasPrefix(v, "http") {
				out = append(out, toolImage{URL: v})
			} else {
				out = append(out, toolImage{Data: v, Ext: "png"})
			}
		case map[string]any:
			img := toolImage{Ext: "png"}
			if s, ok := v["data"].(string); ok {
				img.Data = s
			}
			if s, ok := v["url"].(string); ok {
				img.URL = s
			}
			if s, ok := v["ext"].(string); ok {
				img.Ext = strings.TrimPrefix(s, ".")
			}
			if img.Data != "" || img.URL != "" {
				out = append(out, img)
			}
		}
	}
	return out
}

// persistImages writes base64 images under
// {root}/{session}/{phase}[/sounding_{i}]/image_{n}.{ext}, numbering after
// the highest existing index so concurrent phases never overwrite. URL-only
// images are passed through without persistence. Returns file paths and
// image_url parts for context injection.
func persistImages(root, sessionID, phase string, soundingIndex *int, images []toolImage) ([]string, []agent.ContentPart, error) {
	dir := filepath.Join(root, sessionID, phase)
	if soundingIndex != nil {
		dir = filepath.Join(dir, fmt.Sprintf("sounding_%d", *soundingIndex))
	}

	var paths []string
	var parts []agent.ContentPart
	next := -1

	for _, img := range images {
		if img.URL != "" {
			parts = append(parts, agent.ContentPart{Type: "image_url", ImageURL: img.URL})
			continue
		}

		if next < 0 {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("failed to create image dir: %w", err)
			}
			next = nextImageIndex(dir)
		}

		data, err := base64.StdEncoding.DecodeString(img.Data)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to decode image data: %w", err)
		}
		ext := img.Ext
		if ext == "" {
			ext = "png"
		}
		path := filepath.Join(dir, fmt.Sprintf("image_%d.%s", next, ext))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, nil, fmt.Errorf("failed to write image: %w", err)
		}
		next++

		paths = append(paths, path)
		parts = append(parts, agent.ContentPart{
			Type:     "image_url",
			ImageURL: dataURI(ext, img.Data),
		})
	}
	return paths, parts, nil
}

// nextImageIndex returns one past the highest existing image_<n> in dir.
func nextImageIndex(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	next := 0
	for _, e := range entries {
		m := imageFilePattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n+1 > next {
			next = n + 1
		}
	}
	return next
}

// loadImagePart reads a persisted image back into a data-URI part.
func loadImagePart(path string) (agent.ContentPart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return agent.ContentPart{}, fmt.Errorf("failed to read image %s: %w", path, err)
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return agent.ContentPart{
		Type:     "image_url",
		ImageURL: dataURI(ext, base64.StdEncoding.EncodeToString(data)),
	}, nil
}

func dataURI(ext, b64 string) string {
	mime := "image/" + ext
	if ext == "jpg" {
		mime = "image/jpeg"
	}
	return "data:" + mime + ";base64," + b64
}
