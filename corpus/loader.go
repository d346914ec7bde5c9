// Copyright 2025 The Mandarin Lyric Mind Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package corpus

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/garfieldra/Mandarin-Lyric-Mind/core"
)

// Loader reads a directory tree of markdown song files and produces
// parent documents with enhanced metadata.
type Loader struct {
	dataPath string
	logger   *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader) error

// WithLoaderLogger sets a custom logger.
// Default is slog.Default().
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// NewLoader creates a loader rooted at dataPath.
func NewLoader(dataPath string, opts ...LoaderOption) (*Loader, error) {
	if dataPath == "" {
		return nil, ErrDataPathRequired
	}

	l := &Loader{
		dataPath: dataPath,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Load walks the data path and returns one parent document per markdown
// file found. The parent id is derived from the file's path relative to
// the data path, so the same file always gets the same id. Unreadable
// files are skipped with a warning.
func (l *Loader) Load() ([]*core.ParentDocument, error) {
	info, err := os.Stat(l.dataPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDataPathNotFound, l.dataPath)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDataPathNotFound, l.dataPath)
	}

	l.logger.Info("loading documents", "path", l.dataPath)

	var parents []*core.ParentDocument

	err = filepath.WalkDir(l.dataPath, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			l.logger.Warn("cannot access path", "path", path, "err", walkErr)
			return nil
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			l.logger.Warn("cannot read file", "path", path, "err", readErr)
			return nil
		}

		rel, relErr := filepath.Rel(l.dataPath, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		content := string(data)
		parents = append(parents, &core.ParentDocument{
			ID:      core.IDFromContent(rel),
			Source:  rel,
			Content: content,
			Meta:    extractMetadata(path, content),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.logger.Info("documents loaded", "parents", len(parents))
	return parents, nil
}

// extractMetadata pulls metadata out of a document's section headers.
// Missing title and artist fall back to the file name and its parent
// directory; remaining empty fields get the Unknown sentinel.
func extractMetadata(path, content string) core.Metadata {
	var meta core.Metadata

	for _, sec := range splitSections(content) {
		field := fieldForHeader(sec.header)
		if field == "" || sec.body == "" {
			continue
		}
		setField(&meta, field, sec.body)
	}

	if meta.Title == "" {
		meta.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if meta.Artist == "" {
		meta.Artist = filepath.Base(filepath.Dir(path))
	}

	return meta.WithDefaults()
}

func setField(m *core.Metadata, field, value string) {
	switch field {
	case "title":
		m.Title = value
	case "artist":
		m.Artist = value
	case "album":
		m.Album = value
	case "year":
		m.Year = value
	case "region":
		m.Region = value
	case "type":
		m.Type = value
	case "lyrics":
		m.Lyrics = value
	}
}
