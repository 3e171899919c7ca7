package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
)

// TranslationAdapter loads translations from a source.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from an in-memory map.
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements TranslationAdapter.
func (a *MapAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingTranslationsCancelled, err)
	}
	return a.Data, nil
}

// EmbeddedFSAdapter reads every file in a directory of an fs.FS, typically
// an embed.FS, that the parser supports.
type EmbeddedFSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewEmbeddedFSAdapter creates an adapter over dir in fsys.
func NewEmbeddedFSAdapter(parser Parser, fsys fs.FS, dir string) *EmbeddedFSAdapter {
	return &EmbeddedFSAdapter{parser: parser, fsys: fsys, dir: dir}
}

// Load implements TranslationAdapter. Translations for the same language in
// several files are merged; later files win on conflicting top-level keys.
func (a *EmbeddedFSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingTranslationsCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadEmbeddedDirectory, err)
	}

	all := make(map[string]map[string]any)
	processed := 0
	for _, entry := range entries {
		ext := path.Ext(entry.Name())
		if entry.IsDir() || ext == "" || !a.parser.SupportsFileExtension(ext) {
			continue
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadEmbeddedFile, err)
		}
		parsed, err := a.parser.Parse(ctx, string(content))
		if err != nil {
			return nil, errors.Join(fmt.Errorf("%w: %s", ErrFailedToParseEmbeddedFile, name), err)
		}

		for lang, translations := range parsed {
			if all[lang] == nil {
				all[lang] = make(map[string]any, len(translations))
			}
			maps.Copy(all[lang], translations)
		}
		processed++
	}

	if processed == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoTranslationFiles, a.dir)
	}
	return all, nil
}
