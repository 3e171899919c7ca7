package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rif/pkg/i18n"
)

func TestYAMLParser(t *testing.T) {
	t.Parallel()

	p := i18n.NewYAMLParser()

	t.Run("nested content", func(t *testing.T) {
		t.Parallel()
		got, err := p.Parse(context.Background(), "en:\n  rif:\n    reason:\n      checksum: bad digit\n")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"rif": map[string]any{"reason": map[string]any{"checksum": "bad digit"}}}, got["en"])
	})

	t.Run("language must map to translations", func(t *testing.T) {
		t.Parallel()
		_, err := p.Parse(context.Background(), "en: hello\n")
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		_, err := p.Parse(context.Background(), "")
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		_, err := p.Parse(context.Background(), "en: [unclosed\n")
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Parse(ctx, "en:\n  a: b\n")
		assert.ErrorIs(t, err, i18n.ErrYAMLParsingCancelled)
	})

	t.Run("extensions", func(t *testing.T) {
		t.Parallel()
		assert.True(t, p.SupportsFileExtension(".yaml"))
		assert.True(t, p.SupportsFileExtension("YML"))
		assert.False(t, p.SupportsFileExtension(".json"))
	})
}

func TestEmbeddedFSAdapter(t *testing.T) {
	t.Parallel()

	t.Run("merges files per language", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"locales/en.yaml":   {Data: []byte("en:\n  hello: Hello\n")},
			"locales/es.yml":    {Data: []byte("es:\n  hello: Hola\n")},
			"locales/extra.yml": {Data: []byte("en:\n  bye: Bye\n")},
			"locales/README.md": {Data: []byte("not a catalogue")},
		}
		tr, err := i18n.NewTranslator(context.Background(), i18n.NewEmbeddedFSAdapter(i18n.NewYAMLParser(), fsys, "locales"))
		require.NoError(t, err)
		assert.Equal(t, []string{"en", "es"}, tr.SupportedLanguages())
		assert.Equal(t, "Bye", tr.T("en", "bye"))
		assert.Equal(t, "Hola", tr.T("es", "hello"))
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewEmbeddedFSAdapter(i18n.NewYAMLParser(), fstest.MapFS{}, "locales").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadEmbeddedDirectory)
	})

	t.Run("no supported files", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"locales/en.json": {Data: []byte(`{"en":{}}`)}}
		_, err := i18n.NewEmbeddedFSAdapter(i18n.NewYAMLParser(), fsys, "locales").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoTranslationFiles)
	})

	t.Run("broken file", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"locales/en.yaml": {Data: []byte("en: nope\n")}}
		_, err := i18n.NewEmbeddedFSAdapter(i18n.NewYAMLParser(), fsys, "locales").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseEmbeddedFile)
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})
}
