package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rif/pkg/i18n"
	"github.com/dmitrymomot/rif/pkg/rif"
	"github.com/dmitrymomot/rif/pkg/validator"
)

func newCatalogue(t *testing.T) *i18n.Translator {
	t.Helper()
	adapter := i18n.NewEmbeddedFSAdapter(i18n.NewYAMLParser(), validator.Locales, validator.LocalesDir)
	tr, err := i18n.NewTranslator(context.Background(), adapter)
	require.NoError(t, err)
	return tr
}

func TestLocales_CoverEveryKey(t *testing.T) {
	t.Parallel()

	tr := newCatalogue(t)
	assert.Equal(t, []string{"en", "es"}, tr.SupportedLanguages())

	keys := []string{"validation.required", "validation.rif", "validation.rif_kind"}
	for _, reason := range []string{"malformed", "kind", "identifier", "identifier_too_large", "checksum_digit", "checksum", "kind_not_allowed"} {
		keys = append(keys, validator.ReasonKeyPrefix+reason)
	}
	for _, lang := range tr.SupportedLanguages() {
		for _, key := range keys {
			assert.True(t, tr.HasTranslation(lang, key), "%s: missing %s", lang, key)
		}
	}
}

func TestValidationError_Localize(t *testing.T) {
	t.Parallel()

	tr := newCatalogue(t)

	tests := []struct {
		name string
		err  error
		lang string
		want string
	}{
		{
			name: "checksum english",
			err:  validator.Apply(validator.ValidRIF("rif", "J-07013380-9")),
			lang: "en",
			want: "rif must be a valid RIF (e.g. J-07013380-5): check digit does not match",
		},
		{
			name: "checksum spanish",
			err:  validator.Apply(validator.ValidRIF("rif", "J-07013380-9")),
			lang: "es",
			want: "rif debe ser un RIF válido (ej. J-07013380-5): el dígito verificador no coincide",
		},
		{
			name: "regional tag falls back to base language",
			err:  validator.Apply(validator.ValidRIF("rif", "X-07013380-5")),
			lang: "es-VE",
			want: "rif debe ser un RIF válido (ej. J-07013380-5): letra de tipo desconocida, se espera C, E, G, J, P o V",
		},
		{
			name: "kind restriction with parameters",
			err:  validator.Apply(validator.RIFKindIn("rif", "V-12345678-1", rif.KindLegal, rif.KindGovernment)),
			lang: "es",
			want: "rif debe ser un RIF válido de tipo J, G: tipo no permitido",
		},
		{
			name: "required has no reason",
			err:  validator.Apply(validator.Required("rif", " ")),
			lang: "en",
			want: "rif is required",
		},
		{
			name: "unknown language uses default",
			err:  validator.Apply(validator.Required("rif", "")),
			lang: "fr",
			want: "rif is required",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			verrs := validator.ExtractValidationErrors(tt.err)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.want, verrs[0].Localize(tr, tt.lang))
		})
	}
}

func TestValidationError_LocalizeMissingKey(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{"en": {}}})
	require.NoError(t, err)

	verrs := validator.ExtractValidationErrors(validator.Apply(validator.Required("name", "")))
	require.Len(t, verrs, 1)
	assert.Equal(t, []string{"name field is required"}, verrs.Localize(tr, "en"))
}
