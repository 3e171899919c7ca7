// Package i18n translates message keys into localized strings.
//
// Translations are nested maps keyed by language code and loaded once through
// a TranslationAdapter. Keys use dot notation ("validation.rif") and templates
// use named placeholders in the form %{name}:
//
//	adapter := i18n.NewEmbeddedFSAdapter(i18n.NewYAMLParser(), locales, "locales")
//	tr, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//		return err
//	}
//	msg := tr.T("es", "validation.rif", "field", "rif")
//
// Requests for an unknown language fall back to its base tag ("es-VE" to
// "es") and then to the default language. A missing key returns the key
// itself unless WithFallbackToKey(false) is set.
//
// A Translator is safe for concurrent use.
package i18n
