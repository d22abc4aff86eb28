// Package i18n renders localised message templates. It backs the default
// assertion messages of the validator package and can serve any other
// key/template catalogue.
//
// # Architecture
//
// A Translator holds catalogues keyed by language. Catalogues are produced by a
// TranslationAdapter (in-memory map, single file, or an fs.FS directory such
// as an embed.FS), and file content is decoded by a Parser (YAML or JSON).
// Keys are dot-separated paths into nested maps:
//
//	en:
//	  validator:
//	    assertion:
//	      is_email: "'%{value}' is an email"
//
// is looked up as "validator.assertion.is_email".
//
// Templates use named placeholders in the form %{name}. Substitution is a
// single pass over the template, so parameter values are never re-expanded.
// Unknown placeholders are left untouched.
//
// # Usage
//
//	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), catalogFS, "messages")
//	translator, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//		return err
//	}
//	msg := translator.T("fr", "validator.assertion.is_email", "value", "bob")
//
// A Translator is safe for concurrent use once built.
package i18n
