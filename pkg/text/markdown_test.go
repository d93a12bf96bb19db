package text_test

import (
	"testing"

	"github.com/gbarnett-hz/langchain/pkg/text"

	"github.com/stretchr/testify/require"
)

func TestIsMarkdown(t *testing.T) {
	markdown := "# Title\n\nSome text with a [link](https://example.com).\n\n- one\n- two\n"
	require.True(t, text.IsMarkdown(markdown))

	require.False(t, text.IsMarkdown(""))
	require.False(t, text.IsMarkdown("Just a plain sentence.\nAnd another one."))
	require.False(t, text.IsMarkdown("# Only a heading\n\nand text"))
}

func TestSeparatorsForLanguage(t *testing.T) {
	seps, err := text.SeparatorsForLanguage(text.LanguageGo)
	require.NoError(t, err)
	require.Equal(t, "\nfunc ", seps[0])
	require.Equal(t, "", seps[len(seps)-1])

	seps[0] = "changed"

	again, err := text.SeparatorsForLanguage(text.LanguageGo)
	require.NoError(t, err)
	require.Equal(t, "\nfunc ", again[0])

	_, err = text.SeparatorsForLanguage("cobol")
	require.ErrorIs(t, err, text.ErrUnsupportedLanguage)
}

func TestLanguagePresetsCompile(t *testing.T) {
	for _, lang := range []text.Language{
		text.LanguageCPP, text.LanguageCSharp, text.LanguageGo, text.LanguageJava,
		text.LanguageJavaScript, text.LanguageKotlin, text.LanguageMarkdown, text.LanguagePHP,
		text.LanguagePython, text.LanguageRuby, text.LanguageRust, text.LanguageScala,
		text.LanguageSwift, text.LanguageTypeScript,
	} {
		seps, err := text.SeparatorsForLanguage(lang)
		require.NoError(t, err)

		_, err = text.New(text.WithSeparators(seps...), text.WithSeparatorRegex(true))
		require.NoError(t, err, lang)
	}
}

func TestLanguageFromFileName(t *testing.T) {
	lang, ok := text.LanguageFromFileName("docs/README.MD")
	require.True(t, ok)
	require.Equal(t, text.LanguageMarkdown, lang)

	lang, ok = text.LanguageFromFileName("main.go")
	require.True(t, ok)
	require.Equal(t, text.LanguageGo, lang)

	_, ok = text.LanguageFromFileName("notes.txt")
	require.False(t, ok)
}

func TestSplitGoSource(t *testing.T) {
	seps, err := text.SeparatorsForLanguage(text.LanguageGo)
	require.NoError(t, err)

	s := newSplitter(t,
		text.WithChunkSize(40),
		text.WithChunkOverlap(0),
		text.WithSeparators(seps...),
		text.WithSeparatorRegex(true),
	)

	source := "package main\n\nfunc a() {\n\treturn\n}\n\nfunc b() {\n\treturn\n}\n"

	require.Equal(t, []string{
		"package main\n\nfunc a() {\n\treturn\n}",
		"func b() {\n\treturn\n}",
	}, s.Split(source))
}

func TestNormalize(t *testing.T) {
	require.Equal(t, "Hello world\n\nnext line\nend", text.Normalize("  Hello   world \r\n\r\n\r\n next\tline\n  end "))
	require.Equal(t, "", text.Normalize(" \n\t "))
}
