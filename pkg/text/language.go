package text

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// Language selects a separator preset. Presets are regular expressions and
// must be used with WithSeparatorRegex(true).
type Language string

const (
	LanguageCPP        Language = "cpp"
	LanguageCSharp     Language = "csharp"
	LanguageGo         Language = "go"
	LanguageJava       Language = "java"
	LanguageJavaScript Language = "js"
	LanguageKotlin     Language = "kotlin"
	LanguageMarkdown   Language = "markdown"
	LanguagePHP        Language = "php"
	LanguagePython     Language = "python"
	LanguageRuby       Language = "ruby"
	LanguageRust       Language = "rust"
	LanguageScala      Language = "scala"
	LanguageSwift      Language = "swift"
	LanguageTypeScript Language = "ts"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

var tail = []string{
	"\n\n",
	"\n",
	" ",
	"",
}

func withTail(separators ...string) []string {
	return append(separators, tail...)
}

var languageSeparators = map[Language][]string{
	LanguageCPP: withTail(
		"\nclass ",
		"\nvoid ", "\nint ", "\nfloat ", "\ndouble ",
		"\nif ", "\nfor ", "\nwhile ", "\nswitch ", "\ncase ",
	),

	LanguageCSharp: withTail(
		"\ninterface ", "\nenum ", "\nimplements ", "\ndelegate ", "\nevent ",
		"\nclass ", "\nabstract ",
		"\npublic ", "\nprotected ", "\nprivate ", "\nstatic ", "\nreturn ",
		"\nif ", "\ncontinue ", "\nfor ", "\nforeach ", "\nwhile ", "\nswitch ", "\nbreak ", "\ncase ", "\nelse ",
		"\ntry ", "\nthrow ", "\nfinally ", "\ncatch ",
	),

	LanguageGo: withTail(
		"\nfunc ", "\nvar ", "\nconst ", "\ntype ",
		"\nif ", "\nfor ", "\nswitch ", "\ncase ",
	),

	LanguageJava: withTail(
		"\nclass ",
		"\npublic ", "\nprotected ", "\nprivate ", "\nstatic ",
		"\nif ", "\nfor ", "\nwhile ", "\nswitch ", "\ncase ",
	),

	LanguageJavaScript: withTail(
		"\nfunction ", "\nconst ", "\nlet ", "\nvar ", "\nclass ",
		"\nif ", "\nfor ", "\nwhile ", "\nswitch ", "\ncase ", "\ndefault ",
	),

	LanguageKotlin: withTail(
		"\nclass ",
		"\npublic ", "\nprotected ", "\nprivate ", "\ninternal ", "\ncompanion ",
		"\nfun ", "\nval ", "\nvar ",
		"\nif ", "\nfor ", "\nwhile ", "\nwhen ", "\ncase ", "\nelse ",
	),

	LanguageMarkdown: withTail(
		"\n#{1,6} ",
		"```\n",
		"\n\\*\\*\\*+\n",
		"\n---+\n",
		"\n___+\n",
	),

	LanguagePHP: withTail(
		"\nfunction ", "\nclass ",
		"\nif ", "\nforeach ", "\nwhile ", "\ndo ", "\nswitch ", "\ncase ",
	),

	LanguagePython: withTail(
		"\nclass ", "\ndef ", "\n\tdef ",
	),

	LanguageRuby: withTail(
		"\ndef ", "\nclass ",
		"\nif ", "\nunless ", "\nwhile ", "\nfor ", "\ndo ", "\nbegin ", "\nrescue ",
	),

	LanguageRust: withTail(
		"\nfn ", "\nconst ", "\nlet ",
		"\nif ", "\nwhile ", "\nfor ", "\nloop ", "\nmatch ",
	),

	LanguageScala: withTail(
		"\nclass ", "\nobject ", "\ndef ", "\nval ", "\nvar ",
		"\nif ", "\nfor ", "\nwhile ", "\nmatch ", "\ncase ",
	),

	LanguageSwift: withTail(
		"\nfunc ", "\nclass ", "\nstruct ", "\nenum ",
		"\nif ", "\nfor ", "\nwhile ", "\ndo ", "\nswitch ", "\ncase ",
	),

	LanguageTypeScript: withTail(
		"\nenum ", "\ninterface ", "\nnamespace ", "\ntype ",
		"\nclass ", "\nfunction ", "\nconst ", "\nlet ", "\nvar ",
		"\nif ", "\nfor ", "\nwhile ", "\nswitch ", "\ncase ", "\ndefault ",
	),
}

// SeparatorsForLanguage returns a copy of the separator patterns for lang.
func SeparatorsForLanguage(lang Language) ([]string, error) {
	separators, ok := languageSeparators[lang]

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
	}

	return append([]string(nil), separators...), nil
}

// LanguageFromFileName maps a file extension to a preset.
func LanguageFromFileName(name string) (Language, bool) {
	switch strings.ToLower(path.Ext(name)) {
	case ".cs":
		return LanguageCSharp, true
	case ".cpp", ".cc", ".cxx", ".hpp", ".h":
		return LanguageCPP, true
	case ".go":
		return LanguageGo, true
	case ".java":
		return LanguageJava, true
	case ".kt", ".kts":
		return LanguageKotlin, true
	case ".js", ".jsm", ".mjs", ".cjs", ".jsx":
		return LanguageJavaScript, true
	case ".ts", ".tsx":
		return LanguageTypeScript, true
	case ".md", ".markdown":
		return LanguageMarkdown, true
	case ".php":
		return LanguagePHP, true
	case ".py":
		return LanguagePython, true
	case ".rb":
		return LanguageRuby, true
	case ".rs":
		return LanguageRust, true
	case ".sc", ".scala":
		return LanguageScala, true
	case ".swift":
		return LanguageSwift, true
	}

	return "", false
}
