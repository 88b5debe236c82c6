package domain

// LanguageAuto is the source-only pseudo-language meaning "detect".
// It resolves to DefaultLanguage wherever a concrete language is needed.
const (
	LanguageAuto    = "auto"
	DefaultLanguage = "en"
)

// Language is a language the reader can translate from or to.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	SourceOnly bool   `json:"sourceOnly,omitempty"`
}

var languages = []Language{
	{Code: LanguageAuto, Name: "Auto-detect", SourceOnly: true},
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
	{Code: "it", Name: "Italian"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "ru", Name: "Russian"},
	{Code: "ja", Name: "Japanese"},
	{Code: "ko", Name: "Korean"},
	{Code: "zh", Name: "Chinese"},
	{Code: "ar", Name: "Arabic"},
	{Code: "he", Name: "Hebrew"},
	{Code: "hi", Name: "Hindi"},
}

// Languages returns the supported languages in display order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// LookupLanguage finds a supported language by code.
func LookupLanguage(code string) (Language, bool) {
	for _, l := range languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// ResolveLanguage maps the auto pseudo-language and the empty code to
// DefaultLanguage.
func ResolveLanguage(code string) string {
	if code == "" || code == LanguageAuto {
		return DefaultLanguage
	}
	return code
}
