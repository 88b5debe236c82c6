package reader

import (
	"strings"

	"github.com/heartmarshall/clicktionary-backend/internal/adapter/provider/article"
	"github.com/heartmarshall/clicktionary-backend/internal/domain"
	"github.com/heartmarshall/clicktionary-backend/internal/tokenize"
)

// AnalyzeInput is text pasted by the reader. Language is informational.
type AnalyzeInput struct {
	Text     string
	Language string
}

// AnalyzeResult is the annotated segment stream for a text.
type AnalyzeResult struct {
	Language string           `json:"language,omitempty"`
	Segments []domain.Segment `json:"segments"`
	Summary  tokenize.Summary `json:"summary"`
}

// ImportInput names a web page to read.
type ImportInput struct {
	URL      string
	Language string
}

// Validate checks the URL is present. Scheme checks happen in the extractor.
func (i ImportInput) Validate() error {
	if strings.TrimSpace(i.URL) == "" {
		return domain.NewValidationError("url", "required")
	}
	if i.Language != "" {
		if _, ok := domain.LookupLanguage(i.Language); !ok {
			return domain.NewValidationError("language", "unsupported language")
		}
	}
	return nil
}

// ImportResult is an extracted article and its analysis.
type ImportResult struct {
	Article   article.Article
	Truncated bool
	Analysis  *AnalyzeResult
}

// TranslateInput is a text to translate between two languages.
type TranslateInput struct {
	Text   string
	Source string
	Target string
}

// Validate requires text and two different known languages; "auto" is only
// valid as the source.
func (i TranslateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if _, ok := domain.LookupLanguage(i.Source); !ok {
		errs = append(errs, domain.FieldError{Field: "source", Message: "unsupported language"})
	}
	if lang, ok := domain.LookupLanguage(i.Target); !ok || lang.SourceOnly {
		errs = append(errs, domain.FieldError{Field: "target", Message: "unsupported language"})
	}
	if i.Source != "" && i.Source == i.Target {
		errs = append(errs, domain.FieldError{Field: "target", Message: "must differ from source"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// TranslateResult carries the translated text, or the original when the
// translation service was unavailable.
type TranslateResult struct {
	Source     string
	Target     string
	Text       string
	Translated bool
	Analysis   *AnalyzeResult
}
