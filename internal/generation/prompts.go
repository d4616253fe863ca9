package generation

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/lexicontext/lexicontext-api/internal/domain"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

// Prompts renders the embedded prompt templates.
type Prompts struct {
	tmpl *template.Template
}

// promptData is the data passed to every template.
type promptData struct {
	Word            string
	OriginalContext string
	Language        string
	NativeLanguage  string
	Level           string
	Theme           string
	Tone            string
	Reading         bool
	ReadingSystem   string
}

// LoadPrompts parses the embedded templates.
func LoadPrompts() (*Prompts, error) {
	tmpl, err := template.New("prompts").Option("missingkey=error").ParseFS(promptFS, "prompts/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt templates: %v", ErrInvalidConfig, err)
	}
	return &Prompts{tmpl: tmpl}, nil
}

// Context renders the example sentence prompt.
func (p *Prompts) Context(req ContextRequest) (string, error) {
	theme := req.Deck.Title
	if theme == "" {
		theme = "everyday life"
	}
	tone := req.Deck.Tone
	if tone == "" {
		tone = domain.ToneNeutral
	}

	return p.render("context.tmpl", promptData{
		Word:           req.Word,
		Language:       req.Deck.TargetLanguage.DisplayName(),
		NativeLanguage: req.Deck.NativeLanguage.DisplayName(),
		Level:          req.Deck.ProficiencyLevel.String(),
		Theme:          theme,
		Tone:           string(tone),
		Reading:        req.Deck.TargetLanguage.UsesLogograms(),
		ReadingSystem:  readingSystem(req.Deck.TargetLanguage),
	})
}

// Translate renders the word translation prompt.
func (p *Prompts) Translate(word string, target, native domain.Language) (string, error) {
	return p.render("translate.tmpl", promptData{
		Word:           word,
		Language:       target.DisplayName(),
		NativeLanguage: native.DisplayName(),
	})
}

// Simplify renders the simplification prompt.
func (p *Prompts) Simplify(req SimplifyRequest) (string, error) {
	return p.render("simplify.tmpl", promptData{
		Word:            req.Word,
		OriginalContext: req.OriginalContext,
		Language:        req.TargetLanguage.DisplayName(),
		NativeLanguage:  req.NativeLanguage.DisplayName(),
		Level:           req.Level.String(),
		Reading:         req.TargetLanguage.UsesLogograms(),
		ReadingSystem:   readingSystem(req.TargetLanguage),
	})
}

func (p *Prompts) render(name string, data promptData) (string, error) {
	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template %s: %w", name, err)
	}
	return buf.String(), nil
}

func readingSystem(l domain.Language) string {
	switch l {
	case domain.LanguageChinese:
		return "pinyin with tone marks"
	case domain.LanguageJapanese:
		return "hiragana"
	default:
		return ""
	}
}
