package domain

import (
	"fmt"
	"strings"
)

// Language is a language a deck can be studied in or translated into.
type Language string

// Supported languages.
const (
	LanguageEnglish   Language = "english"
	LanguageUkrainian Language = "ukrainian"
	LanguageGerman    Language = "german"
	LanguagePolish    Language = "polish"
	LanguageSpanish   Language = "spanish"
	LanguageFrench    Language = "french"
	LanguageItalian   Language = "italian"
	LanguageChinese   Language = "chinese" // Mandarin
	LanguageJapanese  Language = "japanese"
)

// IsValid reports whether l is one of the supported languages.
func (l Language) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageUkrainian, LanguageGerman, LanguagePolish,
		LanguageSpanish, LanguageFrench, LanguageItalian, LanguageChinese,
		LanguageJapanese:
		return true
	default:
		return false
	}
}

// UsesLogograms reports whether the language is written with Hanzi/Kanji, in
// which case generated sentences carry a phonetic reading.
func (l Language) UsesLogograms() bool {
	return l == LanguageChinese || l == LanguageJapanese
}

// DisplayName returns the capitalised language name used in prompts.
func (l Language) DisplayName() string {
	if l == "" {
		return ""
	}
	return strings.ToUpper(string(l[:1])) + string(l[1:])
}

// ProficiencyLevel is the learner's skill tier. Levels are ordered:
// Beginner < Intermediate < Advanced.
type ProficiencyLevel int

// Proficiency levels, in ascending order.
const (
	ProficiencyBeginner     ProficiencyLevel = iota // A1-A2, HSK 1-2, N5-N4
	ProficiencyIntermediate                         // B1-B2, HSK 3-4, N3-N2
	ProficiencyAdvanced                             // C1-C2, HSK 5-6, N1
)

var proficiencyNames = [...]string{
	ProficiencyBeginner:     "beginner",
	ProficiencyIntermediate: "intermediate",
	ProficiencyAdvanced:     "advanced",
}

// simplerLevels maps each level to the level one rank below it.
// Beginner is the floor.
var simplerLevels = [...]ProficiencyLevel{
	ProficiencyBeginner:     ProficiencyBeginner,
	ProficiencyIntermediate: ProficiencyBeginner,
	ProficiencyAdvanced:     ProficiencyIntermediate,
}

// IsValid reports whether p is a known level.
func (p ProficiencyLevel) IsValid() bool {
	return p >= ProficiencyBeginner && p <= ProficiencyAdvanced
}

// String returns the lowercase name of the level.
func (p ProficiencyLevel) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("ProficiencyLevel(%d)", int(p))
	}
	return proficiencyNames[p]
}

// Simpler steps the level down one rank, saturating at Beginner.
// Unknown levels collapse to Beginner.
func (p ProficiencyLevel) Simpler() ProficiencyLevel {
	if !p.IsValid() {
		return ProficiencyBeginner
	}
	return simplerLevels[p]
}

// MarshalText encodes the level by name.
func (p ProficiencyLevel) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, ErrInvalidProficiencyLevel
	}
	return []byte(p.String()), nil
}

// UnmarshalText decodes a level name.
func (p *ProficiencyLevel) UnmarshalText(text []byte) error {
	level, err := ParseProficiencyLevel(string(text))
	if err != nil {
		return err
	}
	*p = level
	return nil
}

// ParseProficiencyLevel converts a case-insensitive level name.
func ParseProficiencyLevel(s string) (ProficiencyLevel, error) {
	for i, name := range proficiencyNames {
		if strings.EqualFold(s, name) {
			return ProficiencyLevel(i), nil
		}
	}
	return ProficiencyBeginner, fmt.Errorf("%w: %q", ErrInvalidProficiencyLevel, s)
}

// Tone is the register of generated example sentences.
type Tone string

// Supported tones.
const (
	ToneNeutral  Tone = "neutral"
	ToneCasual   Tone = "casual"
	ToneFormal   Tone = "formal"
	ToneHumorous Tone = "humorous"
)

// IsValid reports whether t is a known tone.
func (t Tone) IsValid() bool {
	switch t {
	case ToneNeutral, ToneCasual, ToneFormal, ToneHumorous:
		return true
	default:
		return false
	}
}
