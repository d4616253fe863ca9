package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestNewDeck(t *testing.T) {
	t.Parallel()

	deck, err := NewDeck("  IT vocabulary ", "words for work", LanguageEnglish, LanguageUkrainian)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if deck.Title != "IT vocabulary" {
		t.Errorf("Expected trimmed title, got %q", deck.Title)
	}
	if deck.DailyReviewLimit != DefaultDailyReviewLimit || deck.DailyNewCardsLimit != DefaultDailyNewCardsLimit {
		t.Error("Expected default daily limits")
	}
	if deck.ProficiencyLevel != ProficiencyBeginner || deck.Tone != ToneNeutral {
		t.Error("Expected beginner level and neutral tone by default")
	}

	p := deck.Personalization()
	if p.Title != deck.Title || p.TargetLanguage != LanguageEnglish || p.NativeLanguage != LanguageUkrainian {
		t.Errorf("Unexpected personalization %+v", p)
	}
}

func TestNewDeck_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		title  string
		desc   string
		target Language
		native Language
		want   error
	}{
		{"empty title", " ", "", LanguageEnglish, LanguagePolish, ErrDeckTitleEmpty},
		{"long title", strings.Repeat("t", MaxDeckTitleLength+1), "", LanguageEnglish, LanguagePolish, ErrDeckTitleTooLong},
		{"long description", "ok", strings.Repeat("d", MaxDeckDescriptionLength+1), LanguageEnglish, LanguagePolish, ErrDeckDescriptionLong},
		{"same languages", "ok", "", LanguageGerman, LanguageGerman, ErrDeckSameLanguages},
		{"unknown language", "ok", "", Language("latin"), LanguagePolish, ErrInvalidLanguage},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDeck(tc.title, tc.desc, tc.target, tc.native)
			if !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
		})
	}
}
