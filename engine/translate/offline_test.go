package translate

import (
	"context"
	"errors"
	"testing"

	"github.com/SahayakAI/sahayak-mvp/engine/domain"
)

func TestOffline_Detect(t *testing.T) {
	o := NewOffline()
	tests := []struct {
		name string
		text string
		want string
	}{
		{"english", "What is the fee structure?", "en"},
		{"hindi script", "फीस कितनी है?", "hi"},
		{"bengali script", "ভর্তি ফি কত?", "bn"},
		{"tamil script", "கட்டணம் எவ்வளவு?", "ta"},
		{"telugu script", "ఫీజు ఎంత?", "te"},
		{"punjabi script", "ਫੀਸ ਕਿੰਨੀ ਹੈ?", "pa"},
		{"romanized hindi", "fees kitni hai", "hi"},
		{"romanized tamil", "fees evvalavu", "ta"},
		{"mixed script leans script", "hostel उपलब्ध hai kya", "hi"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := o.Detect(tc.text)
			if err != nil {
				t.Fatalf("Detect: %v", err)
			}
			if got != tc.want {
				t.Errorf("Detect(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestOffline_DetectEmpty(t *testing.T) {
	_, err := NewOffline().Detect("   ")
	if !errors.Is(err, domain.ErrUnknownLanguage) {
		t.Fatalf("expected ErrUnknownLanguage, got %v", err)
	}
}

func TestOffline_TranslateToEnglish(t *testing.T) {
	o := NewOffline()
	got, err := o.Translate(context.Background(), "छात्रावास उपलब्ध है?", "hi", "en")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "hostel available is?" {
		t.Errorf("Translate = %q", got)
	}
}

func TestOffline_TranslateKeepsUnknownWords(t *testing.T) {
	o := NewOffline()
	got, err := o.Translate(context.Background(), "IIT की फीस", "hi", "en")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "IIT of fee" {
		t.Errorf("Translate = %q", got)
	}
}

func TestOffline_TranslateIdentity(t *testing.T) {
	o := NewOffline()
	got, err := o.Translate(context.Background(), "same text", "en", "en")
	if err != nil || got != "same text" {
		t.Fatalf("identity: %q, %v", got, err)
	}
}

func TestOffline_TranslateFromEnglish(t *testing.T) {
	o := NewOffline()
	got, err := o.Translate(context.Background(), "hostel fee", "en", "hi")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got == "hostel fee" {
		t.Errorf("expected dictionary substitution, got %q", got)
	}
}

func TestOffline_TranslateUnsupportedPair(t *testing.T) {
	o := NewOffline()
	_, err := o.Translate(context.Background(), "text", "hi", "ta")
	if !errors.Is(err, domain.ErrTranslationUnavailable) {
		t.Fatalf("expected ErrTranslationUnavailable, got %v", err)
	}
}

func TestCache(t *testing.T) {
	c := NewCache()
	if _, ok := c.Get("a", "hi", "en"); ok {
		t.Fatal("unexpected hit on empty cache")
	}
	c.Put("a", "hi", "en", "b")
	got, ok := c.Get("a", "hi", "en")
	if !ok || got != "b" {
		t.Fatalf("Get = %q, %v", got, ok)
	}
	if _, ok := c.Get("a", "en", "hi"); ok {
		t.Fatal("direction must be part of the key")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d", c.Len())
	}
}
