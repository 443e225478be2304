package domain

import (
	"errors"
	"testing"
)

func validRecord() Record {
	return Record{
		College:  "IIT Bombay",
		Category: "Fees",
		Question: "What is the annual fee?",
		Answer:   "₹2,00,000 per year",
		Keywords: []string{"fee", "tuition"},
		Language: "en",
	}
}

func TestValidateRecord_OK(t *testing.T) {
	if err := ValidateRecord(validRecord()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRecord_EmptyLanguageAllowed(t *testing.T) {
	rec := validRecord()
	rec.Language = ""
	if err := ValidateRecord(rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRecord_MissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Record)
	}{
		{"college", func(r *Record) { r.College = "  " }},
		{"question", func(r *Record) { r.Question = "" }},
		{"answer", func(r *Record) { r.Answer = "" }},
		{"language", func(r *Record) { r.Language = "xx" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := validRecord()
			tc.mutate(&rec)
			err := ValidateRecord(rec)
			if err == nil {
				t.Fatal("expected error")
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if ve.Field != tc.name {
				t.Errorf("field = %q, want %q", ve.Field, tc.name)
			}
		})
	}
}

func TestValidateQuery(t *testing.T) {
	if err := ValidateQuery("What is the fee?", "hi", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateQuery("", "en", 5); err == nil {
		t.Fatal("expected error for empty question")
	}
	if err := ValidateQuery("q", "zz", 5); !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("expected ErrUnknownLanguage, got %v", err)
	}
	if err := ValidateQuery("q", "", -1); !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestRecordEmbedText(t *testing.T) {
	rec := validRecord()
	got := rec.EmbedText()
	want := "What is the annual fee? fee tuition"
	if got != want {
		t.Errorf("EmbedText = %q, want %q", got, want)
	}
}
