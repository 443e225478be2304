package collegenlp

import "testing"

var names = []string{
	"Indian Institute of Technology Bombay",
	"National Institute of Technology Trichy",
	"Anna University",
}

func TestExtract_FullName(t *testing.T) {
	e := NewExtractor(names)
	m, ok := e.Extract("What is the fee structure at Indian Institute of Technology Bombay?")
	if !ok {
		t.Fatal("expected a match")
	}
	if m.College != "Indian Institute of Technology Bombay" {
		t.Errorf("college = %q", m.College)
	}
	if m.Confidence != 1.0 {
		t.Errorf("confidence = %v", m.Confidence)
	}
}

func TestExtract_SpokenForm(t *testing.T) {
	e := NewExtractor(names)
	m, ok := e.Extract("hostel facilities in IIT Bombay")
	if !ok {
		t.Fatal("expected a match")
	}
	if m.College != "Indian Institute of Technology Bombay" {
		t.Errorf("college = %q", m.College)
	}
}

func TestExtract_Acronym(t *testing.T) {
	e := NewExtractor(names)
	m, ok := e.Extract("placements at iitb this year")
	if !ok {
		t.Fatal("expected a match")
	}
	if m.College != "Indian Institute of Technology Bombay" {
		t.Errorf("college = %q", m.College)
	}
	if m.Confidence >= 1.0 {
		t.Errorf("acronym confidence = %v, want < 1.0", m.Confidence)
	}
}

func TestExtract_Punctuation(t *testing.T) {
	e := NewExtractor(names)
	if _, ok := e.Extract("Fees at IIT-Bombay?"); !ok {
		t.Error("expected punctuation-insensitive match")
	}
}

func TestExtract_NoMatch(t *testing.T) {
	e := NewExtractor(names)
	if _, ok := e.Extract("what is the capital of France"); ok {
		t.Error("unexpected match")
	}
}

func TestExtract_LongestAliasWins(t *testing.T) {
	e := NewExtractor([]string{"IIT Bombay", "IIT Bombay Hostel Office"})
	m, ok := e.Extract("contact iit bombay hostel office today")
	if !ok {
		t.Fatal("expected a match")
	}
	if m.College != "IIT Bombay Hostel Office" {
		t.Errorf("college = %q, longer alias should win", m.College)
	}
}
