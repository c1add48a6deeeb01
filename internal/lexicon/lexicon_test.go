package lexicon

import "testing"

func TestStopwordLookupIsCaseInsensitive(t *testing.T) {
	lex := Default()

	for _, token := range []string{"DD", "dd", "Dd", "ceo", "CEO", "er"} {
		if !lex.IsStopword(token) {
			t.Errorf("Expected %q to be a stopword", token)
		}
	}

	if lex.IsStopword("GME") {
		t.Error("Expected GME not to be a stopword")
	}
}

func TestExtraStopwordsExtendBuiltins(t *testing.T) {
	lex := New([]string{"hodl2", " tendies "}, nil, nil)

	if !lex.IsStopword("HODL2") {
		t.Error("Expected extra stopword HODL2 to be registered")
	}
	if !lex.IsStopword("TENDIES") {
		t.Error("Expected extra stopword to be trimmed and uppercased")
	}
	if !lex.IsStopword("DD") {
		t.Error("Expected built-in stopwords to survive extension")
	}
}

func TestAllowOverridesStopword(t *testing.T) {
	lex := New(nil, []string{"DD"}, nil)

	if lex.Rejects("DD") {
		t.Error("Expected allow-listed DD to pass")
	}
	if lex.Rejects("GME") {
		t.Error("Expected ordinary symbol to pass")
	}
}

func TestDenyWinsOverAllow(t *testing.T) {
	lex := New(nil, []string{"SCAM"}, []string{"SCAM"})

	if !lex.Rejects("SCAM") {
		t.Error("Expected deny list to win over allow list")
	}
}
