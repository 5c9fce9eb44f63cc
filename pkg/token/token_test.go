package token

import (
	"testing"

	"lox/interpreter-go/pkg/runtime"
)

func TestLookupIdentifier(t *testing.T) {
	for word, kind := range Keywords {
		if got := LookupIdentifier(word); got != kind {
			t.Fatalf("LookupIdentifier(%q) = %s, want %s", word, got, kind)
		}
	}
	for _, ident := range []string{"x", "orchid", "_var", "If", "printx"} {
		if got := LookupIdentifier(ident); got != Identifier {
			t.Fatalf("LookupIdentifier(%q) = %s, want IDENTIFIER", ident, got)
		}
	}
	if len(Keywords) != 16 {
		t.Fatalf("expected 16 reserved words, got %d", len(Keywords))
	}
}

func TestTokenString(t *testing.T) {
	num := Token{Kind: Number, Lexeme: "1.50", Literal: runtime.NumberValue{Val: 1.5}, Line: 1}
	if got := num.String(); got != "NUMBER 1.50 1.5" {
		t.Fatalf("unexpected number token string %q", got)
	}
	str := Token{Kind: String, Lexeme: `"hi"`, Literal: runtime.StringValue{Val: "hi"}, Line: 1}
	if got := str.String(); got != `STRING "hi" "hi"` {
		t.Fatalf("unexpected string token string %q", got)
	}
	if got := New(BangEqual, "!=", 3).String(); got != "BANG_EQUAL !=" {
		t.Fatalf("unexpected operator token string %q", got)
	}
	if got := Kind(999).String(); got != "Kind(999)" {
		t.Fatalf("unexpected unknown kind %q", got)
	}
}
