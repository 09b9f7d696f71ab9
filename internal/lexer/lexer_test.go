package lexer

import (
	"testing"

	"github.com/cwbudde/jerboa/internal/token"
)

func TestNextTokenBasics(t *testing.T) {
	input := `x = 3 + 4 * (2 - 1) write("hi", cr)`

	tests := []struct {
		expectedText string
		expectedType token.Type
	}{
		{"x", token.IDENT},
		{"=", token.PUNCTUATION},
		{"3", token.NUMERIC_LITERAL},
		{"+", token.OPERATOR},
		{"4", token.NUMERIC_LITERAL},
		{"*", token.OPERATOR},
		{"(", token.PUNCTUATION},
		{"2", token.NUMERIC_LITERAL},
		{"-", token.OPERATOR},
		{"1", token.NUMERIC_LITERAL},
		{")", token.PUNCTUATION},
		{"write", token.KEYWORD},
		{"(", token.PUNCTUATION},
		{`"hi"`, token.STRING_LITERAL},
		{",", token.PUNCTUATION},
		{"cr", token.KEYWORD},
		{")", token.PUNCTUATION},
	}

	l := New(input)
	for i, tt := range tests {
		tok, ok := l.NextToken()
		if !ok {
			t.Fatalf("tests[%d] - unexpected end of stream", i)
		}
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - type wrong. expected=%s, got=%s (text=%q)", i, tt.expectedType, tok.Type, tok.Text)
		}
		if tok.Text != tt.expectedText {
			t.Fatalf("tests[%d] - text wrong. expected=%q, got=%q", i, tt.expectedText, tok.Text)
		}
	}
	if _, ok := l.NextToken(); ok {
		t.Fatalf("expected end of stream")
	}
}

func TestMaximalMunchOverride(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []struct {
			text string
			typ  token.Type
		}
	}{
		{
			name:  "signed literal at start of input",
			input: "-5",
			want: []struct {
				text string
				typ  token.Type
			}{{"-5", token.NUMERIC_LITERAL}},
		},
		{
			name:  "operator after identifier",
			input: "x-5",
			want: []struct {
				text string
				typ  token.Type
			}{{"x", token.IDENT}, {"-", token.OPERATOR}, {"5", token.NUMERIC_LITERAL}},
		},
		{
			name:  "operator after numeric literal",
			input: "3-5",
			want: []struct {
				text string
				typ  token.Type
			}{{"3", token.NUMERIC_LITERAL}, {"-", token.OPERATOR}, {"5", token.NUMERIC_LITERAL}},
		},
		{
			name:  "operator after closing paren",
			input: "(x)-5",
			want: []struct {
				text string
				typ  token.Type
			}{
				{"(", token.PUNCTUATION}, {"x", token.IDENT}, {")", token.PUNCTUATION},
				{"-", token.OPERATOR}, {"5", token.NUMERIC_LITERAL},
			},
		},
		{
			name:  "operator after closing bracket",
			input: "a[0]-5",
			want: []struct {
				text string
				typ  token.Type
			}{
				{"a", token.IDENT}, {"[", token.OPERATOR}, {"0", token.NUMERIC_LITERAL}, {"]", token.OPERATOR},
				{"-", token.OPERATOR}, {"5", token.NUMERIC_LITERAL},
			},
		},
		{
			name:  "operator after boolean literal",
			input: "true-5",
			want: []struct {
				text string
				typ  token.Type
			}{{"true", token.KEYWORD}, {"-", token.OPERATOR}, {"5", token.NUMERIC_LITERAL}},
		},
		{
			name:  "signed literal after operator",
			input: "3+-5",
			want: []struct {
				text string
				typ  token.Type
			}{{"3", token.NUMERIC_LITERAL}, {"+", token.OPERATOR}, {"-5", token.NUMERIC_LITERAL}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := All(tt.input)
			if len(toks) != len(tt.want) {
				t.Fatalf("%s: got %d tokens, want %d (%+v)", tt.input, len(toks), len(tt.want), toks)
			}
			for i, w := range tt.want {
				if toks[i].Text != w.text || toks[i].Type != w.typ {
					t.Fatalf("%s: token[%d] = %q/%s, want %q/%s", tt.input, i, toks[i].Text, toks[i].Type, w.text, w.typ)
				}
			}
		})
	}
}

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedText string
		expectedType token.Type
	}{
		{"double quoted", `"hello"`, `"hello"`, token.STRING_LITERAL},
		{"single quoted", `'hello'`, `'hello'`, token.STRING_LITERAL},
		{"empty", `""`, `""`, token.STRING_LITERAL},
		{"unterminated to EOF", `"hello`, `"hello`, token.MALFORMED},
		{"unterminated to newline", "\"hello\nworld", "\"hello\n", token.MALFORMED},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.input)
			tok, ok := l.NextToken()
			if !ok {
				t.Fatalf("unexpected end of stream")
			}
			if tok.Type != tt.expectedType {
				t.Fatalf("type wrong. expected=%s, got=%s", tt.expectedType, tok.Type)
			}
			if tok.Text != tt.expectedText {
				t.Fatalf("text wrong. expected=%q, got=%q", tt.expectedText, tok.Text)
			}
		})
	}
}

func TestExponentNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"3E2", "3E2"},
		{"3e2", "3e2"},
		{"3E+2", "3E+2"},
		{"3E", "3"},   // E not followed by digit or +digit terminates the number
		{"3E+", "3"},  // trailing + with no digit after it
		{"3E+a", "3"}, // + followed by a non-digit
	}
	for _, tt := range tests {
		toks := All(tt.input)
		if len(toks) == 0 {
			t.Fatalf("%s: expected at least one token", tt.input)
		}
		if toks[0].Text != tt.want {
			t.Fatalf("%s: got %q, want %q", tt.input, toks[0].Text, tt.want)
		}
		if toks[0].Type != token.NUMERIC_LITERAL {
			t.Fatalf("%s: expected NUMERIC_LITERAL, got %s", tt.input, toks[0].Type)
		}
	}
}

func TestCommentsAndWhitespace(t *testing.T) {
	input := "x = 1 # this is a comment\n  y = 2 # trailing comment with no newline"
	toks := All(input)

	var texts []string
	for _, tok := range toks {
		texts = append(texts, tok.Text)
	}
	want := []string{"x", "=", "1", "y", "=", "2"}
	if len(texts) != len(want) {
		t.Fatalf("got %v, want %v", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Fatalf("got %v, want %v", texts, want)
		}
	}
}

func TestOperatorAndPunctuationForms(t *testing.T) {
	tests := []struct {
		text string
		typ  token.Type
	}{
		{"&&", token.OPERATOR},
		{"&", token.PUNCTUATION},
		{"||", token.OPERATOR},
		{"|", token.PUNCTUATION},
		{"==", token.OPERATOR},
		{"=", token.PUNCTUATION},
		{"!=", token.OPERATOR},
		{"!", token.OPERATOR},
		{"<=", token.OPERATOR},
		{"<", token.OPERATOR},
		{">=", token.OPERATOR},
		{">", token.OPERATOR},
	}
	for _, tt := range tests {
		toks := All(tt.text)
		if len(toks) != 1 {
			t.Fatalf("%s: got %d tokens, want 1", tt.text, len(toks))
		}
		if toks[0].Type != tt.typ || toks[0].Text != tt.text {
			t.Fatalf("%s: got %q/%s, want %q/%s", tt.text, toks[0].Text, toks[0].Type, tt.text, tt.typ)
		}
	}
}

func TestIllegalByte(t *testing.T) {
	toks := All("x = @")
	last := toks[len(toks)-1]
	if last.Type != token.MALFORMED || last.Text != "@" {
		t.Fatalf("got %q/%s, want @/MALFORMED", last.Text, last.Type)
	}
}

func TestWithTracingOption(t *testing.T) {
	var lines []string
	l := New("x = 1", WithTracing(func(format string, args ...any) {
		lines = append(lines, format)
		_ = args
	}))
	for {
		if _, ok := l.NextToken(); !ok {
			break
		}
	}
	if len(lines) != 3 {
		t.Fatalf("expected 3 traced tokens, got %d", len(lines))
	}
}

func TestTrimText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`"hello"`, "hello"},
		{`''`, ""},
		{`"a"`, "a"},
	}
	for _, tt := range tests {
		if got := TrimText(tt.in); got != tt.want {
			t.Fatalf("TrimText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
