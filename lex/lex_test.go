package lex

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"testing"
)

func sourceToExpectFile(s string) string {
	return s[0:len(s)-5] + ".exp"
}

func lexTestCase(t *testing.T, declfile string, expectfile string) {
	src, err := os.ReadFile(declfile)
	if err != nil {
		t.Fatal(err)
	}
	ef, err := os.Open(expectfile)
	if err != nil {
		t.Fatal(err)
	}
	defer ef.Close()
	toks, err := Tokenize(string(src))
	if err != nil {
		t.Errorf("Testfile %s failed because %s", declfile, err)
		return
	}
	scanner := bufio.NewScanner(ef)
	i := 0
	for scanner.Scan() {
		expectedTokS := scanner.Text()
		if i >= len(toks) {
			t.Errorf("Test failed %s: missing token, expected %s", declfile, expectedTokS)
			return
		}
		tok := toks[i]
		tokS := fmt.Sprintf("%s:%s:%d", tok.Kind, tok.Val, tok.Pos)
		if tokS != expectedTokS {
			t.Errorf("Test failed %s: got %s expected %s ", declfile, tokS, expectedTokS)
			return
		}
		i++
	}
	if i != len(toks) {
		t.Errorf("Test failed %s - extra token %s", declfile, toks[i])
	}
}

func TestLexer(t *testing.T) {
	info, err := os.ReadDir("lextests")
	if err != nil {
		t.Fatal(err)
	}
	for i := range info {
		filename := info[i].Name()
		if !strings.HasSuffix(filename, ".decl") {
			continue
		}
		expectPath := sourceToExpectFile(filename)
		lexTestCase(t, "lextests/"+filename, "lextests/"+expectPath)
	}
}

func kinds(toks []Token) []TokenKind {
	var ret []TokenKind
	for _, t := range toks {
		ret = append(ret, t.Kind)
	}
	return ret
}

func TestTokenizeExact(t *testing.T) {
	tests := []struct {
		src  string
		want []TokenKind
	}{
		{"int", []TokenKind{INT}},
		{"unsigned long long", []TokenKind{UNSIGNED, LONG, LONG}},
		{"__cdecl", []TokenKind{CDECL}},
		{"  \t\nconst\r\n", []TokenKind{CONST}},
		{"int*const*", []TokenKind{INT, MUL, CONST, MUL}},
		{"int8_t int", []TokenKind{INT8_T, INT}},
		{"longlong", []TokenKind{IDENT}},
	}
	for _, tc := range tests {
		toks, err := Tokenize(tc.src)
		if err != nil {
			t.Fatalf("%q: %s", tc.src, err)
		}
		if got := kinds(toks); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%q: got %v expected %v", tc.src, got, tc.want)
		}
		last := toks[len(toks)-1]
		if strings.TrimSpace(tc.src[last.End():]) != "" {
			t.Errorf("%q: input left after last token at %d", tc.src, last.End())
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	toks, err := Tokenize("   ")
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 0 {
		t.Fatalf("expected no tokens, got %v", toks)
	}
}

func TestTokenizeUnknownChar(t *testing.T) {
	toks, err := Tokenize("int @")
	if err == nil {
		t.Fatal("expected an error")
	}
	if toks != nil {
		t.Fatalf("expected no tokens alongside the error, got %v", toks)
	}
	var loc ErrorLoc
	if !errors.As(err, &loc) {
		t.Fatalf("expected ErrorLoc, got %T", err)
	}
	if loc.Offset != 4 {
		t.Fatalf("expected offset 4, got %d", loc.Offset)
	}
	if loc.Preview != "@" {
		t.Fatalf("expected preview %q, got %q", "@", loc.Preview)
	}
}

func TestTokenizeErrorPreviewIsCut(t *testing.T) {
	_, err := Tokenize("int $abcdefghijklmnopqrstuvwxyz")
	if err == nil {
		t.Fatal("expected an error")
	}
	want := "\"$abcdefghijklmn...\" (at char 4): unknown token"
	if err.Error() != want {
		t.Fatalf("got %q expected %q", err.Error(), want)
	}
}

func TestRuleOrderIsTieBreak(t *testing.T) {
	first := NewTokenizer(Literal(PERIOD, "."), Literal(INT, "..."))
	tok, ok := first.ParseOne(NewCursor("..."))
	if !ok || tok.Kind != PERIOD || tok.Val != "." {
		t.Fatalf("expected the earlier rule to win, got %v", tok)
	}
	second := NewTokenizer(Literal(INT, "..."), Literal(PERIOD, "."))
	tok, ok = second.ParseOne(NewCursor("..."))
	if !ok || tok.Kind != INT || tok.Val != "..." {
		t.Fatalf("expected the longer rule to win, got %v", tok)
	}
}

func TestCaseInsensitiveRule(t *testing.T) {
	tz := NewTokenizer(Literal(VOID, "void", Keyword, CaseInsensitive), Dynamic(readIdent))
	toks, err := tz.ParseAll("VoId voids")
	if err != nil {
		t.Fatal(err)
	}
	if got := kinds(toks); !reflect.DeepEqual(got, []TokenKind{VOID, IDENT}) {
		t.Fatalf("got %v", got)
	}
	if toks[0].Val != "VoId" {
		t.Fatalf("expected source spelling to be kept, got %q", toks[0].Val)
	}
}
