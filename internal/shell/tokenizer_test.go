package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(tokens []Token) []string {
	var out []string
	for _, t := range tokens {
		if t.Type == TokenWord {
			out = append(out, t.Value)
		}
	}
	return out
}

func TestTokenize_PlainWords(t *testing.T) {
	tokens := Tokenize("echo hello world")
	require.Len(t, tokens, 3)
	assert.Equal(t, []string{"echo", "hello", "world"}, words(tokens))
}

func TestTokenize_SingleQuotesPreserveLiteral(t *testing.T) {
	tokens := Tokenize(`echo 'hello   world'`)
	require.Len(t, tokens, 2)
	assert.Equal(t, "hello   world", tokens[1].Value)
}

func TestTokenize_DoubleQuotesEscapeSubset(t *testing.T) {
	tokens := Tokenize(`echo "say \"hi\" and \$5"`)
	require.Len(t, tokens, 2)
	assert.Equal(t, `say "hi" and $5`, tokens[1].Value)
}

func TestTokenize_DoubleQuoteLeavesOtherBackslashesLiteral(t *testing.T) {
	tokens := Tokenize(`echo "a\nb"`)
	require.Len(t, tokens, 2)
	assert.Equal(t, `a\nb`, tokens[1].Value)
}

func TestTokenize_UnquotedEscape(t *testing.T) {
	tokens := Tokenize(`echo hello\ world`)
	require.Len(t, tokens, 2)
	assert.Equal(t, "hello world", tokens[1].Value)
}

func TestTokenize_Pipe(t *testing.T) {
	tokens := Tokenize("cat file | grep foo")
	require.Len(t, tokens, 5)
	assert.Equal(t, TokenPipe, tokens[2].Type)
}

func TestTokenize_RedirectOperators(t *testing.T) {
	cases := []struct {
		line   string
		want   TokenType
		target string
	}{
		{"ls > out.txt", TokenRedirectOut, "out.txt"},
		{"ls >> out.txt", TokenRedirectAppend, "out.txt"},
		{"ls 1> out.txt", TokenRedirectOut, "out.txt"},
		{"ls 1>> out.txt", TokenRedirectAppend, "out.txt"},
		{"ls 2> err.txt", TokenRedirectErr, "err.txt"},
		{"ls 2>> err.txt", TokenRedirectErrAppend, "err.txt"},
	}
	for _, c := range cases {
		tokens := Tokenize(c.line)
		require.Len(t, tokens, 3, c.line)
		assert.Equal(t, c.want, tokens[1].Type, c.line)
		assert.Equal(t, c.target, tokens[2].Value, "%s: wrong target", c.line)
	}
}

func TestTokenize_LeadingDigitInWordIsLiteral(t *testing.T) {
	tokens := Tokenize("echo 10 20")
	require.Len(t, tokens, 3)
	assert.Equal(t, []string{"echo", "10", "20"}, words(tokens))
}

func TestTokenize_DigitGluedToPrecedingWordIsNotAnOperator(t *testing.T) {
	// "ls1" is a complete word before '>' is ever reached; '1' here is
	// not a leading digit of a fresh token, so it stays part of the word.
	tokens := Tokenize("ls1>out")
	require.Len(t, tokens, 3)
	assert.Equal(t, "ls1", tokens[0].Value)
	assert.Equal(t, TokenRedirectOut, tokens[1].Type)
	assert.Equal(t, "out", tokens[2].Value)
}

func TestTokenize_UnterminatedQuoteFallsBackToWhitespaceSplit(t *testing.T) {
	tokens := Tokenize(`echo 'abc`)
	require.Len(t, tokens, 2)
	assert.Equal(t, TokenWord, tokens[0].Type)
	assert.Equal(t, "echo", tokens[0].Value)
	assert.Equal(t, "'abc", tokens[1].Value)
}

func TestTokenize_EmptyLine(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   "))
}
