package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, src string, opts Options) []Token {
	t.Helper()
	toks, err := New([]byte(src), opts).Tokenize()
	require.NoError(t, err)
	return toks
}

func TestTokenizeEmptyObject(t *testing.T) {
	toks := tokenize(t, `{}`, DefaultOptions())
	assert.Equal(t, []Token{{Kind: StartObject}, {Kind: EndObject}}, toks)
}

func TestTokenizeSimpleObject(t *testing.T) {
	toks := tokenize(t, `{a: 1, b: "two"}`, DefaultOptions())
	assert.Equal(t, []Token{
		{Kind: StartObject},
		{Kind: PropertyName, Value: "a"},
		{Kind: Number, Value: "1"},
		{Kind: PropertyName, Value: "b"},
		{Kind: String, Value: "two"},
		{Kind: EndObject},
	}, toks)
}

func TestTokenizeArray(t *testing.T) {
	toks := tokenize(t, `[1, 2, 3]`, DefaultOptions())
	assert.Equal(t, []Token{
		{Kind: StartArray},
		{Kind: Number, Value: "1"},
		{Kind: Number, Value: "2"},
		{Kind: Number, Value: "3"},
		{Kind: EndArray},
	}, toks)
}

func TestTokenizeBracelessTopLevel(t *testing.T) {
	toks := tokenize(t, `a: 1
b: 2`, DefaultOptions())
	assert.Equal(t, []Token{
		{Kind: StartObject},
		{Kind: PropertyName, Value: "a"},
		{Kind: Number, Value: "1"},
		{Kind: PropertyName, Value: "b"},
		{Kind: Number, Value: "2"},
		{Kind: EndObject},
	}, toks)
}

func TestTokenizeSinglePrimitive(t *testing.T) {
	toks := tokenize(t, `true`, DefaultOptions())
	assert.Equal(t, []Token{{Kind: TrueBool, Value: "true"}}, toks)
}

func TestTokenizeQuotelessString(t *testing.T) {
	toks := tokenize(t, `[6 ab a]`, DefaultOptions())
	assert.Equal(t, []Token{
		{Kind: StartArray},
		{Kind: String, Value: "6 ab a"},
		{Kind: EndArray},
	}, toks)
}

func TestTokenizeNestedBracelessIsError(t *testing.T) {
	_, err := New([]byte("[\na: b\n]"), DefaultOptions()).Tokenize()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStructural)
}

func TestTokenizeLineComment(t *testing.T) {
	toks := tokenize(t, "// hi\n1", DefaultOptions())
	assert.Equal(t, []Token{
		{Kind: Comment, Value: " hi"},
		{Kind: Number, Value: "1"},
	}, toks)
}

func TestTokenizeBlockComment(t *testing.T) {
	toks := tokenize(t, "/* hi */ 1", DefaultOptions())
	assert.Equal(t, []Token{
		{Kind: Comment, Value: " hi "},
		{Kind: Number, Value: "1"},
	}, toks)
}

func TestTokenizeHashComment(t *testing.T) {
	toks := tokenize(t, "# hi\n1", DefaultOptions())
	assert.Equal(t, []Token{
		{Kind: Comment, Value: " hi"},
		{Kind: Number, Value: "1"},
	}, toks)
}

func TestTokenizeNestableBlockCommentV2(t *testing.T) {
	opts := DefaultOptions()
	opts.Version = V2
	toks := tokenize(t, "/==* outer /==* inner *==/ still outer *==/ 1", opts)
	require.Len(t, toks, 2)
	assert.Equal(t, Comment, toks[0].Kind)
	assert.Equal(t, Token{Kind: Number, Value: "1"}, toks[1])
}

func TestTokenizeMultiQuotedDedent(t *testing.T) {
	src := "\"\"\"\n  line one\n  line two\n  \"\"\""
	toks := tokenize(t, src, DefaultOptions())
	require.Len(t, toks, 1)
	assert.Equal(t, "line one\nline two", toks[0].Value)
}

func TestTokenizeVerbatimStringV2(t *testing.T) {
	opts := DefaultOptions()
	opts.Version = V2
	toks := tokenize(t, `@"a\b"`, opts)
	require.Len(t, toks, 1)
	assert.Equal(t, `a\b`, toks[0].Value)
}

func TestTokenizeVerbatimRequiresString(t *testing.T) {
	opts := DefaultOptions()
	opts.Version = V2
	_, err := New([]byte("@"), opts).Tokenize()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestTokenizeIncompleteInputSynthesizesClose(t *testing.T) {
	opts := DefaultOptions()
	opts.IncompleteInputs = true
	toks := tokenize(t, `{a: 1`, opts)
	assert.Equal(t, []Token{
		{Kind: StartObject},
		{Kind: PropertyName, Value: "a"},
		{Kind: Number, Value: "1"},
		{Kind: EndObject},
	}, toks)
}

func TestTokenizeIncompleteInputFailsByDefault(t *testing.T) {
	_, err := New([]byte(`{a: 1`), DefaultOptions()).Tokenize()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStructural)
}

func TestTokenizeParseSingleElementRejectsTrailer(t *testing.T) {
	opts := DefaultOptions()
	opts.ParseSingleElement = true
	_, err := New([]byte("1\n2"), opts).Tokenize()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestFindPropertyValueBraced(t *testing.T) {
	tz := New([]byte(`{a: 1, b: [1, 2, {x: 1}], c: "three"}`), DefaultOptions())
	found, err := tz.FindPropertyValue("c")
	require.NoError(t, err)
	require.True(t, found)

	toks, err := tz.TokenizeElement()
	require.NoError(t, err)
	assert.Equal(t, []Token{{Kind: String, Value: "three"}}, toks)
}

func TestFindPropertyValueBraceless(t *testing.T) {
	tz := New([]byte("a: 1\nb: 2\nc: 3"), DefaultOptions())
	found, err := tz.FindPropertyValue("b")
	require.NoError(t, err)
	require.True(t, found)

	toks, err := tz.TokenizeElement()
	require.NoError(t, err)
	assert.Equal(t, []Token{{Kind: Number, Value: "2"}}, toks)
}

func TestFindPropertyValueSkipsNestedContainers(t *testing.T) {
	// "a" nests an object containing a property of the same name as the
	// one being searched for ("target"); FindPropertyValue must not match
	// it, only the depth-1 "target".
	tz := New([]byte(`{a: {target: 1}, target: 2}`), DefaultOptions())
	found, err := tz.FindPropertyValue("target")
	require.NoError(t, err)
	require.True(t, found)

	toks, err := tz.TokenizeElement()
	require.NoError(t, err)
	assert.Equal(t, []Token{{Kind: Number, Value: "2"}}, toks)
}

func TestFindPropertyValueNotFound(t *testing.T) {
	tz := New([]byte(`{a: 1, b: 2}`), DefaultOptions())
	found, err := tz.FindPropertyValue("missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFindPropertyValueNonObjectTopLevel(t *testing.T) {
	tz := New([]byte(`[1, 2, 3]`), DefaultOptions())
	found, err := tz.FindPropertyValue("a")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTokenizeMaxDepthExceeded(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxDepth = 2
	_, err := New([]byte(`[[[1]]]`), opts).Tokenize()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSemantic)
}
