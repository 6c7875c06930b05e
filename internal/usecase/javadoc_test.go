package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"jdoc/internal/port"
)

func TestCleanJavadoc(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"collapses blank lines", "\n\nFoo.\n\n@return bar\n\n", "Foo.\n@return bar"},
		{"trims lines", "  /**\n   * Foo.\n   */  ", "/**\n* Foo.\n*/"},
		{"whitespace only lines", "/**\n \t \n*/", "/**\n*/"},
		{"carriage returns", "/**\r\n* Foo.\r\n*/\r\n", "/**\n* Foo.\n*/"},
		{"empty", "\n\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJavadoc(tt.raw))
		})
	}
}

func TestJavadocGenerator_Prompts(t *testing.T) {
	llm := &fakeLLM{response: "\n\n/**\n * Adds two numbers.\n\n * @param a first\n */\n\n"}
	gen, err := NewJavadocGenerator(llm, nil, false, nil)
	require.NoError(t, err)

	req := port.DocRequest{
		Method:      "add",
		Hierarchy:   "public class Calculator",
		Code:        "public int add(int a, int b) {\n    return a + b;\n}",
		Description: "adds two numbers",
	}

	got, err := gen.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "/**\n* Adds two numbers.\n* @param a first\n*/", got)

	require.Len(t, llm.calls, 1)
	call := llm.calls[0]
	assert.Equal(t, gen.SystemPrompt(), call.system)
	assert.True(t, strings.HasPrefix(gen.SystemPrompt(), "You are a Java documentation assistant"))
	assert.Contains(t, call.system, "You are a Java documentation assistant")
	assert.Contains(t, call.system, "<b>Returns:</b>")
	assert.Contains(t, call.system, "Do not specify if it returns a Void type.")
	assert.Contains(t, call.user, "The method is situated in: `public class Calculator` performs the following: adds two numbers")
	assert.Contains(t, call.user, "Method:\n```\npublic int add(int a, int b) {\n    return a + b;\n}\n```")
	assert.True(t, strings.HasSuffix(call.user, "JavaDoc:"))
}

func TestJavadocGenerator_TemplateDoesNotEscape(t *testing.T) {
	gen, err := NewJavadocGenerator(&fakeLLM{}, nil, false, nil)
	require.NoError(t, err)

	prompt, err := gen.UserPrompt(port.DocRequest{Code: "List<String> f() { return a && b; }"})
	require.NoError(t, err)
	assert.Contains(t, prompt, "List<String> f() { return a && b; }")
}

func TestJavadocGenerator_Failure(t *testing.T) {
	cause := errors.New("connection refused")
	gen, err := NewJavadocGenerator(&fakeLLM{err: cause}, nil, false, nil)
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), port.DocRequest{Method: "run"})
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}

func TestJavadocGenerator_EmptyResponse(t *testing.T) {
	gen, err := NewJavadocGenerator(&fakeLLM{response: "\n  \n"}, nil, false, nil)
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), port.DocRequest{Method: "run"})
	assert.ErrorIs(t, err, ErrEmptyJavadoc)
}

func TestJavadocGenerator_RecordsAndReuses(t *testing.T) {
	llm := &fakeLLM{response: "/** Runs. */"}
	history := newMemHistory()
	gen, err := NewJavadocGenerator(llm, history, true, nil)
	require.NoError(t, err)

	req := port.DocRequest{File: "A.java", Method: "run", Hierarchy: "class A", Code: "void run() {}", Description: "runs"}

	first, err := gen.Generate(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, history.recorded, 1)

	entry := history.recorded[0]
	assert.Equal(t, "A.java", entry.File)
	assert.Equal(t, "run", entry.Method)
	assert.Equal(t, "fake-model", entry.Model)
	assert.Equal(t, CacheKey("fake-model", req), entry.Key)
	assert.NotEmpty(t, entry.ID)

	second, err := gen.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, llm.calls, 1, "identical request should be served from history")

	req.Description = "runs twice"
	_, err = gen.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, llm.calls, 2)
}

func TestJavadocGenerator_RecordWithoutReuse(t *testing.T) {
	llm := &fakeLLM{response: "/** Runs. */"}
	history := newMemHistory()
	gen, err := NewJavadocGenerator(llm, history, false, nil)
	require.NoError(t, err)

	req := port.DocRequest{Method: "run", Code: "void run() {}"}
	for i := 0; i < 2; i++ {
		_, err := gen.Generate(context.Background(), req)
		require.NoError(t, err)
	}
	assert.Len(t, llm.calls, 2)
	assert.Len(t, history.recorded, 2)
}

func TestCacheKey(t *testing.T) {
	a := port.DocRequest{Hierarchy: "class A", Code: "x", Description: "y"}
	b := port.DocRequest{Hierarchy: "class A", Code: "xy", Description: ""}

	assert.Equal(t, CacheKey("m", a), CacheKey("m", a))
	assert.NotEqual(t, CacheKey("m", a), CacheKey("m", b))
	assert.NotEqual(t, CacheKey("m", a), CacheKey("other", a))
	assert.Len(t, CacheKey("m", a), 32)
}
