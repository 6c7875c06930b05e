package usecase

import (
	"context"
	"fmt"

	"jdoc/internal/domain"
	"jdoc/internal/port"
)

type llmCall struct {
	system string
	user   string
}

type fakeLLM struct {
	response string
	err      error
	calls    []llmCall
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string) (string, error) {
	return f.GenerateWithSystem(ctx, "", prompt)
}

func (f *fakeLLM) GenerateWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.calls = append(f.calls, llmCall{system: systemPrompt, user: userPrompt})
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeLLM) ModelName() string {
	return "fake-model"
}

type fakeUI struct {
	answer    string
	err       error
	described []port.DescribeRequest
	inserted  []string
	failed    []string
}

func (f *fakeUI) Describe(ctx context.Context, req port.DescribeRequest) (string, error) {
	f.described = append(f.described, req)
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func (f *fakeUI) Inserted(name, comment string) {
	f.inserted = append(f.inserted, name)
}

func (f *fakeUI) Failed(name string, err error) {
	f.failed = append(f.failed, name)
}

// fakeGenerator returns comment for every method except those listed in fail.
type fakeGenerator struct {
	comment  string
	fail     map[string]bool
	requests []port.DocRequest
}

func (f *fakeGenerator) Generate(ctx context.Context, req port.DocRequest) (string, error) {
	f.requests = append(f.requests, req)
	if f.fail[req.Method] {
		return "", fmt.Errorf("remote call failed for %s", req.Method)
	}
	return f.comment, nil
}

// fakeParser returns a fixed method list.
type fakeParser struct {
	methods []domain.Method
}

func (f *fakeParser) Parse(content []byte) ([]domain.Method, error) {
	return f.methods, nil
}

func (f *fakeParser) Language() string {
	return "java"
}

type memHistory struct {
	byKey    map[string]domain.HistoryEntry
	recorded []domain.HistoryEntry
}

func newMemHistory() *memHistory {
	return &memHistory{byKey: make(map[string]domain.HistoryEntry)}
}

func (m *memHistory) Lookup(key string) (domain.HistoryEntry, bool, error) {
	e, ok := m.byKey[key]
	return e, ok, nil
}

func (m *memHistory) Record(entry domain.HistoryEntry) error {
	m.recorded = append(m.recorded, entry)
	m.byKey[entry.Key] = entry
	return nil
}

func (m *memHistory) List(limit int) ([]domain.HistoryEntry, error) {
	return m.recorded, nil
}

func (m *memHistory) Clear() error {
	m.byKey = make(map[string]domain.HistoryEntry)
	m.recorded = nil
	return nil
}

func (m *memHistory) Close() error {
	return nil
}
