package usecase

import (
	"bytes"
	"context"
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"jdoc/internal/domain"
	"jdoc/internal/port"
)

//go:embed templates/*.txt
var promptTemplates embed.FS

// ErrEmptyJavadoc is returned when the model answered with blank text only.
var ErrEmptyJavadoc = errors.New("model returned an empty comment")

// JavadocGenerator asks a language model for a JavaDoc block and records
// the results in an optional history store.
type JavadocGenerator struct {
	llm     port.LLM
	history port.HistoryStore
	reuse   bool
	system  string
	user    *template.Template
	logger  *zap.Logger
}

// PromptData is the data the user prompt template is rendered with.
type PromptData struct {
	Hierarchy   string
	Description string
	Code        string
}

// NewJavadocGenerator creates a generator. history may be nil; reuse only
// applies when it is not.
func NewJavadocGenerator(llm port.LLM, history port.HistoryStore, reuse bool, logger *zap.Logger) (*JavadocGenerator, error) {
	system, err := promptTemplates.ReadFile("templates/system_prompt.txt")
	if err != nil {
		return nil, fmt.Errorf("template not found: %w", err)
	}

	userContent, err := promptTemplates.ReadFile("templates/user_prompt.txt")
	if err != nil {
		return nil, fmt.Errorf("template not found: %w", err)
	}
	user, err := template.New("user_prompt").Parse(string(userContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &JavadocGenerator{
		llm:     llm,
		history: history,
		reuse:   reuse,
		system:  strings.TrimSpace(string(system)),
		user:    user,
		logger:  logger,
	}, nil
}

// SystemPrompt returns the fixed instructions sent with every request.
func (g *JavadocGenerator) SystemPrompt() string {
	return g.system
}

// UserPrompt renders the per-method prompt.
func (g *JavadocGenerator) UserPrompt(req port.DocRequest) (string, error) {
	var buf bytes.Buffer
	err := g.user.Execute(&buf, PromptData{
		Hierarchy:   req.Hierarchy,
		Description: req.Description,
		Code:        req.Code,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// Generate returns the cleaned comment for req.
func (g *JavadocGenerator) Generate(ctx context.Context, req port.DocRequest) (string, error) {
	key := CacheKey(g.llm.ModelName(), req)

	if g.history != nil && g.reuse {
		entry, ok, err := g.history.Lookup(key)
		if err != nil {
			g.logger.Warn("History lookup failed", zap.Error(err))
		} else if ok {
			g.logger.Debug("Reusing recorded JavaDoc", zap.String("method", req.Method), zap.String("id", entry.ID))
			return entry.Comment, nil
		}
	}

	userPrompt, err := g.UserPrompt(req)
	if err != nil {
		return "", err
	}

	start := time.Now()
	raw, err := g.llm.GenerateWithSystem(ctx, g.system, userPrompt)
	if err != nil {
		return "", fmt.Errorf("error generating JavaDoc: %w", err)
	}
	g.logger.Debug("JavaDoc generated",
		zap.String("method", req.Method),
		zap.String("model", g.llm.ModelName()),
		zap.Duration("elapsed", time.Since(start)))

	javadoc := CleanJavadoc(raw)
	if javadoc == "" {
		return "", ErrEmptyJavadoc
	}

	if g.history != nil {
		err := g.history.Record(domain.HistoryEntry{
			ID:          uuid.NewString(),
			Key:         key,
			File:        req.File,
			Method:      req.Method,
			Hierarchy:   req.Hierarchy,
			Description: req.Description,
			Comment:     javadoc,
			Model:       g.llm.ModelName(),
			CreatedAt:   time.Now(),
		})
		if err != nil {
			g.logger.Warn("Failed to record JavaDoc", zap.Error(err))
		}
	}

	return javadoc, nil
}

// CleanJavadoc trims every line and drops the empty ones.
func CleanJavadoc(raw string) string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// CacheKey identifies a generation request for reuse.
func CacheKey(model string, req port.DocRequest) string {
	h := sha256.New()
	for _, part := range []string{model, req.Hierarchy, req.Code, req.Description} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil)[:16])
}
