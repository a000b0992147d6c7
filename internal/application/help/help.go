// Package help serves the Help & FAQ tab.
package help

import (
	"context"
	_ "embed"
	"sync"

	"skylink/internal/shared/logger"
)

//go:embed faq.md
var faqMarkdown string

// Renderer turns Markdown into sanitized HTML.
type Renderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

type FAQDTO struct {
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}

// GetFAQUseCase renders the FAQ once and serves the cached result.
type GetFAQUseCase struct {
	renderer Renderer
	logger   logger.Interface

	once sync.Once
	html string
	err  error
}

func NewGetFAQUseCase(renderer Renderer, logger logger.Interface) *GetFAQUseCase {
	return &GetFAQUseCase{renderer: renderer, logger: logger}
}

func (uc *GetFAQUseCase) Execute(_ context.Context) (*FAQDTO, error) {
	uc.once.Do(func() {
		uc.html, uc.err = uc.renderer.ToHTMLSanitized(faqMarkdown)
		if uc.err != nil {
			uc.logger.Errorw("failed to render FAQ", "error", uc.err)
		}
	})
	if uc.err != nil {
		return nil, uc.err
	}
	return &FAQDTO{Markdown: faqMarkdown, HTML: uc.html}, nil
}
