package notification

import (
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/sngm3741/resort-crew/api/internal/recruiting/domain"
)

const (
	TemplateApplicationAccepted = "application_accepted"
	TemplateApplicationRejected = "application_rejected"
	TemplateSystem              = "system"
)

// TemplateStore compiles and renders named templates for outbound messages.
type TemplateStore struct {
	mu        sync.RWMutex
	templates map[string]*template.Template
}

// NewTemplateStore seeds the store with the default templates.
func NewTemplateStore() *TemplateStore {
	store := &TemplateStore{templates: make(map[string]*template.Template)}
	_ = store.Register(TemplateApplicationAccepted, "[리조트크루] {{.Title}}\n{{.Message}}\n\n앱에서 자세한 내용을 확인해주세요.")
	_ = store.Register(TemplateApplicationRejected, "[리조트크루] {{.Title}}\n{{.Message}}\n\n다른 공고도 확인해보세요.")
	_ = store.Register(TemplateSystem, "[리조트크루] {{.Title}}\n{{.Message}}")
	return store
}

// Register adds or replaces a template definition.
func (s *TemplateStore) Register(name, body string) error {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(body)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", name, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[name] = tmpl
	return nil
}

// Render executes the template with the provided data.
func (s *TemplateStore) Render(name string, data any) (string, error) {
	s.mu.RLock()
	tmpl, ok := s.templates[name]
	s.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("template %s not found", name)
	}
	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return out.String(), nil
}

// RenderNotification picks the template for n and renders it.
func (s *TemplateStore) RenderNotification(n domain.Notification) (string, error) {
	return s.Render(TemplateName(n), n)
}

// TemplateName maps a notification to its template.
func TemplateName(n domain.Notification) string {
	if n.Type == domain.NotificationApplicationStatus {
		switch n.Status {
		case domain.StatusAccepted:
			return TemplateApplicationAccepted
		case domain.StatusRejected:
			return TemplateApplicationRejected
		}
	}
	return TemplateSystem
}
