package template

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

const (
	KeyWelcome       = "welcome"
	KeyTicketCreated = "ticket_created"
)

//go:embed defaults.yaml
var defaultTemplates []byte

// MessageTemplate is one subject/body pair. Both are text/template sources.
type MessageTemplate struct {
	Subject string `yaml:"subject"`
	Body    string `yaml:"body"`
}

type compiled struct {
	subject *template.Template
	body    *template.Template
}

// NotificationTemplateLoader holds the notification message catalogue. Built-in
// texts are loaded first; a notifications.yaml in the configured directory
// overrides them key by key.
type NotificationTemplateLoader struct {
	mu        sync.RWMutex
	templates map[string]compiled
	path      string
	logger    logger.Interface
}

func NewNotificationTemplateLoader(path string, logger logger.Interface) *NotificationTemplateLoader {
	return &NotificationTemplateLoader{
		templates: make(map[string]compiled),
		path:      path,
		logger:    logger,
	}
}

// Load parses the built-in catalogue and then the optional override file.
func (l *NotificationTemplateLoader) Load() error {
	catalogue, err := parseCatalogue(defaultTemplates)
	if err != nil {
		return fmt.Errorf("failed to parse built-in templates: %w", err)
	}

	if l.path != "" {
		overrides, err := l.readOverrides()
		if err != nil {
			return err
		}
		for key, tmpl := range overrides {
			catalogue[key] = tmpl
		}
	}

	templates := make(map[string]compiled, len(catalogue))
	for key, tmpl := range catalogue {
		c, err := compile(key, tmpl)
		if err != nil {
			return err
		}
		templates[key] = c
	}

	l.mu.Lock()
	l.templates = templates
	l.mu.Unlock()

	l.logger.Infow("notification templates loaded", "count", len(templates))
	return nil
}

func (l *NotificationTemplateLoader) readOverrides() (map[string]MessageTemplate, error) {
	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		l.logger.Warnw("templates directory not found, using built-in templates", "path", l.path)
		return nil, nil
	}

	for _, name := range []string{"notifications.yaml", "notifications.yml"} {
		filePath := filepath.Join(l.path, name)
		content, err := os.ReadFile(filePath)
		if err != nil {
			if !os.IsNotExist(err) {
				l.logger.Warnw("failed to read template file", "file", filePath, "error", err)
			}
			continue
		}

		overrides, err := parseCatalogue(content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
		}
		l.logger.Infow("loaded notification template overrides", "file", name, "count", len(overrides))
		return overrides, nil
	}

	l.logger.Debugw("no notification template overrides found", "path", l.path)
	return nil, nil
}

func parseCatalogue(raw []byte) (map[string]MessageTemplate, error) {
	catalogue := make(map[string]MessageTemplate)
	if err := yaml.Unmarshal(raw, &catalogue); err != nil {
		return nil, err
	}
	return catalogue, nil
}

func compile(key string, tmpl MessageTemplate) (compiled, error) {
	subject, err := template.New(key + ".subject").Option("missingkey=error").Parse(tmpl.Subject)
	if err != nil {
		return compiled{}, fmt.Errorf("template %s: subject: %w", key, err)
	}
	body, err := template.New(key + ".body").Option("missingkey=error").Parse(tmpl.Body)
	if err != nil {
		return compiled{}, fmt.Errorf("template %s: body: %w", key, err)
	}
	return compiled{subject: subject, body: body}, nil
}

// Render executes the template stored under key with data.
func (l *NotificationTemplateLoader) Render(key string, data any) (subject string, body string, err error) {
	l.mu.RLock()
	c, ok := l.templates[strings.ToLower(strings.TrimSpace(key))]
	l.mu.RUnlock()
	if !ok {
		return "", "", fmt.Errorf("no notification template for %q", key)
	}

	var sb, bb strings.Builder
	if err := c.subject.Execute(&sb, data); err != nil {
		return "", "", fmt.Errorf("render %s subject: %w", key, err)
	}
	if err := c.body.Execute(&bb, data); err != nil {
		return "", "", fmt.Errorf("render %s body: %w", key, err)
	}
	return strings.TrimSpace(sb.String()), bb.String(), nil
}

// HasTemplate checks if a template is loaded under key
func (l *NotificationTemplateLoader) HasTemplate(key string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.templates[key]
	return ok
}
