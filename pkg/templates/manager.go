package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"go.uber.org/zap"

	"github.com/selivandex/kdp-autostudio/pkg/logger"
)

// Renderer interface for template rendering (for dependency injection)
type Renderer interface {
	ExecuteTemplate(name string, data any) (string, error)
	TemplateExists(name string) bool
}

// Manager manages templates loaded from a filesystem
type Manager struct {
	templates *template.Template
}

// GetDefaultFuncMap returns common template helper functions
func GetDefaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"printf": fmt.Sprintf,
		"add": func(a, b int) int {
			return a + b
		},
		"trim": strings.TrimSpace,
		"money": func(v float64) string {
			return fmt.Sprintf("$%.2f", v)
		},
		"stars": func(v float64) string {
			return fmt.Sprintf("%.1f", v)
		},
		"score": func(v float64) string {
			return fmt.Sprintf("%.3f", v)
		},
	}
}

// NewManager loads every *.tmpl file from fsys, including one and two levels of subdirectories.
// Templates are addressed by base name, so names must be unique across directories.
func NewManager(fsys fs.FS) (*Manager, error) {
	tmpl := template.New("root").Funcs(GetDefaultFuncMap())

	patterns := []string{"*.tmpl", "*/*.tmpl", "*/*/*.tmpl"}
	for _, pattern := range patterns {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid template pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			continue
		}
		if tmpl, err = tmpl.ParseFS(fsys, pattern); err != nil {
			return nil, fmt.Errorf("failed to parse templates %s: %w", pattern, err)
		}
	}

	// "root" is never parsed, so it is not among the defined templates
	templateCount := len(tmpl.Templates())
	if templateCount == 0 {
		return nil, fmt.Errorf("no templates found")
	}

	logger.Debug("templates loaded", zap.Int("count", templateCount))

	return &Manager{templates: tmpl}, nil
}

// NewManagerWithValidation creates manager and validates required templates exist
func NewManagerWithValidation(fsys fs.FS, requiredTemplates []string) (*Manager, error) {
	manager, err := NewManager(fsys)
	if err != nil {
		return nil, err
	}

	for _, name := range requiredTemplates {
		if !manager.TemplateExists(name) {
			return nil, fmt.Errorf("required template not found: %s", name)
		}
	}

	return manager, nil
}

// ExecuteTemplate renders template with data
func (m *Manager) ExecuteTemplate(name string, data any) (string, error) {
	tmpl := m.templates.Lookup(name)
	if tmpl == nil {
		return "", fmt.Errorf("template %s not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}

// TemplateExists checks if template exists
func (m *Manager) TemplateExists(name string) bool {
	return m.templates.Lookup(name) != nil
}
