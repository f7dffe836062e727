package templates

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/selivandex/kdp-autostudio/assets"
)

// TestEmbeddedTemplatesLoaded verifies that all shipped templates load successfully
func TestEmbeddedTemplatesLoaded(t *testing.T) {
	manager, err := NewManagerWithValidation(assets.Templates(), assets.RequiredTemplates)
	if err != nil {
		t.Fatalf("Failed to load embedded templates: %v", err)
	}

	for _, name := range assets.RequiredTemplates {
		if !manager.TemplateExists(name) {
			t.Errorf("Required template not found: %s", name)
		}
	}
}

func TestNewManager_NestedDirectories(t *testing.T) {
	fsys := fstest.MapFS{
		"root.tmpl":         {Data: []byte("root {{.}}")},
		"a/child.tmpl":      {Data: []byte("child {{money .}}")},
		"a/b/grandkid.tmpl": {Data: []byte("grandkid {{score .}}")},
		"a/b/ignored.txt":   {Data: []byte("not a template")},
	}

	manager, err := NewManager(fsys)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	tests := []struct {
		name string
		data any
		want string
	}{
		{"root.tmpl", "x", "root x"},
		{"child.tmpl", 12.5, "child $12.50"},
		{"grandkid.tmpl", 0.12345, "grandkid 0.123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := manager.ExecuteTemplate(tt.name, tt.data)
			if err != nil {
				t.Fatalf("ExecuteTemplate failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	if manager.TemplateExists("ignored.txt") {
		t.Error("non-template files should not be loaded")
	}
}

func TestNewManager_Empty(t *testing.T) {
	if _, err := NewManager(fstest.MapFS{}); err == nil {
		t.Error("expected error when no templates exist")
	}
}

func TestNewManagerWithValidation_MissingRequired(t *testing.T) {
	fsys := fstest.MapFS{"only.tmpl": {Data: []byte("x")}}

	_, err := NewManagerWithValidation(fsys, []string{"only.tmpl", "missing.tmpl"})
	if err == nil || !strings.Contains(err.Error(), "missing.tmpl") {
		t.Errorf("expected missing template error, got %v", err)
	}
}

func TestExecuteTemplate_Unknown(t *testing.T) {
	manager, err := NewManager(fstest.MapFS{"a.tmpl": {Data: []byte("a")}})
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	if _, err := manager.ExecuteTemplate("nope.tmpl", nil); err == nil {
		t.Error("expected error for unknown template")
	}
}

func TestNewManager_SingleTemplate(t *testing.T) {
	manager, err := NewManager(fstest.MapFS{"one.tmpl": {Data: []byte("[{{trim .}}]")}})
	if err != nil {
		t.Fatalf("a single template must load: %v", err)
	}

	got, err := manager.ExecuteTemplate("one.tmpl", " kdp ")
	if err != nil || got != "[kdp]" {
		t.Errorf("ExecuteTemplate() = %q, %v", got, err)
	}
}
