// Package templates resolves the scaffolding templates available for
// new prompt files. Project-local templates override user templates,
// which override the built-ins.
package templates

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/keshon/promptvc/internal/config"
	"github.com/keshon/promptvc/internal/fs"
)

// Source says where a template was loaded from.
type Source int

const (
	SourceBuiltin Source = iota
	SourceUser
	SourceProject
)

func (s Source) String() string {
	switch s {
	case SourceUser:
		return "User"
	case SourceProject:
		return "Project"
	default:
		return "Built-in"
	}
}

// Template is one named scaffolding body.
type Template struct {
	Name    string
	Content string
	Source  Source
}

const templateAzure = `---
name: structured_extractor
description: Extract structured data using Azure OpenAI
version: 0.1.0
model:
  api: chat
  configuration:
    type: azure_openai
    azure_deployment: gpt-4o
  parameters:
    temperature: 0.1
    response_format: { type: json_schema }
inputs:
  text:
    type: string
---
system:
You are a helpful AI assistant.

user:
{{text}}
`

const templateOpenAI = `---
name: simple_chat
description: Standard OpenAI Chat
version: 0.1.0
model:
  api: chat
  configuration:
    type: openai
    model: gpt-4o
  parameters:
    temperature: 0.7
inputs:
  question:
    type: string
---
system:
You are a helpful assistant.

user:
{{question}}
`

const templateBasic = `---
name: new_prompt
version: 0.1.0
description: A new prompt file
---

Write your prompt here.
`

// Builtins returns the compiled-in templates.
func Builtins() map[string]Template {
	out := map[string]Template{}
	for name, content := range map[string]string{
		"azure":        templateAzure,
		"azure_openai": templateAzure,
		"openai":       templateOpenAI,
		"basic":        templateBasic,
	} {
		out[name] = Template{Name: name, Content: content, Source: SourceBuiltin}
	}
	return out
}

// File extensions recognized as template files in template directories.
var templateExts = map[string]bool{
	".md":      true,
	".prompty": true,
	".txt":     true,
}

// Catalog returns every template visible from the given project root,
// keyed by bare name. Directories that do not exist and files that
// cannot be read are silently skipped.
func Catalog(fsys fs.FS, root string) map[string]Template {
	cat := Builtins()
	loadDir(fsys, config.UserTemplateDir(), SourceUser, cat)
	loadDir(fsys, filepath.Join(root, config.HiddenDir, config.TemplatesDir), SourceProject, cat)
	return cat
}

// Resolve looks up one template by name.
func Resolve(fsys fs.FS, root, name string) (Template, bool) {
	t, ok := Catalog(fsys, root)[name]
	return t, ok
}

func loadDir(fsys fs.FS, dir string, src Source, cat map[string]Template) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if !templateExts[ext] {
			continue
		}
		data, err := fsys.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ext)
		cat[name] = Template{Name: name, Content: string(data), Source: src}
	}
}

// DefaultFor picks the template for a file extension when none was
// requested explicitly.
func DefaultFor(ext string) string {
	switch strings.ToLower(ext) {
	case ".prompty":
		return "azure"
	case ".md", ".markdown", ".mdx":
		return "basic"
	}
	return config.DefaultTemplateName()
}

// Add registers src as a user template under the given name, keeping
// the source file's extension. It returns the destination path.
func Add(fsys fs.FS, src, name string) (string, error) {
	data, err := fsys.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("failed to read template source %q: %w", src, err)
	}

	dir := config.UserTemplateDir()
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create template dir %q: %w", dir, err)
	}

	ext := filepath.Ext(src)
	if !templateExts[ext] {
		ext = ".md"
	}
	dest := filepath.Join(dir, name+ext)
	if err := fsys.WriteFile(dest, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write template %q: %w", dest, err)
	}
	return dest, nil
}
