package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"strings"
	"text/template"
	"unicode"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

//go:embed ecs.tmpl
var ecsTemplate string

var ecsTmpl = template.Must(template.New("ecs").Parse(ecsTemplate))

// ecsFile is the component list the World is generated from.
type ecsFile struct {
	Package    string         `yaml:"package"`
	Components []componentDef `yaml:"components"`
}

type componentDef struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`     // defaults to Name
	Ref      bool   `yaml:"ref"`      // accessors return pointers
	Capacity string `yaml:"capacity"` // Capacities field, defaults to Entities

	Field string `yaml:"-"`
	Label string `yaml:"-"`
}

func newGenECSCmd() *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "gen-ecs",
		Short: "Generate World accessors from a component list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(in)
			if err != nil {
				return fmt.Errorf("read %s: %w", in, err)
			}
			src, err := genECS(data)
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			return writeOutput(cmd, out, src)
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "components.yaml", "component list")
	cmd.Flags().StringVarP(&out, "out", "o", "components_gen.go", `output file, "-" for stdout`)
	return cmd
}

func genECS(data []byte) ([]byte, error) {
	var f ecsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse component list: %w", err)
	}
	if !token.IsIdentifier(f.Package) {
		return nil, fmt.Errorf("package %q is not an identifier", f.Package)
	}
	if len(f.Components) == 0 {
		return nil, fmt.Errorf("no components")
	}

	seen := make(map[string]bool, len(f.Components))
	for i := range f.Components {
		c := &f.Components[i]
		if !token.IsIdentifier(c.Name) || !token.IsExported(c.Name) {
			return nil, fmt.Errorf("component %q: name must be an exported identifier", c.Name)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("component %q listed twice", c.Name)
		}
		seen[c.Name] = true

		if c.Type == "" {
			c.Type = c.Name
		}
		if c.Capacity == "" {
			c.Capacity = "Entities"
		}
		c.Field = lowerFirst(c.Name)
		c.Label = label(c.Name)
	}

	var buf bytes.Buffer
	if err := ecsTmpl.Execute(&buf, f); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return src, nil
}

func lowerFirst(s string) string {
	return strings.ToLower(s[:1]) + s[1:]
}

// label splits a CamelCase name into lowercase words: SpriteAnims -> "sprite anims".
func label(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte(' ')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
