package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/mapsmith/mapview/mods/logging"
)

// Config is the root of a mapview configuration file.
//
// A file holds zero or more `define` blocks whose attributes become
// variables (named <ID>_<attr>) for the expressions that follow, and a
// `config` block whose attributes and sub-blocks are bound to this
// struct by field name.
//
//	define VARS {
//	    LOG_DIR = env("MAPVIEW_LOG_DIR", "./logs")
//	}
//
//	config {
//	    Logging {
//	        Filename     = "${VARS_LOG_DIR}/mapview.log"
//	        DefaultLevel = "INFO"
//	    }
//	    Viewport {
//	        Width  = 800
//	        Height = 600
//	        Zoom   = 4
//	        Center = [126.978, 37.5665]
//	    }
//	}
type Config struct {
	Logging  logging.Config
	Viewport ViewportConfig
	Output   OutputConfig
}

type ViewportConfig struct {
	Width    float64
	Height   float64
	Zoom     float64
	Scale    float64
	Rotation float64
	Center   []float64
}

type OutputConfig struct {
	Format    string
	Precision int
	Heading   bool
	Rownum    bool
	BoxStyle  string
}

func Default() *Config {
	return &Config{
		Logging: logging.DefaultConfig(),
		Viewport: ViewportConfig{
			Width:  800,
			Height: 600,
			Zoom:   1,
			Center: []float64{0, 0},
		},
		Output: OutputConfig{
			Format:    "box",
			Precision: -1,
			Heading:   true,
			BoxStyle:  "default",
		},
	}
}

// Load reads an HCL config file. Fields the file does not mention keep
// their Default() values.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(content, path)
}

// Parse evaluates HCL content. The filename is for diagnostics only.
func Parse(content []byte, filename string) (*Config, error) {
	file, diag := hclsyntax.ParseConfig(content, filename, hcl.Pos{Line: 1, Column: 1})
	if diag.HasErrors() {
		return nil, errors.New(diag.Error())
	}

	evalCtx := &hcl.EvalContext{
		Functions: DefaultFunctions,
		Variables: make(map[string]cty.Value),
	}

	schema := &hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "define", LabelNames: []string{"id"}},
			{Type: "config", LabelNames: []string{}},
		},
	}
	body, diag := file.Body.Content(schema)
	if diag.HasErrors() {
		return nil, errors.New(diag.Error())
	}

	// define blocks register variables before the config block evaluates
	for _, block := range body.Blocks {
		if block.Type != "define" {
			continue
		}
		id := block.Labels[0]
		sb := block.Body.(*hclsyntax.Body)
		for _, attr := range sb.Attributes {
			name := fmt.Sprintf("%s_%s", id, attr.Name)
			value, diag := attr.Expr.Value(evalCtx)
			if diag.HasErrors() {
				return nil, errors.New(diag.Error())
			}
			evalCtx.Variables[name] = value
		}
	}

	conf := Default()
	for _, block := range body.Blocks {
		if block.Type != "config" {
			continue
		}
		obj, err := ObjectValFromBody(block.Body.(*hclsyntax.Body), evalCtx)
		if err != nil {
			return nil, err
		}
		if err := EvalObject("config", conf, obj); err != nil {
			return nil, err
		}
	}
	return conf, nil
}
