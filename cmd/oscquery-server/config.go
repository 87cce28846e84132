package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oscquery-protocol/oscquery-go/pkg/model"
	"github.com/oscquery-protocol/oscquery-go/pkg/osc"
	"github.com/oscquery-protocol/oscquery-go/pkg/unit"
)

// Manifest is the YAML description of a published tree.
type Manifest struct {
	Name       string     `yaml:"name"`
	OSCIP      string     `yaml:"osc_ip"`
	OSCPort    uint16     `yaml:"osc_port"`
	Extensions []string   `yaml:"extensions"`
	Endpoints  []Endpoint `yaml:"endpoints"`
}

// Endpoint is one published OSC parameter.
type Endpoint struct {
	Path        string   `yaml:"path"`
	Type        string   `yaml:"type"`
	Value       any      `yaml:"value"`
	Access      string   `yaml:"access"`
	Description string   `yaml:"description"`
	Unit        string   `yaml:"unit"`
	Min         *float32 `yaml:"min"`
	Max         *float32 `yaml:"max"`
}

// LoadManifest reads and parses a YAML manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}

// BuildTree constructs the address tree described by the manifest.
func (m *Manifest) BuildTree() (*model.Tree, error) {
	info := model.NewHostInfo(m.Name, m.OSCIP, m.OSCPort)
	for _, name := range m.Extensions {
		if err := enableExtension(&info.Extensions, name); err != nil {
			return nil, err
		}
	}

	tree := model.New(info)
	for _, e := range m.Endpoints {
		param, err := e.parameter()
		if err != nil {
			return nil, fmt.Errorf("endpoint %s: %w", e.Path, err)
		}
		if err := tree.Insert(param); err != nil {
			return nil, fmt.Errorf("endpoint %s: %w", e.Path, err)
		}
	}
	return tree, nil
}

func (e Endpoint) parameter() (model.Parameter, error) {
	value, err := endpointValue(e.Type, e.Value)
	if err != nil {
		return model.Parameter{}, err
	}

	access, err := parseAccess(e.Access)
	if err != nil {
		return model.Parameter{}, err
	}

	param := model.Parameter{
		Path:        e.Path,
		Value:       value,
		Description: e.Description,
		Access:      access,
	}

	if e.Unit != "" {
		u, err := unit.Parse(e.Unit)
		if err != nil {
			return model.Parameter{}, err
		}
		param.Unit = u
	}

	if e.Min != nil || e.Max != nil {
		if e.Min == nil || e.Max == nil {
			return model.Parameter{}, fmt.Errorf("min and max must both be set")
		}
		param.Range = &model.Range{Min: *e.Min, Max: *e.Max}
	}
	return param, nil
}

// endpointValue converts a YAML scalar into the typed OSC value the
// endpoint's type tag calls for.
func endpointValue(typeTag string, raw any) (osc.Value, error) {
	switch typeTag {
	case "i":
		n, ok := yamlInt(raw)
		if !ok {
			return nil, fmt.Errorf("type i needs an integer value, got %T", raw)
		}
		return osc.Int(n), nil
	case "l":
		n, ok := yamlInt(raw)
		if !ok {
			return nil, fmt.Errorf("type l needs an integer value, got %T", raw)
		}
		return osc.Long(n), nil
	case "f":
		f, ok := yamlFloat(raw)
		if !ok {
			return nil, fmt.Errorf("type f needs a numeric value, got %T", raw)
		}
		return osc.Float(f), nil
	case "d":
		f, ok := yamlFloat(raw)
		if !ok {
			return nil, fmt.Errorf("type d needs a numeric value, got %T", raw)
		}
		return osc.Double(f), nil
	case "s":
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("type s needs a string value, got %T", raw)
		}
		return osc.String(s), nil
	case "T":
		b, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("type T needs a boolean value, got %T", raw)
		}
		return osc.Bool(b), nil
	default:
		return nil, fmt.Errorf("unsupported type tag %q", typeTag)
	}
}

func yamlInt(raw any) (int64, bool) {
	switch n := raw.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}

func yamlFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func parseAccess(s string) (*model.Access, error) {
	switch strings.ToLower(s) {
	case "", "readwrite":
		return model.AccessReadWrite.Ptr(), nil
	case "none":
		return model.AccessNone.Ptr(), nil
	case "readonly":
		return model.AccessReadOnly.Ptr(), nil
	case "writeonly":
		return model.AccessWriteOnly.Ptr(), nil
	default:
		return nil, fmt.Errorf("unknown access mode %q", s)
	}
}

func enableExtension(ext *model.Extensions, name string) error {
	switch strings.ToUpper(name) {
	case "ACCESS":
		ext.Access = true
	case "VALUE":
		ext.Value = true
	case "RANGE":
		ext.Range = true
	case "DESCRIPTION":
		ext.Description = true
	case "TAGS":
		ext.Tags = true
	case "EXTENDED_TYPE":
		ext.ExtendedType = true
	case "UNIT":
		ext.Unit = true
	case "CRITICAL":
		ext.Critical = true
	case "CLIPMODE":
		ext.Clipmode = true
	case "LISTEN":
		ext.Listen = true
	case "PATH_CHANGED":
		ext.PathChanged = true
	default:
		return fmt.Errorf("unknown extension %q", name)
	}
	return nil
}

// demoTree builds the tree served when no manifest is given.
func demoTree(name, oscIP string, oscPort uint16) *model.Tree {
	info := model.NewHostInfo(name, oscIP, oscPort)
	info.Extensions.Access = true
	info.Extensions.Value = true
	info.Extensions.Range = true
	info.Extensions.Description = true
	info.Extensions.Unit = true

	tree := model.New(info)
	// Demo endpoints cannot conflict, so the errors are impossible.
	_ = tree.Insert(model.Parameter{
		Path:        "/endpoint1",
		Value:       osc.Float(0),
		Access:      model.AccessReadWrite.Ptr(),
		Description: "This is endpoint1",
		Unit:        unit.Distance(unit.Centimeter),
		Range:       &model.Range{Min: 0, Max: 100},
	})
	_ = tree.Insert(model.Parameter{
		Path:        "/endpoint2",
		Value:       osc.Int(0),
		Access:      model.AccessReadOnly.Ptr(),
		Description: "This is endpoint2",
	})
	_ = tree.Insert(model.Parameter{
		Path:        "/synth/volume",
		Value:       osc.Float(0.5),
		Access:      model.AccessReadWrite.Ptr(),
		Description: "Master volume",
		Unit:        unit.Gain(unit.Linear),
		Range:       &model.Range{Min: 0, Max: 1},
	})
	_ = tree.Insert(model.Parameter{
		Path:        "/synth/pan",
		Value:       osc.Float(0),
		Access:      model.AccessReadWrite.Ptr(),
		Description: "Stereo pan",
		Range:       &model.Range{Min: -1, Max: 1},
	})
	return tree
}
