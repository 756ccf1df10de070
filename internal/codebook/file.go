// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package codebook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/intel/naryhuff/internal/codec"
)

// Format is a codebook serialization.
type Format int

const (
	YAML Format = iota
	JSON
	CBOR
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	case CBOR:
		return "cbor"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatOf picks the format from the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json", ".jsonc":
		return JSON, nil
	case ".cbor":
		return CBOR, nil
	}
	return 0, fmt.Errorf("codebook: unknown extension %q", filepath.Ext(path))
}

// Parse decodes and validates a codebook. JSON input may carry comments and
// trailing commas.
func Parse(data []byte, format Format) (*Codebook, error) {
	var c Codebook
	var err error
	switch format {
	case YAML:
		d := yaml.NewDecoder(bytes.NewReader(data))
		d.KnownFields(true)
		err = d.Decode(&c)
	case JSON:
		d := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		d.DisallowUnknownFields()
		err = d.Decode(&c)
	case CBOR:
		err = codec.Unmarshal(data, &c)
	default:
		err = fmt.Errorf("unsupported format %v", format)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %v codebook: %w", format, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads the codebook at path.
func Load(path string) (*Codebook, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Marshal encodes the codebook.
func (c *Codebook) Marshal(format Format) ([]byte, error) {
	switch format {
	case YAML:
		return yaml.Marshal(c)
	case JSON:
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case CBOR:
		return codec.Marshal(c)
	}
	return nil, fmt.Errorf("codebook: unsupported format %v", format)
}

// Write stores the codebook at path in the format its extension names.
func (c *Codebook) Write(path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := c.Marshal(format)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
