package main

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// localMax is the largest magnitude of a domain-local code.
const localMax = 999

// RawTable is one status domain's table loaded from YAML.
type RawTable struct {
	Domain      string       `yaml:"domain"`
	File        string       `yaml:"file"`
	TableVar    string       `yaml:"tableVar"`
	BuildTag    string       `yaml:"buildTag"`
	Modulated   bool         `yaml:"modulated"`
	Constants   bool         `yaml:"constants"`
	ConstPrefix string       `yaml:"constPrefix"`
	Codes       []RawCodeDef `yaml:"codes"`
}

// RawCodeDef is a single status code.
type RawCodeDef struct {
	Name        string `yaml:"name"`
	Const       string `yaml:"const"`
	Value       int    `yaml:"value"`
	Description string `yaml:"description"`
	Doc         string `yaml:"doc"`
	Deprecated  string `yaml:"deprecated"`
}

var (
	identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	fileRe  = regexp.MustCompile(`^[a-z0-9_]+\.go$`)
)

// LoadTable reads and validates a table YAML file.
func LoadTable(path string) (*RawTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseTable(data)
}

// ParseTable decodes and validates a table.
func ParseTable(data []byte) (*RawTable, error) {
	var t RawTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks the table for the mistakes that would otherwise only
// show up as a broken registry at run time.
func (t *RawTable) Validate() error {
	var errs []error
	if t.Domain == "" {
		errs = append(errs, errors.New("domain is required"))
	}
	if !fileRe.MatchString(t.File) {
		errs = append(errs, fmt.Errorf("file %q must be a lower-case .go file name", t.File))
	}
	if !identRe.MatchString(t.TableVar) {
		errs = append(errs, fmt.Errorf("tableVar %q is not an identifier", t.TableVar))
	}
	if len(t.Codes) == 0 {
		errs = append(errs, errors.New("no codes"))
	}

	names := make(map[string]bool, len(t.Codes))
	values := make(map[int]string, len(t.Codes))
	consts := make(map[string]bool, len(t.Codes))
	for i, c := range t.Codes {
		where := fmt.Sprintf("codes[%d] %s", i, c.Name)
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("codes[%d]: name is required", i))
		}
		if names[c.Name] {
			errs = append(errs, fmt.Errorf("%s: duplicate name", where))
		}
		names[c.Name] = true

		if c.Value == 0 {
			errs = append(errs, fmt.Errorf("%s: zero is reserved for OK", where))
		}
		if prev, ok := values[c.Value]; ok {
			errs = append(errs, fmt.Errorf("%s: value %d already used by %s", where, c.Value, prev))
		}
		values[c.Value] = c.Name

		abs := c.Value
		if abs < 0 {
			abs = -abs
		}
		if t.Modulated && abs <= localMax {
			errs = append(errs, fmt.Errorf("%s: modulated value %d is in the domain-local range", where, c.Value))
		}
		if !t.Modulated && abs > localMax {
			errs = append(errs, fmt.Errorf("%s: domain-local value %d exceeds %d", where, c.Value, localMax))
		}

		if t.Constants {
			if !identRe.MatchString(c.Const) {
				errs = append(errs, fmt.Errorf("%s: const %q is not an identifier", where, c.Const))
			}
			if consts[c.Const] {
				errs = append(errs, fmt.Errorf("%s: duplicate const %s", where, c.Const))
			}
			consts[c.Const] = true
		}
	}

	for _, c := range t.Codes {
		if c.Deprecated != "" && !names[c.Deprecated] {
			errs = append(errs, fmt.Errorf("%s: deprecated in favor of unknown code %s", c.Name, c.Deprecated))
		}
	}
	return errors.Join(errs...)
}
