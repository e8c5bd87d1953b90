package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/ghetzel/go-stockutil/log"
	"github.com/hasbyte1/go-funcjs/chain"
	"gopkg.in/yaml.v2"
)

// Step is one named operation with its arguments.
type Step struct {
	Name string
	Args []any
}

func (s Step) String() string {
	if len(s.Args) == 0 {
		return s.Name
	}
	return fmt.Sprintf("%s%v", s.Name, s.Args)
}

// Pipeline is an ordered list of steps plus the aliases they rely on.
type Pipeline struct {
	Aliases map[string]string
	Steps   []Step
}

// file is the document form of a pipeline file. A file may also be a bare
// list of steps.
type file struct {
	Aliases map[string]string `yaml:"aliases"`
	Steps   []any             `yaml:"steps"`
}

// Load builds the pipeline described by cfg: the steps of cfg.File, if
// any, followed by cfg.Steps.
func Load(cfg Config) (*Pipeline, error) {
	p := &Pipeline{Aliases: map[string]string{}}

	if cfg.File != "" {
		data, err := os.ReadFile(cfg.File)
		if err != nil {
			return nil, err
		}
		if p, err = ParseFile(data); err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.File, err)
		}
	}
	for alias, target := range cfg.Aliases {
		p.Aliases[alias] = target
	}

	steps, err := ParseSteps(cfg.Steps)
	if err != nil {
		return nil, err
	}
	p.Steps = append(p.Steps, steps...)

	if len(p.Steps) == 0 {
		return nil, ErrEmptyPipeline
	}
	return p, nil
}

// ParseStep parses a step expression: an operation name, optionally
// followed by ':' and a comma-separated argument list written in YAML flow
// syntax.
//
//	first
//	take:2
//	slice:1, 3
//	where:{tags: {utils: true}}
//	get:name
func ParseStep(expr string) (Step, error) {
	name, rest, hasArgs := strings.Cut(strings.TrimSpace(expr), ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return Step{}, fmt.Errorf("%w: %q has no operation name", ErrInvalidStep, expr)
	}
	step := Step{Name: name}
	if !hasArgs || strings.TrimSpace(rest) == "" {
		return step, nil
	}

	var args []any
	if err := yaml.Unmarshal([]byte("["+rest+"]"), &args); err != nil {
		return Step{}, fmt.Errorf("%w: %q: %v", ErrInvalidStep, expr, err)
	}
	step.Args = normalizeAll(args)
	return step, nil
}

// ParseSteps parses each expression with [ParseStep].
func ParseSteps(exprs []string) ([]Step, error) {
	steps := make([]Step, 0, len(exprs))
	for _, expr := range exprs {
		step, err := ParseStep(expr)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// ParseFile parses a YAML pipeline. The document is either a list of steps
// or a map with "aliases" and "steps". Each step is a bare name or a
// single-key map from the name to its arguments; a list value supplies
// several arguments, any other value exactly one.
//
//	aliases:
//	  where: filter
//	steps:
//	  - where: {js: true}
//	  - map: name
//	  - slice: [0, 2]
//	  - reverse
func ParseFile(data []byte) (*Pipeline, error) {
	var doc file
	var entries []any
	if err := yaml.Unmarshal(data, &entries); err != nil {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidStep, err)
		}
		entries = doc.Steps
	}

	p := &Pipeline{Aliases: map[string]string{}, Steps: make([]Step, 0, len(entries))}
	for alias, target := range doc.Aliases {
		p.Aliases[alias] = target
	}
	for i, entry := range entries {
		step, err := parseEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		p.Steps = append(p.Steps, step)
	}
	return p, nil
}

func parseEntry(entry any) (Step, error) {
	switch e := entry.(type) {
	case string:
		return ParseStep(e)
	case map[any]any:
		if len(e) != 1 {
			return Step{}, fmt.Errorf("%w: expected one operation per entry, got %d", ErrInvalidStep, len(e))
		}
		for k, v := range e {
			step := Step{Name: fmt.Sprint(k)}
			switch args := v.(type) {
			case nil:
			case []any:
				step.Args = normalizeAll(args)
			default:
				step.Args = []any{Normalize(args)}
			}
			return step, nil
		}
	}
	return Step{}, fmt.Errorf("%w: unsupported entry %T", ErrInvalidStep, entry)
}

// Apply records every step on c by name.
func (p *Pipeline) Apply(c *chain.Chain) *chain.Chain {
	for _, step := range p.Steps {
		c = c.Call(step.Name, step.Args...)
	}
	return c
}

// Run evaluates the steps over input. The pipeline's aliases are registered
// in a copy of reg scoped to this run; reg itself is never modified.
func (p *Pipeline) Run(reg *chain.Registry, input any) (any, error) {
	if len(p.Aliases) > 0 {
		reg = reg.Clone()
	}
	aliases := make([]string, 0, len(p.Aliases))
	for alias := range p.Aliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	for _, alias := range aliases {
		if err := reg.Alias(alias, p.Aliases[alias]); err != nil {
			return nil, fmt.Errorf("alias %q: %w", alias, err)
		}
	}

	log.Debugf("pipeline: running %d step(s): %v", len(p.Steps), p.Steps)
	return p.Apply(chain.New(reg, input)).Value()
}

// Decode parses a JSON or YAML document into plain Go values: maps become
// map[string]any and lists []any.
func Decode(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return Normalize(v), nil
}

// Encode renders v as JSON using indent (compact when empty). Map keys
// that are not strings, such as the group keys of groupBy, are written in
// their %v form.
func Encode(v any, indent string) ([]byte, error) {
	v = jsonable(reflect.ValueOf(v))
	if indent == "" {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", indent)
}

func jsonable(rv reflect.Value) any {
	if !rv.IsValid() {
		return nil
	}
	switch rv.Kind() {
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		if rv.Kind() == reflect.Interface {
			return jsonable(rv.Elem())
		}
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = jsonable(iter.Value())
		}
		return out
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = jsonable(rv.Index(i))
		}
		return out
	}
	return rv.Interface()
}

// Normalize converts the map[interface{}]interface{} values produced by
// YAML decoding into map[string]any, recursively.
func Normalize(v any) any {
	switch t := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = Normalize(val)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = Normalize(val)
		}
		return out
	case []any:
		return normalizeAll(t)
	}
	return v
}

func normalizeAll(values []any) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = Normalize(v)
	}
	return out
}
