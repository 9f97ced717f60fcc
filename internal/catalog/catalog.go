// Package catalog holds the static table of tools exposed by stocks-mcp.
// Each tool maps to exactly one GET endpoint of the stock.indianapi.in API.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
)

var (
	// ErrUnknownTool is returned when a tool name is not in the catalog.
	ErrUnknownTool = errors.New("unknown tool")
	// ErrMissingArgument is returned when a required argument is absent.
	ErrMissingArgument = errors.New("missing required argument")
)

// Param describes one argument of a tool.
type Param struct {
	// Name is the argument name seen by the caller.
	Name string
	// Query is the query string key sent upstream. Defaults to Name when empty.
	Query string

	Description string
	Required    bool

	// Default is sent when the caller omits the argument. Empty means no default,
	// in which case an omitted optional argument is left out of the request.
	Default string
}

// QueryKey returns the upstream query string key for the parameter.
func (p Param) QueryKey() string {
	if p.Query != "" {
		return p.Query
	}
	return p.Name
}

// Descriptor describes a tool.
type Descriptor struct {
	Name        string
	Path        string
	Description string
	Params      []Param
}

// Required returns the names of the required parameters, in declaration order.
func (d *Descriptor) Required() []string {
	var names []string
	for _, p := range d.Params {
		if p.Required {
			names = append(names, p.Name)
		}
	}
	return names
}

// BuildParams assembles the upstream query parameters from the caller's arguments.
// Optional arguments without a default are omitted when absent, null or empty.
// Optional arguments with a default take the caller's value when present, otherwise the default.
// Values are passed through as opaque strings; non-string values are formatted with fmt.
// The returned map is nil when the tool sends no parameters.
func (d *Descriptor) BuildParams(args map[string]any) (map[string]string, error) {
	var params map[string]string
	set := func(k, v string) {
		if params == nil {
			params = make(map[string]string, len(d.Params))
		}
		params[k] = v
	}

	for _, p := range d.Params {
		raw, present := args[p.Name]
		if present && raw == nil {
			present = false
		}

		switch {
		case p.Required:
			if !present {
				return nil, fmt.Errorf("%w '%s' for tool %s", ErrMissingArgument, p.Name, d.Name)
			}
			set(p.QueryKey(), stringify(raw))
		case p.Default != "":
			if present {
				set(p.QueryKey(), stringify(raw))
			} else {
				set(p.QueryKey(), p.Default)
			}
		default:
			if !present {
				continue
			}
			if v := stringify(raw); v != "" {
				set(p.QueryKey(), v)
			}
		}
	}
	return params, nil
}

// stringify renders an argument value for the query string.
// JSON numbers arrive as float64 and are written without an exponent, eg- 1000000 rather than 1e+06.
func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

// All returns every tool in the catalog, in declaration order.
// The returned slice is a copy; the catalog itself cannot be modified.
func All() []Descriptor {
	return slices.Clone(tools)
}

// Lookup returns the tool with the given name.
func Lookup(name string) (*Descriptor, error) {
	d, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	cp := *d
	cp.Params = slices.Clone(d.Params)
	return &cp, nil
}

var byName = func() map[string]*Descriptor {
	m := make(map[string]*Descriptor, len(tools))
	for i := range tools {
		m[tools[i].Name] = &tools[i]
	}
	return m
}()
