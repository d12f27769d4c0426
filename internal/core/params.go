package core

import (
	"fmt"
	"io"
	"strconv"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Parameter describes a single tunable value exposed by a shape.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of tunables exposed by a shape.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by shapes that can describe their
// configuration.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// IntParam builds an integer parameter.
func IntParam(key, label string, value int64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

// FloatParam builds a floating-point parameter.
func FloatParam(key, label string, value float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

// Map flattens the snapshot into the key/value form accepted by factories.
func (s ParameterSnapshot) Map() map[string]string {
	out := map[string]string{}
	for _, g := range s.Groups {
		for _, p := range g.Params {
			out[p.Key] = p.Value
		}
	}
	return out
}

// WriteTo prints the snapshot as an indented listing.
func (s ParameterSnapshot) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, g := range s.Groups {
		n, err := fmt.Fprintf(w, "%s:\n", g.Name)
		total += int64(n)
		if err != nil {
			return total, err
		}
		for _, p := range g.Params {
			n, err = fmt.Fprintf(w, "  %s=%s\n", p.Key, p.Value)
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}
