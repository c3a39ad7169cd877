package beam

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gosbeam/internal/load"
	"github.com/alexiusacademia/gosbeam/internal/nscp"
	"github.com/alexiusacademia/gosbeam/internal/statics"
)

// Format is the encoding of a beam definition file
type Format int

const (
	JSON Format = iota
	YAML
)

// fileValidate checks the shape of a decoded beam file before conversion.
// Field names in its messages follow the file keys.
var fileValidate *validator.Validate

func init() {
	fileValidate = validator.New(validator.WithRequiredStructEnabled())
	fileValidate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// File is the on-disk representation of a beam
type File struct {
	Name        string        `json:"name,omitempty" yaml:"name,omitempty"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Units       *FileUnits    `json:"units,omitempty" yaml:"units,omitempty"`
	Length      float64       `json:"length" yaml:"length" validate:"required,gt=0"`
	Supports    []FileSupport `json:"supports" yaml:"supports" validate:"dive"`
	Loads       []FileLoad    `json:"loads" yaml:"loads" validate:"dive"`
}

// FileUnits names the units used in the file
type FileUnits struct {
	Force  string `json:"force,omitempty" yaml:"force,omitempty"`
	Length string `json:"length,omitempty" yaml:"length,omitempty"`
}

// FileSupport is one support entry
type FileSupport struct {
	Type     string   `json:"type,omitempty" yaml:"type,omitempty"`
	Position *float64 `json:"position" yaml:"position" validate:"required"`
}

// FileLoad is one load entry. Which numeric fields are required depends on
// Type; unused fields are ignored.
type FileLoad struct {
	Type            string   `json:"type" yaml:"type" validate:"required"`
	Case            string   `json:"case,omitempty" yaml:"case,omitempty"`
	Position        *float64 `json:"position,omitempty" yaml:"position,omitempty"`
	Magnitude       *float64 `json:"magnitude,omitempty" yaml:"magnitude,omitempty"`
	Start           *float64 `json:"start,omitempty" yaml:"start,omitempty"`
	End             *float64 `json:"end,omitempty" yaml:"end,omitempty"`
	StartMagnitude  *float64 `json:"startMagnitude,omitempty" yaml:"startMagnitude,omitempty"`
	EndMagnitude    *float64 `json:"endMagnitude,omitempty" yaml:"endMagnitude,omitempty"`
	Direction       string   `json:"direction,omitempty" yaml:"direction,omitempty"`
	MomentDirection string   `json:"momentDirection,omitempty" yaml:"momentDirection,omitempty"`
}

// FormatOf picks the format from a file extension. Anything other than
// .yaml or .yml is read as JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// LoadFromFile loads a beam definition from a JSON or YAML file
func LoadFromFile(path string) (*Beam, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	b, err := Parse(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("beam loaded",
		"path", path,
		"length", b.Length,
		"supports", len(b.Supports),
		"loads", len(b.Loads))
	return b, nil
}

// Parse decodes and validates a beam definition
func Parse(data []byte, format Format) (*Beam, error) {
	var f File
	switch format {
	case YAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, err
		}
	}
	return f.Beam()
}

// Beam validates the file and converts it to the domain model
func (f *File) Beam() (*Beam, error) {
	if err := fileValidate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return nil, &load.ValidationError{
				Field: strings.TrimPrefix(fe.Namespace(), "File."),
				Msg:   fmt.Sprintf("failed %q check", fe.Tag()),
			}
		}
		return nil, err
	}

	b := &Beam{
		Name:        f.Name,
		Description: f.Description,
		Units:       DefaultUnits,
		Length:      f.Length,
	}
	if f.Units != nil {
		if f.Units.Force != "" {
			b.Units.Force = f.Units.Force
		}
		if f.Units.Length != "" {
			b.Units.Length = f.Units.Length
		}
	}

	for i, s := range f.Supports {
		kind, err := statics.ParseSupportKind(s.Type)
		if err != nil {
			return nil, fmt.Errorf("support %d: %w", i+1, err)
		}
		b.Supports = append(b.Supports, statics.Support{Kind: kind, Position: *s.Position})
	}

	for i, fl := range f.Loads {
		e, err := fl.entry()
		if err != nil {
			return nil, fmt.Errorf("load %d: %w", i+1, err)
		}
		b.Loads = append(b.Loads, e)
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (fl FileLoad) entry() (Entry, error) {
	c, err := nscp.ParseLoadCase(fl.Case)
	if err != nil {
		return Entry{}, &load.ValidationError{Field: "case", Msg: err.Error()}
	}
	kind, err := load.ParseKind(fl.Type)
	if err != nil {
		return Entry{}, err
	}

	var l load.Load
	switch kind {
	case load.KindPoint:
		dir, err := load.ParseDirection(fl.Direction)
		if err != nil {
			return Entry{}, err
		}
		pos, mag, err := need2("position", fl.Position, "magnitude", fl.Magnitude)
		if err != nil {
			return Entry{}, err
		}
		l = load.Point{Position: pos, Magnitude: mag, Direction: dir}

	case load.KindMoment:
		dir, err := load.ParseMomentDirection(fl.MomentDirection)
		if err != nil {
			return Entry{}, err
		}
		pos, mag, err := need2("position", fl.Position, "magnitude", fl.Magnitude)
		if err != nil {
			return Entry{}, err
		}
		l = load.Moment{Position: pos, Magnitude: mag, Direction: dir}

	case load.KindUDL:
		dir, err := load.ParseDirection(fl.Direction)
		if err != nil {
			return Entry{}, err
		}
		start, end, err := need2("start", fl.Start, "end", fl.End)
		if err != nil {
			return Entry{}, err
		}
		mag, err := need("magnitude", fl.Magnitude)
		if err != nil {
			return Entry{}, err
		}
		l = load.UDL{Start: start, End: end, Magnitude: mag, Direction: dir}

	case load.KindTrapezoidal:
		dir, err := load.ParseDirection(fl.Direction)
		if err != nil {
			return Entry{}, err
		}
		start, end, err := need2("start", fl.Start, "end", fl.End)
		if err != nil {
			return Entry{}, err
		}
		w0, w1, err := need2("startMagnitude", fl.StartMagnitude, "endMagnitude", fl.EndMagnitude)
		if err != nil {
			return Entry{}, err
		}
		l = load.Trapezoidal{Start: start, End: end, StartMagnitude: w0, EndMagnitude: w1, Direction: dir}
	}

	return Entry{Case: c, Load: l}, nil
}

func need(field string, v *float64) (float64, error) {
	if v == nil {
		return 0, &load.ValidationError{Field: field, Msg: "is required"}
	}
	return *v, nil
}

func need2(f1 string, v1 *float64, f2 string, v2 *float64) (float64, float64, error) {
	a, err := need(f1, v1)
	if err != nil {
		return 0, 0, err
	}
	b, err := need(f2, v2)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
