package engine

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/hourglass/pkg/shape"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms hourglass Lisp source code before passing
// it to zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: curved-neck -> curved_neck
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpBulb wraps a shape.BulbStyle so it can be returned from the bulb
// builtins and consumed by `hourglass`.
type sexpBulb struct {
	style shape.BulbStyle
}

func (s *sexpBulb) SexpString(ps *zygo.PrintState) string {
	switch b := s.style.(type) {
	case shape.CircularBulb:
		return fmt.Sprintf("(circular-bulb :curvature %.2f :width-factor %.2f)", b.Curvature, b.WidthFactor)
	case shape.StraightBulb:
		return fmt.Sprintf("(straight-bulb :width-factor %.2f)", b.WidthFactor)
	}
	return "(bulb)"
}
func (s *sexpBulb) Type() *zygo.RegisteredType { return nil }

// sexpNeck wraps a shape.NeckStyle.
type sexpNeck struct {
	style shape.NeckStyle
}

func (s *sexpNeck) SexpString(ps *zygo.PrintState) string {
	switch n := s.style.(type) {
	case shape.StraightNeck:
		return fmt.Sprintf("(straight-neck :width %.1f :height %.1f)", n.Width, n.Height)
	case shape.CurvedNeck:
		return fmt.Sprintf("(curved-neck :curvature %.2f :width %.1f :height %.1f)", n.Curvature, n.Width, n.Height)
	}
	return "(neck)"
}
func (s *sexpNeck) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value — treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat32 extracts a float32 from a Sexp (SexpInt or SexpFloat).
func toFloat32(s zygo.Sexp) (float32, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float32(v.Val), nil
	case *zygo.SexpFloat:
		return float32(v.Val), nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toInt extracts an int from a Sexp.
func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

// toBulb extracts a shape.BulbStyle from a sexpBulb.
func toBulb(s zygo.Sexp) (shape.BulbStyle, error) {
	if b, ok := s.(*sexpBulb); ok {
		return b.style, nil
	}
	return nil, fmt.Errorf("expected bulb style, got %T (%s)", s, s.SexpString(nil))
}

// toNeck extracts a shape.NeckStyle from a sexpNeck.
func toNeck(s zygo.Sexp) (shape.NeckStyle, error) {
	if n, ok := s.(*sexpNeck); ok {
		return n.style, nil
	}
	return nil, fmt.Errorf("expected neck style, got %T (%s)", s, s.SexpString(nil))
}

// kwFloat32 reads an optional keyword float into dst.
func kwFloat32(pa kwArgs, name, builtin string, dst *float32) error {
	v, ok := pa.kw[name]
	if !ok {
		return nil
	}
	f, err := toFloat32(v)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", builtin, name, err)
	}
	*dst = f
	return nil
}

// kwInt reads an optional keyword integer into dst.
func kwInt(pa kwArgs, name, builtin string, dst *int) error {
	v, ok := pa.kw[name]
	if !ok {
		return nil
	}
	n, err := toInt(v)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", builtin, name, err)
	}
	*dst = n
	return nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the hourglass styling builtins into a
// zygomys environment. The builtins populate the provided Config during
// evaluation; the last `hourglass` form wins.
//
// Source code must be preprocessed with preprocessSource() before
// evaluation so that :keyword tokens are converted to recognizable
// string literals and kebab-case names match the registered ones.
func registerBuiltins(env *zygo.Zlisp, cfg *Config) {

	// -----------------------------------------------------------------------
	// (circular-bulb :curvature 1.0 :width-factor 0.75 :resolution 20)
	// -----------------------------------------------------------------------
	env.AddFunction("circular_bulb", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		b := shape.DefaultBulb().(shape.CircularBulb)

		if err := kwFloat32(pa, "curvature", "circular-bulb", &b.Curvature); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat32(pa, "width-factor", "circular-bulb", &b.WidthFactor); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwInt(pa, "resolution", "circular-bulb", &b.CurveResolution); err != nil {
			return zygo.SexpNull, err
		}

		return &sexpBulb{style: b}, nil
	})

	// -----------------------------------------------------------------------
	// (straight-bulb :width-factor 0.75)
	// -----------------------------------------------------------------------
	env.AddFunction("straight_bulb", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		b := shape.StraightBulb{WidthFactor: 0.75}

		if err := kwFloat32(pa, "width-factor", "straight-bulb", &b.WidthFactor); err != nil {
			return zygo.SexpNull, err
		}

		return &sexpBulb{style: b}, nil
	})

	// -----------------------------------------------------------------------
	// (straight-neck :width 12 :height 8)
	// -----------------------------------------------------------------------
	env.AddFunction("straight_neck", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		n := shape.StraightNeck{Width: 12, Height: 8}

		if err := kwFloat32(pa, "width", "straight-neck", &n.Width); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat32(pa, "height", "straight-neck", &n.Height); err != nil {
			return zygo.SexpNull, err
		}

		return &sexpNeck{style: n}, nil
	})

	// -----------------------------------------------------------------------
	// (curved-neck :curvature 0.2 :width 12 :height 8 :resolution 5)
	// -----------------------------------------------------------------------
	env.AddFunction("curved_neck", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		n := shape.DefaultNeck().(shape.CurvedNeck)

		if err := kwFloat32(pa, "curvature", "curved-neck", &n.Curvature); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat32(pa, "width", "curved-neck", &n.Width); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat32(pa, "height", "curved-neck", &n.Height); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwInt(pa, "resolution", "curved-neck", &n.CurveResolution); err != nil {
			return zygo.SexpNull, err
		}

		return &sexpNeck{style: n}, nil
	})

	// -----------------------------------------------------------------------
	// (hourglass :height 200 :wall-offset 4 :mound 1.0
	//            :bulb (circular-bulb ...) :neck (curved-neck ...))
	// -----------------------------------------------------------------------
	env.AddFunction("hourglass", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		if err := kwFloat32(pa, "height", "hourglass", &cfg.TotalHeight); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat32(pa, "wall-offset", "hourglass", &cfg.WallOffset); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat32(pa, "mound", "hourglass", &cfg.MoundFactor); err != nil {
			return zygo.SexpNull, err
		}
		if v, ok := pa.kw["bulb"]; ok {
			b, err := toBulb(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("hourglass: bulb: %w", err)
			}
			cfg.Bulb = b
		}
		if v, ok := pa.kw["neck"]; ok {
			n, err := toNeck(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("hourglass: neck: %w", err)
			}
			cfg.Neck = n
		}

		return zygo.SexpNull, nil
	})
}
