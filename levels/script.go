package levels

import (
	"context"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// RunLayout runs a layout script. The script sees the level extents as
// globals (left, right, bottom, width, height) and must leave an array of
// {label, x, y, width, height} maps in a global named platforms.
func RunLayout(ctx context.Context, src []byte, l *Level) ([]Platform, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "fmt", "text"))
	for name, v := range map[string]float64{
		"left":   l.Left,
		"right":  l.RightBound(),
		"bottom": l.BottomBound(),
		"width":  l.Width,
		"height": l.Height,
	} {
		if err := script.Add(name, v); err != nil {
			return nil, err
		}
	}
	if err := script.Add("platforms", []any{}); err != nil {
		return nil, err
	}

	compiled, err := script.RunContext(ctx)
	if err != nil {
		return nil, err
	}

	raw := compiled.Get("platforms").Array()
	out := make([]Platform, 0, len(raw))
	for i, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: platforms[%d] is %T, want map", ErrInvalidLayout, i, item)
		}
		p := Platform{Label: fmt.Sprint(m["label"])}
		if m["label"] == nil {
			p.Label = fmt.Sprintf("platform%d", i+1)
		}
		for key, dst := range map[string]*float64{"x": &p.X, "y": &p.Y, "width": &p.Width, "height": &p.Height} {
			v, err := number(m[key])
			if err != nil {
				return nil, fmt.Errorf("%w: platforms[%d].%s: %v", ErrInvalidLayout, i, key, err)
			}
			*dst = v
		}
		out = append(out, p)
	}
	return out, nil
}

func number(v any) (float64, error) {
	switch n := v.(type) {
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	case float64:
		return n, nil
	case nil:
		return 0, fmt.Errorf("missing")
	default:
		return 0, fmt.Errorf("%T is not a number", v)
	}
}
