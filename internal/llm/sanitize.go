package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripCodeFences removes markdown fences some models wrap around JSON output
// and trims the content down to the outermost JSON object.
func StripCodeFences(content string) string {
	s := strings.TrimSpace(content)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	// keep only the outermost object when the model adds prose around it
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		s = s[start : end+1]
	}
	return s
}

var optMoney = []string{"grand_total", "total_gst"}

// SanitizeOptionalFields removes or normalizes fields that don't meet our
// stricter schema, so the overall document can still validate. Required
// string fields are only trimmed, never dropped.
func SanitizeOptionalFields(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, err
	}

	var dropped []string

	// gstin_no: uppercase; drop when it cannot be a GSTIN
	if v, ok := m["gstin_no"].(string); ok {
		s := strings.ToUpper(strings.TrimSpace(v))
		if len(s) != 15 || strings.EqualFold(s, "N/A") {
			delete(m, "gstin_no")
			dropped = append(dropped, "gstin_no")
		} else {
			m["gstin_no"] = s
		}
	}

	// date: try to rescue common Indian formats into YYYY-MM-DD
	if v, ok := m["date"].(string); ok {
		if normalized, err := NormalizeDate(v); err == nil {
			m["date"] = normalized
		}
	}

	for _, k := range []string{"customer_name", "place", "state"} {
		if v, ok := m[k]; ok {
			s, isStr := v.(string)
			s = strings.TrimSpace(s)
			if !isStr || s == "" || strings.EqualFold(s, "N/A") || strings.EqualFold(s, "null") {
				delete(m, k)
				dropped = append(dropped, k)
			} else {
				m[k] = s
			}
		}
	}

	for _, k := range optMoney {
		if v, ok := m[k]; ok {
			cleaned, keep := coerceDecimal(v)
			if !keep {
				delete(m, k)
				dropped = append(dropped, k)
			} else {
				m[k] = cleaned
			}
		}
	}

	// items: coerce per-item money strings, drop items without a usable name
	if items, ok := m["items"].([]any); ok {
		kept := make([]any, 0, len(items))
		for _, it := range items {
			im, ok := it.(map[string]any)
			if !ok {
				dropped = append(dropped, "items(entry)")
				continue
			}
			name, _ := im["item_name"].(string)
			if strings.TrimSpace(name) == "" {
				dropped = append(dropped, "items(unnamed)")
				continue
			}
			im["item_name"] = strings.TrimSpace(name)
			for _, k := range []string{"unit_price", "amount"} {
				if v, ok := im[k]; ok {
					cleaned, keep := coerceDecimal(v)
					if !keep {
						delete(im, k)
						dropped = append(dropped, "items."+k)
					} else {
						im[k] = cleaned
					}
				}
			}
			if v, ok := im["hsn_code"]; ok {
				switch t := v.(type) {
				case float64:
					im["hsn_code"] = fmt.Sprintf("%.0f", t)
				case string:
					s := strings.TrimSpace(t)
					if s == "" {
						delete(im, "hsn_code")
						dropped = append(dropped, "items.hsn_code")
					} else {
						im["hsn_code"] = s
					}
				default:
					delete(im, "hsn_code")
					dropped = append(dropped, "items.hsn_code")
				}
			}
			kept = append(kept, im)
		}
		m["items"] = kept
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, nil, err
	}
	return b, dropped, nil
}

// coerceDecimal turns model output (number, comma-grouped or ₹-prefixed
// string) into a plain two-decimal string. keep=false means unusable.
func coerceDecimal(v any) (any, bool) {
	switch t := v.(type) {
	case float64:
		return fmt.Sprintf("%.2f", t), true
	case string:
		s := strings.TrimSpace(t)
		s = strings.TrimPrefix(s, "₹")
		s = strings.ReplaceAll(s, ",", "")
		s = strings.TrimSpace(s)
		if s == "" || strings.EqualFold(s, "null") || strings.EqualFold(s, "N/A") {
			return nil, false
		}
		if f, err := parseDecimal(s); err == nil {
			return fmt.Sprintf("%.2f", f), true
		}
		return nil, false
	default:
		return nil, false
	}
}
