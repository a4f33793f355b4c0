package chroma

import (
	"fmt"
	"sort"
	"strings"
)

const (
	whereOpAnd = "$and"
	whereOpOr  = "$or"
	whereOpIn  = "$in"
	whereOpEq  = "$eq"
	whereOpNe  = "$ne"
)

// translateWhere normalizes a caller filter map into Chroma where-clause
// syntax: bare scalars become {$eq: v}, operator maps are validated and
// passed through, $and/$or recurse.
func translateWhere(filter map[string]any) (map[string]any, error) {
	if len(filter) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(filter))
	for key := range filter {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := map[string]any{}
	for _, key := range keys {
		value := filter[key]
		k := strings.TrimSpace(key)
		if k == "" {
			continue
		}

		if strings.HasPrefix(k, "$") {
			switch strings.ToLower(k) {
			case whereOpAnd, whereOpOr:
				items, err := toObjectSlice(value)
				if err != nil {
					return nil, opErr(
						"where_translate",
						OperationErrorValidation,
						fmt.Sprintf("operator %s expects array of objects", k),
						err,
					)
				}
				subs := make([]any, 0, len(items))
				for _, item := range items {
					sub, err := translateWhere(item)
					if err != nil {
						return nil, err
					}
					subs = append(subs, sub)
				}
				out[strings.ToLower(k)] = subs
			default:
				return nil, opErr(
					"where_translate",
					OperationErrorUnsupportedFilter,
					fmt.Sprintf("unsupported top-level where operator %q", k),
					nil,
				)
			}
			continue
		}

		cond, err := translateFieldCondition(k, value)
		if err != nil {
			return nil, err
		}
		out[k] = cond
	}

	return out, nil
}

func translateFieldCondition(field string, value any) (any, error) {
	switch typed := value.(type) {
	case map[string]any:
		if len(typed) == 0 {
			return nil, opErr(
				"where_translate",
				OperationErrorValidation,
				fmt.Sprintf("field %q has empty operator map", field),
				nil,
			)
		}
		out := map[string]any{}
		ops := make([]string, 0, len(typed))
		for op := range typed {
			ops = append(ops, op)
		}
		sort.Strings(ops)

		for _, op := range ops {
			opVal := typed[op]
			switch strings.ToLower(strings.TrimSpace(op)) {
			case whereOpEq, whereOpNe:
				scalar, ok := toScalarValue(opVal)
				if !ok {
					return nil, opErr(
						"where_translate",
						OperationErrorValidation,
						fmt.Sprintf("operator %s for field %q expects scalar value", op, field),
						nil,
					)
				}
				out[strings.ToLower(strings.TrimSpace(op))] = scalar
			case whereOpIn:
				values, err := toScalarSlice(opVal)
				if err != nil {
					return nil, opErr(
						"where_translate",
						OperationErrorValidation,
						fmt.Sprintf("operator %s for field %q expects scalar array", whereOpIn, field),
						err,
					)
				}
				if len(values) == 0 {
					return nil, opErr(
						"where_translate",
						OperationErrorValidation,
						fmt.Sprintf("operator %s for field %q cannot be empty", whereOpIn, field),
						nil,
					)
				}
				out[whereOpIn] = values
			default:
				return nil, opErr(
					"where_translate",
					OperationErrorUnsupportedFilter,
					fmt.Sprintf("unsupported where operator %q for field %q", op, field),
					nil,
				)
			}
		}
		return out, nil

	default:
		scalar, ok := toScalarValue(value)
		if !ok {
			return nil, opErr(
				"where_translate",
				OperationErrorValidation,
				fmt.Sprintf("field %q expects scalar value or operator object", field),
				nil,
			)
		}
		return map[string]any{whereOpEq: scalar}, nil
	}
}

func toObjectSlice(value any) ([]map[string]any, error) {
	rawSlice, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("expected []any, got %T", value)
	}
	out := make([]map[string]any, 0, len(rawSlice))
	for _, item := range rawSlice {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("expected map[string]any in array, got %T", item)
		}
		out = append(out, obj)
	}
	return out, nil
}

func toScalarSlice(value any) ([]any, error) {
	switch typed := value.(type) {
	case []any:
		out := make([]any, 0, len(typed))
		for _, v := range typed {
			scalar, ok := toScalarValue(v)
			if !ok {
				return nil, fmt.Errorf("expected scalar, got %T", v)
			}
			out = append(out, scalar)
		}
		return out, nil
	case []string:
		out := make([]any, 0, len(typed))
		for _, v := range typed {
			out = append(out, v)
		}
		return out, nil
	case []int:
		out := make([]any, 0, len(typed))
		for _, v := range typed {
			out = append(out, v)
		}
		return out, nil
	case []float64:
		out := make([]any, 0, len(typed))
		for _, v := range typed {
			out = append(out, v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected scalar array, got %T", value)
	}
}

func toScalarValue(value any) (any, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case bool:
		return typed, true
	case int:
		return typed, true
	case int32:
		return int(typed), true
	case int64:
		return typed, true
	case float32:
		return float64(typed), true
	case float64:
		return typed, true
	default:
		return nil, false
	}
}
