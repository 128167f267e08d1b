package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// SchemaName records the schema under validation under the key "schema".
func SchemaName(name string) slog.Attr {
	return slog.String("schema", name)
}

// ContractID records the contract identifier under the key "contract_id".
// If id is nil, it returns an empty Attr.
func ContractID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("contract_id", id)
}

// RunID records the validation run identifier under the key "run_id".
// If id is nil, it returns an empty Attr.
func RunID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("run_id", id)
}

// Expectation records an expectation description under the key "expectation".
func Expectation(desc string) slog.Attr {
	return slog.String("expectation", desc)
}

// Target records the field (or "dataset") an expectation applies to.
func Target(name string) slog.Attr {
	return slog.String("target", name)
}

// Outcome records a pass/fail flag under the key "success".
func Outcome(success bool) slog.Attr {
	return slog.Bool("success", success)
}

// RecordCount records the dataset size under the key "records".
func RecordCount(n int) slog.Attr {
	return slog.Int("records", n)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
