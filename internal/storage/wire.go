package storage

import (
	"encoding/json"
	"fmt"

	"octalysis/internal/state"
)

// wireState is the persisted JSON shape. Drives and comments are keyed by
// driver so the snapshot stays readable and survives reordering.
type wireState struct {
	ProjectName string             `json:"projectName"`
	Drives      map[string]float64 `json:"drives"`
	Comments    map[string]string  `json:"comments"`
}

func encodeState(s state.AppState) ([]byte, error) {
	w := wireState{
		ProjectName: s.ProjectName,
		Drives:      make(map[string]float64, state.DriverCount),
		Comments:    make(map[string]string, state.DriverCount),
	}
	for _, d := range state.Drivers {
		w.Drives[d.Key()] = float64(s.Value(d))
		w.Comments[d.Key()] = s.Comment(d)
	}
	return json.Marshal(w)
}

// decodeState parses a stored snapshot. Older versions stored only the
// drives object at the top level; those are migrated with empty comments.
// Drives that are missing or not numbers come back as 0.
func decodeState(b []byte) (state.AppState, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return state.AppState{}, fmt.Errorf("decode snapshot: %w", err)
	}

	var out state.AppState
	drives := raw
	if _, legacy := raw[state.Meaning.Key()]; !legacy {
		if err := decodeString(raw["projectName"], &out.ProjectName); err != nil {
			return state.AppState{}, err
		}
		drives = nil
		if rd, ok := raw["drives"]; ok {
			if err := json.Unmarshal(rd, &drives); err != nil {
				return state.AppState{}, fmt.Errorf("decode drives: %w", err)
			}
		}
		var comments map[string]json.RawMessage
		if rc, ok := raw["comments"]; ok {
			if err := json.Unmarshal(rc, &comments); err != nil {
				return state.AppState{}, fmt.Errorf("decode comments: %w", err)
			}
		}
		for _, d := range state.Drivers {
			_ = decodeString(comments[d.Key()], &out.Comments[d])
		}
	}
	for _, d := range state.Drivers {
		var v float64
		if json.Unmarshal(drives[d.Key()], &v) == nil {
			out.Drives[d] = state.NormalizeValue(v)
		}
	}
	return out, nil
}

func decodeString(raw json.RawMessage, dst *string) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode string field: %w", err)
	}
	return nil
}
