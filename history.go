package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/andareed/siftly-dialogs/params"
)

// outcome is one closed dialog as shown in the history list.
type outcome struct {
	Dialog  string
	Button  params.ButtonResult
	Value   string
	Comment string
	At      time.Time
}

func (o outcome) confirmed() bool { return o.Button == params.OK }

// --- Wire format ---

const snapshotVersion = 1

type outcomeDTO struct {
	Dialog  string    `json:"dialog"`
	Button  string    `json:"button"`
	Value   string    `json:"value,omitempty"`
	Comment string    `json:"comment,omitempty"`
	At      time.Time `json:"at"`
}

type snapshotDTO struct {
	Version  int          `json:"version"`
	Outcomes []outcomeDTO `json:"outcomes"`
}

// --- Conversions ---

func toDTO(o outcome) outcomeDTO {
	return outcomeDTO{
		Dialog:  o.Dialog,
		Button:  o.Button.String(),
		Value:   o.Value,
		Comment: o.Comment,
		At:      o.At,
	}
}

func fromDTO(d outcomeDTO) (outcome, error) {
	b, err := parseButton(d.Button)
	if err != nil {
		return outcome{}, err
	}
	return outcome{
		Dialog:  d.Dialog,
		Button:  b,
		Value:   d.Value,
		Comment: d.Comment,
		At:      d.At,
	}, nil
}

func parseButton(s string) (params.ButtonResult, error) {
	for b := params.None; b <= params.No; b++ {
		if b.String() == s {
			return b, nil
		}
	}
	return params.None, fmt.Errorf("unknown button %q", s)
}

// SaveHistory writes the outcome history to a JSON file.
func SaveHistory(history []outcome, path string) error {
	dto := snapshotDTO{
		Version:  snapshotVersion,
		Outcomes: make([]outcomeDTO, 0, len(history)),
	}
	for _, o := range history {
		dto.Outcomes = append(dto.Outcomes, toDTO(o))
	}

	data, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// LoadHistory reads a history written by SaveHistory.
func LoadHistory(path string) ([]outcome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var dto snapshotDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("parse history %q: %w", path, err)
	}
	if dto.Version != snapshotVersion {
		return nil, fmt.Errorf("snapshot version %d not supported (want %d)", dto.Version, snapshotVersion)
	}

	out := make([]outcome, 0, len(dto.Outcomes))
	for i, d := range dto.Outcomes {
		o, err := fromDTO(d)
		if err != nil {
			return nil, fmt.Errorf("outcome %d: %w", i, err)
		}
		out = append(out, o)
	}
	return out, nil
}
