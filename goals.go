package pocketbook

import (
	"encoding/json"
	"fmt"
	"time"
)

// Goal is a savings target. Its name doubles as the join key against
// transaction tags: a contribution is an expense tagged with the goal name.
// That join is a plain string match; renaming a goal would orphan its
// historical contributions.
type Goal struct {
	ID            string
	Name          string
	Target        Amount
	MonthlyTarget Amount // informational pacing target, not used in computations
	DateSet       time.Time
}

func (g Goal) Equal(o Goal) bool {
	return g.ID == o.ID &&
		g.Name == o.Name &&
		g.Target.Equal(o.Target) &&
		g.MonthlyTarget.Equal(o.MonthlyTarget) &&
		g.DateSet.Equal(o.DateSet)
}

// MarshalJSON implements the persisted form: targets as JSON numbers,
// dateSet as an ISO-8601 instant.
func (g Goal) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", g.ID)
	w.Append("name", g.Name)
	w.Append("targetAmount", g.Target.value)
	w.Append("monthlyTarget", g.MonthlyTarget.value)
	w.Append("dateSet", g.DateSet.UTC().Format(time.RFC3339Nano))
	return w.MarshalJSON()
}

func (g *Goal) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID            string          `json:"id"`
		Name          string          `json:"name"`
		Target        json.RawMessage `json:"targetAmount"`
		MonthlyTarget json.RawMessage `json:"monthlyTarget"`
		DateSet       string          `json:"dateSet"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	target, err := parseRawAmount(temp.Target)
	if err != nil {
		return fmt.Errorf("goal %q: target: %w", temp.Name, err)
	}
	monthly, err := parseRawAmount(temp.MonthlyTarget)
	if err != nil {
		return fmt.Errorf("goal %q: monthly target: %w", temp.Name, err)
	}
	dateSet, err := time.Parse(time.RFC3339, temp.DateSet)
	if err != nil {
		return fmt.Errorf("goal %q: invalid dateSet %q: %w", temp.Name, temp.DateSet, err)
	}

	*g = Goal{
		ID:            temp.ID,
		Name:          temp.Name,
		Target:        target,
		MonthlyTarget: monthly,
		DateSet:       dateSet.UTC(),
	}
	return nil
}

// GoalProgress pairs a goal with its computed progress.
type GoalProgress struct {
	Goal    Goal
	Saved   Amount
	Percent Percent
}

var _ json.Marshaler = (*Goal)(nil)
var _ json.Unmarshaler = (*Goal)(nil)
