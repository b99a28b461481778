// Package config holds the run parameters of the revenue query and
// validates them before anything touches the data. A bad parameter never
// reaches the engine.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config carries one run's parameters. All fields are required.
type Config struct {
	Region     string // region name the query selects, e.g. "ASIA"
	StartDate  string // inclusive order date lower bound, YYYY-MM-DD
	EndDate    string // exclusive order date upper bound, YYYY-MM-DD
	Threads    int    // probe workers for the hash joins, must be positive
	TablePath  string // directory holding the source .tbl files
	ResultPath string // destination file for the query result
}

// ConfigError reports a missing or malformed run parameter.
type ConfigError struct {
	Param  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("parameter %s", e.Param))

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("value=%q", e.Value))
	}

	return strings.Join(parts, " - ")
}

func NewMissingParam(param string) *ConfigError {
	return &ConfigError{
		Param:  param,
		Reason: "required",
	}
}

func NewBadParam(param, value, reason string) *ConfigError {
	return &ConfigError{
		Param:  param,
		Value:  value,
		Reason: reason,
	}
}

// Validate checks every field and returns the first problem found, in
// field declaration order.
func (c *Config) Validate() error {
	if c.Region == "" {
		return NewMissingParam("r_name")
	}
	if c.StartDate == "" {
		return NewMissingParam("start_date")
	}
	if err := validateDate(c.StartDate); err != nil {
		return NewBadParam("start_date", c.StartDate, err.Error())
	}
	if c.EndDate == "" {
		return NewMissingParam("end_date")
	}
	if err := validateDate(c.EndDate); err != nil {
		return NewBadParam("end_date", c.EndDate, err.Error())
	}
	if c.Threads <= 0 {
		return NewBadParam("threads", fmt.Sprintf("%d", c.Threads), "must be positive")
	}
	if c.TablePath == "" {
		return NewMissingParam("table_path")
	}
	if c.ResultPath == "" {
		return NewMissingParam("result_path")
	}
	return nil
}

// validateDate validates a date string in YYYY-MM-DD format
func validateDate(value string) error {
	_, err := time.Parse("2006-01-02", value)
	if err != nil {
		return fmt.Errorf("invalid date format, expected YYYY-MM-DD (e.g., '1994-01-01')")
	}
	return nil
}
