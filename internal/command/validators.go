// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"slices"

	"github.com/feedsift/feedsift/internal/output"
	"github.com/feedsift/feedsift/internal/source"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func OutputValidator(value any) error {
	if s, ok := value.(string); !ok || !slices.Contains(output.Outputs, s) {
		return fmt.Errorf("must be one of %v", output.Outputs)
	}
	return nil
}

// FilterOutputValidator accepts the outputs available for a single filter or
// decision, which have no line-per-row form.
func FilterOutputValidator(value any) error {
	if value == "jsonl" {
		return fmt.Errorf("must be one of [text json yaml]")
	}
	return OutputValidator(value)
}

func FormatValidator(value any) error {
	s, _ := value.(string)
	_, err := source.ParseFormat(s)
	return err
}

func WorkersValidator(value any) error {
	if n, ok := value.(int); !ok || n < 0 {
		return fmt.Errorf("must be zero (one per CPU) or a positive number")
	}
	return nil
}

func PaddingValidator(value any) error {
	if n, ok := value.(int); !ok || n < 1 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}

func ColumnsValidator(value any) error {
	s, _ := value.(string)
	return output.ValidateColumns(splitList(s))
}
