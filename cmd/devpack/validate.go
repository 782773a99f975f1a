package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/r3e-network/devpack-go/pkg/batch"
	"github.com/r3e-network/devpack-go/pkg/devpack"
	"github.com/r3e-network/devpack-go/pkg/registry"
	cli "github.com/urfave/cli/v3"
)

// Static error variables for linter compliance.
var (
	ErrInvalidActions = errors.New("invalid actions found")
	ErrNoInputFile    = errors.New("an action batch file argument is required")
)

func NewValidateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"v"},
		Usage:     "Validate a serialized action batch file",
		ArgsUsage: "<batch.json>",
		Action: func(ctx context.Context, command *cli.Command) error {
			validate := validator.New(validator.WithRequiredStructEnabled())

			logger := slog.With(
				"module", "devpack",
				"action", "validate",
			)

			actions, err := loadActions(command.Args().First())
			if err != nil {
				return err
			}

			logger.Info("Validating action batch", "actions", len(actions))

			_, _ = fmt.Fprintln(os.Stdout, "Action Batch Validation Results:")
			_, _ = fmt.Fprintln(os.Stdout, "================================")

			invalid := 0

			for i, action := range actions {
				id := action.ID
				if id == "" {
					id = "(engine assigned)"
				}

				_, _ = fmt.Fprintf(os.Stdout, "\nAction %d: %s (id: %s)\n", i, action.Type, id)

				if err := validate.Struct(action); err != nil {
					_, _ = fmt.Fprintf(os.Stdout, "  INVALID: %v\n", err)
					invalid++

					continue
				}

				if err := registry.Default.ValidateParams(action); err != nil {
					_, _ = fmt.Fprintf(os.Stdout, "  INVALID: %v\n", err)
					invalid++

					continue
				}

				_, _ = fmt.Fprintf(os.Stdout, "  VALID\n")
			}

			if err := batch.ValidateRefs(actions); err != nil {
				_, _ = fmt.Fprintf(os.Stdout, "\nReference graph:\n  INVALID: %v\n", err)

				return fmt.Errorf("%w: %v", ErrInvalidActions, err)
			}

			if invalid > 0 {
				return fmt.Errorf("%w: %d", ErrInvalidActions, invalid)
			}

			_, _ = fmt.Fprintln(os.Stdout, "\nAll actions and references are valid for submission.")

			return nil
		},
	}
}

func loadActions(path string) ([]devpack.Action, error) {
	if path == "" {
		return nil, ErrNoInputFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file %s: %w", path, err)
	}

	var actions []devpack.Action
	if err := json.Unmarshal(data, &actions); err != nil {
		return nil, fmt.Errorf("failed to parse batch file %s: %w", path, err)
	}

	return actions, nil
}
