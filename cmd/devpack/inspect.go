package main

import (
	"context"
	"fmt"
	"os"

	"github.com/r3e-network/devpack-go/pkg/devpack"
	"github.com/r3e-network/devpack-go/pkg/registry"
	cli "github.com/urfave/cli/v3"
)

func NewInspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Aliases:   []string{"i"},
		Usage:     "Print the actions and reference graph of a batch file",
		ArgsUsage: "<batch.json>",
		Action: func(ctx context.Context, command *cli.Command) error {
			actions, err := loadActions(command.Args().First())
			if err != nil {
				return err
			}

			for i, action := range actions {
				name := action.Type
				if kind, err := registry.Default.Lookup(action.Type); err == nil {
					name = fmt.Sprintf("%s (%s)", kind.Name, action.Type)
				}

				id := action.ID
				if id == "" {
					id = "-"
				}

				_, _ = fmt.Fprintf(os.Stdout, "%d. %s [id: %s, params: %d]\n", i, name, id, len(action.Params))

				for key, value := range action.Params {
					for _, ref := range refsUnder(value) {
						target := ref.ID
						if target == "" {
							target = "(no id)"
						}

						_, _ = fmt.Fprintf(os.Stdout, "     %s -> %s (%s)\n", key, target, ref.Type)
					}
				}
			}

			return nil
		},
	}
}

func refsUnder(value any) []*devpack.ActionRef {
	return devpack.CollectRefs(map[string]any{"": value})
}
