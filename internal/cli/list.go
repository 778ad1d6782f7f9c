package cli

import (
	"context"
	"fmt"
)

// List prints all registered usernames in registration order.
func (a *App) List(ctx context.Context) error {
	names, err := a.service.ListUsers(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not list users.")
		a.logger.Error(ctx, "list error", "error", err.Error())
		return err
	}

	if len(names) == 0 {
		fmt.Fprintln(a.out, "No users registered.")
		return nil
	}

	fmt.Fprintln(a.out, "Registered users:")
	for _, name := range names {
		fmt.Fprintln(a.out, "-", name)
	}
	return nil
}
