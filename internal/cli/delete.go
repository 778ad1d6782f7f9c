package cli

import (
	"context"
	"fmt"
)

// DeleteAll removes every user record after an explicit typed
// confirmation. Anything other than "yes" cancels.
func (a *App) DeleteAll(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Delete ALL users? This cannot be undone. Type 'yes' to confirm", a.out)
	if err != nil {
		return err
	}

	if answer != "yes" {
		fmt.Fprintln(a.out, "Operation canceled.")
		return nil
	}

	if err := a.service.DeleteAllUsers(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not delete users.")
		a.logger.Error(ctx, "delete error", "error", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "All users have been deleted.")
	return nil
}
