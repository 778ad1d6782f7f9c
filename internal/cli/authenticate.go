package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/biohash-labs/biohash/internal/common"
)

// Authenticate prompts for a username and a one-time code and runs the
// two-factor check. Factor failures are reported with one generic
// message so the output never reveals which factor rejected.
func (a *App) Authenticate(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	code, err := getSecret("Enter the code from your authenticator app", a.out)
	if err != nil {
		return err
	}

	if err := a.service.Authenticate(ctx, username, code); err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			fmt.Fprintln(a.out, "User not found.")
		case errors.Is(err, common.ErrorAuthenticationFailed):
			fmt.Fprintln(a.out, "Authentication failed.")
		default:
			fmt.Fprintln(a.out, "Authentication failed.")
			a.logger.Error(ctx, "authentication error", "error", err.Error())
		}
		return err
	}

	fmt.Fprintln(a.out, "Authentication successful.")
	return nil
}
