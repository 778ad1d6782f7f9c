package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/biohash-labs/biohash/internal/common"
)

// Register prompts for a username, enrolls it, and displays the
// provisioning QR code plus the base32 secret for manual entry. This is
// the only time the secret is ever shown in plaintext.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	enrollment, err := a.service.Register(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorDuplicateUser):
			fmt.Fprintln(a.out, "User already exists.")
		case errors.Is(err, common.ErrorMalformedInput):
			fmt.Fprintln(a.out, "Invalid username.")
		default:
			fmt.Fprintln(a.out, "Registration failed.")
			a.logger.Error(ctx, "registration error", "error", err.Error())
		}
		return err
	}

	fmt.Fprintf(a.out, "User %s registered successfully.\n", enrollment.Username)

	if ascii, qrErr := renderQR(enrollment.ProvisioningURI); qrErr == nil {
		fmt.Fprintln(a.out, "Scan this QR code with your authenticator app:")
		fmt.Fprint(a.out, ascii)
	} else {
		fmt.Fprintln(a.out, "Provisioning URI:", enrollment.ProvisioningURI)
	}

	fmt.Fprintln(a.out, "Or enter this secret manually:", enrollment.SecretBase32)
	return nil
}
