package cli

import qrcode "github.com/skip2/go-qrcode"

// renderQR returns a terminal-friendly ASCII rendering of the given
// provisioning URI. It is a variable so tests can stub the rendering.
var renderQR = func(uri string) (string, error) {
	q, err := qrcode.New(uri, qrcode.Medium)
	if err != nil {
		return "", err
	}
	return q.ToSmallString(false), nil
}
