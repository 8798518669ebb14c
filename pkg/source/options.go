package source

import (
	"io"

	"github.com/go-resty/resty/v2"
	"github.com/schollz/progressbar/v3"
)

type Option func(l *Loader)

func WithClient(cli *resty.Client) Option {
	return func(l *Loader) {
		l.cli = cli.SetDoNotParseResponse(true)
	}
}

// WithProgress shows a download bar on w for URL sources.
func WithProgress(w io.Writer) Option {
	return func(l *Loader) {
		l.progress = w
	}
}

func newBytesBar(w io.Writer, length int64, desc string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(
		length,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	)
}
