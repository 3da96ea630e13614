// Package export produces the printable settlement document, as PDF or HTML.
//
// All figures come from the successione balance calculator; the exporters
// never recompute a balance. Documents are rendered fully in memory, so a
// failed export never leaves a partial file behind.
package export

// Default formatting options for the exported document.
const (
	DefaultTitle    = "Dashboard Successione"
	DefaultFileName = "successione_riepilogo.pdf"
	DefaultSubtitle = "Riepilogo pagamenti e trasferimenti"
)

// Options configures the exported document. Zero fields take the defaults.
type Options struct {
	Title    string
	FileName string
	Subtitle string
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.FileName == "" {
		o.FileName = DefaultFileName
	}
	if o.Subtitle == "" {
		o.Subtitle = DefaultSubtitle
	}
	return o
}
