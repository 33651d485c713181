// Package usage prints help for the global flags and every connector's settings.
// Connector groups are built from the settings structs themselves, so flag names,
// env variables and defaults shown here are the ones the merger reads.
package usage

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/chatgate/pkg/connector"
	"github.com/umputun/chatgate/pkg/settings"
)

var _ flags.Unmarshaler = (*settings.Value)(nil)
var _ flags.Marshaler = settings.Value{}

// globalOpts are flags recognized regardless of the connector
type globalOpts struct {
	ConnectorType string `short:"c" long:"connector-type" description:"connector to use"`
	Help          bool   `short:"h" long:"help" description:"show this help"`
}

// Print writes the help page to w. Active is the resolved connector, Unknown if none,
// unknown lists arguments which were not recognized.
func Print(w io.Writer, active connector.ID, unknown []string) error {
	p, err := newParser()
	if err != nil {
		return err
	}

	hdr := color.New(color.FgCyan, color.Bold)
	warn := color.New(color.FgYellow)
	if active == connector.Unknown {
		fmt.Fprintln(w, hdr.Sprint("no connector selected, set ConnectorType in configuration or pass --connector-type"))
	} else {
		fmt.Fprintln(w, hdr.Sprintf("connector: %s", active))
	}
	if len(unknown) > 0 {
		fmt.Fprintln(w, warn.Sprintf("unrecognized arguments: %s", strings.Join(unknown, " ")))
	}
	fmt.Fprintln(w)

	p.WriteHelp(w)
	return nil
}

// newParser builds a go-flags parser used for rendering only, it never parses arguments
func newParser() (*flags.Parser, error) {
	p := flags.NewNamedParser("chatgate", flags.None)
	p.Usage = "[-c connector] [connector options]"

	g, err := p.AddGroup("Global", "", &globalOpts{})
	if err != nil {
		return nil, fmt.Errorf("global group: %w", err)
	}
	if opt := g.FindOptionByLongName("connector-type"); opt != nil {
		opt.Description = "connector to use, one of: " + strings.Join(names(), ", ")
	}

	for _, id := range connector.All() {
		cg, err := p.AddGroup(id.String(), "", settings.New(id))
		if err != nil {
			return nil, fmt.Errorf("%s group: %w", id, err)
		}
		cg.EnvNamespace = id.EnvNamespace()
		showDefaults(cg)
	}
	return p, nil
}

// showDefaults makes help print defaults read from the default tags. The parser never parses,
// so go-flags would not render them by itself; the default mask is shown verbatim instead.
func showDefaults(g *flags.Group) {
	for _, opt := range g.Options() {
		if len(opt.Default) > 0 && opt.DefaultMask == "" {
			opt.DefaultMask = strings.Join(opt.Default, ", ")
		}
	}
}

func names() []string {
	all := connector.All()
	res := make([]string, 0, len(all))
	for _, id := range all {
		res = append(res, id.String())
	}
	return res
}
