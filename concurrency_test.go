package forward

import (
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/randalmurphal/forward/component"
	"github.com/randalmurphal/forward/testutil"
)

// Two forwarders with opposite priorities share one engine. If resolution
// leaked a loader through shared engine state, one of them would
// eventually render the other's choice.
func TestConcurrentResolutionSharedEngine(t *testing.T) {
	layout := testutil.NewInfoLayout(t)
	components := component.NewRegistry()
	if err := components.Register(component.New("info", layout.ComponentDir)); err != nil {
		t.Fatal(err)
	}

	appFirst := New(Options{SearchPath: []string{layout.AppDir}, Components: components})
	componentCfg := Config{Priority: PriorityComponent}
	componentFirst := New(Options{
		Config:     &componentCfg,
		SearchPath: []string{layout.AppDir},
		Components: components,
		Engine:     appFirst.Engine(),
	})

	before := appFirst.Engine().Loader()
	req := Request{Endpoint: "info.show", Component: "info"}

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			for j := 0; j < 50; j++ {
				out, err := appFirst.RenderString(req, "overrided.html", nil)
				if err != nil {
					return err
				}
				if out != testutil.ScenarioAppOverride {
					return fmt.Errorf("application priority rendered %q", out)
				}

				out, err = componentFirst.RenderString(req, "overrided.html", nil)
				if err != nil {
					return err
				}
				if out != testutil.ScenarioComponentOverride {
					return fmt.Errorf("component priority rendered %q", out)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if appFirst.Engine().Loader() != before {
		t.Error("default loader changed during concurrent resolution")
	}
}
