package lead

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/vibe-landing/handler"
)

// Mountable is a service exposing its own routes.
type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures the lead module router.
type RouterOptions struct {
	// Capture serves the signup submissions. Required.
	Capture Mountable
	// Page overrides the landing page copy. Zero value uses DefaultPageData.
	Page PageData
}

// Router mounts the landing page at "/" and the capture endpoint at CapturePath.
//
//	r := chi.NewRouter()
//	r.Mount("/", lead.Router(lead.RouterOptions{
//	    Capture: lead.NewEndpoint(cfg.Lead, lead.NewEmailDispatcher(sender)),
//	}))
func Router(opts RouterOptions) chi.Router {
	if opts.Capture == nil {
		panic("lead: RouterOptions.Capture is required")
	}
	page := opts.Page
	if page == (PageData{}) {
		page = DefaultPageData()
	}

	r := chi.NewRouter()
	r.Get("/", handler.Wrap(func(ctx handler.Context, _ struct{}) handler.Response {
		return handler.Templ(LandingPage(page))
	}))
	r.Mount(CapturePath, opts.Capture.Handle())
	return r
}
