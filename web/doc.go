// Package web adapts forward to net/http.
//
// Routing stays with the caller's mux. Bind attaches the endpoint and
// component of a route to its requests, and Handler renders the resolved
// template:
//
//	mux := http.NewServeMux()
//	mux.Handle("GET /info/{page}", web.Bind("info.show", "info",
//	    web.Handler(f, "", func(r *http.Request) any {
//	        return map[string]string{"Page": r.PathValue("page")}
//	    })))
package web
