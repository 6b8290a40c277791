package webui

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the panel endpoints onto the given router.
func (t *Toolkit) RegisterRoutes(r chi.Router) {
	r.Route("/calculator", func(r chi.Router) {
		r.Get("/", t.GetView)
		r.Post("/keys/{key}", t.PressKey)
		r.Post("/sequence", t.PressSequence)
		r.Get("/history", t.GetHistory)
	})
	r.Post("/converter", t.Convert)
	r.Post("/theme/toggle", t.ToggleTheme)
}
