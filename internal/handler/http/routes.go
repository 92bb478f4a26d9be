package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
		r.With(h.verifyWebhook).Post("/api/users", h.syncUser)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/stocks", h.addStock)
		r.Get("/api/stocks", h.fetchStocks)
		r.Delete("/api/stocks/{id}", h.deleteStock)

		r.Get("/api/portfolio/summary", h.portfolioSummary)

		r.Post("/api/chats", h.uploadChat)
		r.Get("/api/chats", h.userChats)
		r.Get("/api/chats/all", h.allChats)
		r.Post("/api/chats/ask", h.askAssistant)

		r.Get("/api/users/me", h.currentUser)
		r.Patch("/api/users/me", h.updateCurrentUser)

		r.Post("/api/voice-command", h.voiceCommand)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
