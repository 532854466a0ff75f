package routes

import (
	"net/http"

	_ "github.com/Dosada05/matchmerit/docs" // swagger spec
	"github.com/Dosada05/matchmerit/handlers"
	"github.com/Dosada05/matchmerit/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	JWTSecret      string
	AllowedOrigins []string
}

func SetupRoutes(
	router *chi.Mux,
	opts Options,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	groupHandler *handlers.GroupHandler,
	matchHandler *handlers.MatchHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(opts.JWTSecret))

		r.Route("/users", func(r chi.Router) {
			r.Get("/me", userHandler.GetMe)
			r.Patch("/me", userHandler.UpdateMe)
			r.Get("/{userID}", userHandler.GetUserByID)
		})

		r.Route("/groups", func(r chi.Router) {
			r.Post("/", groupHandler.CreateGroup)
			r.Get("/", groupHandler.ListGroups)

			r.Route("/{groupID}", func(r chi.Router) {
				r.Get("/", groupHandler.GetGroup)
				r.Patch("/", groupHandler.UpdateGroup)
				r.Patch("/invitations", groupHandler.ManageInvitation)
				r.Get("/matches", groupHandler.ListGroupMatches)

				r.Route("/members", func(r chi.Router) {
					r.Get("/", groupHandler.ListMembers)
					r.Post("/", groupHandler.InviteMember)
					r.Delete("/me", groupHandler.LeaveGroup)
					r.Patch("/{userID}/role", groupHandler.ChangeMemberRole)
				})
			})
		})

		r.Route("/matches", func(r chi.Router) {
			r.Post("/", matchHandler.CreateMatch)

			r.Route("/{matchID}", func(r chi.Router) {
				r.Patch("/", matchHandler.UpdateMatch)
				r.Patch("/status", matchHandler.UpdateMatchStatus)
				r.Patch("/lock", matchHandler.LockMatch)

				r.Route("/participants", func(r chi.Router) {
					r.Get("/", matchHandler.ListParticipants)
					r.Post("/", matchHandler.JoinMatch)
					r.Delete("/me", matchHandler.LeaveMatch)
					r.Patch("/{userID}/evaluation", matchHandler.EvaluateParticipant)
				})
			})
		})
	})
}
