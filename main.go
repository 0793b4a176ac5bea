package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/brightwood-pta/directorybackend/calendar"
	"github.com/brightwood-pta/directorybackend/config"
	"github.com/brightwood-pta/directorybackend/database"
	"github.com/brightwood-pta/directorybackend/directory"
	"github.com/brightwood-pta/directorybackend/favorites"
	"github.com/brightwood-pta/directorybackend/geocode"
	"github.com/brightwood-pta/directorybackend/handlers"
	"github.com/brightwood-pta/directorybackend/repository"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	dbDir := filepath.Dir(cfg.DatabasePath)
	log.Printf("Ensuring storage directory exists: %s", dbDir)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		log.Fatalf("FATAL: Failed to create storage directory %s: %v", dbDir, err)
	}

	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}
	defer db.Close()

	gormDB, err := database.InitGormDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize GORM database: %v", err)
	}
	if err := database.AutoMigrateModels(gormDB); err != nil {
		log.Fatalf("FATAL: Failed to run database migrations: %v", err)
	}

	// the roster is loaded once; a broken source is fatal and the operator's
	// retry is a restart
	log.Printf("Loading directory data from: %s", cfg.DataSource)
	students, err := directory.LoadStudents(cfg.DataSource)
	if err != nil {
		log.Fatalf("FATAL: Failed to load directory data: %v", err)
	}
	idx := directory.NewIndex(students)
	log.Printf("Directory loaded: %d students across %d grades", len(students), len(idx.GradesSorted()))
	log.Printf("Using database: %s", cfg.DatabasePath)

	favoritesStore := favorites.NewStore(&database.StateStore{DB: db})
	calendarClient := calendar.NewClient(cfg.CalendarURL)
	geocoder := geocode.NewClient(repository.NewGeocodeRepository(gormDB))
	locationRepo := repository.NewLocationRepository(gormDB)

	r := chi.NewRouter()

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173"}, //TODO: configurable
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}

	corsHandler := cors.New(corsOptions)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsHandler.Handler)

	directoryHandler := &handlers.DirectoryHandler{Index: idx}
	searchHandler := &handlers.SearchHandler{Index: idx, Limit: cfg.SearchLimit}
	favoritesHandler := &handlers.FavoritesHandler{Index: idx, Store: favoritesStore}
	calendarHandler := &handlers.CalendarHandler{Client: calendarClient}
	mapHandler := &handlers.MapHandler{Cfg: cfg, Geocoder: geocoder, LocationRepo: locationRepo}

	r.Route("/api", func(r chi.Router) {
		r.Route("/students", func(r chi.Router) {
			r.Get("/", directoryHandler.ListStudents)
			r.Route("/{student_id}", func(r chi.Router) {
				r.Get("/", directoryHandler.GetStudent)
				r.Get("/siblings", directoryHandler.GetSiblings)
			})
		})

		r.Route("/grades", func(r chi.Router) {
			r.Get("/", directoryHandler.ListGrades)
			r.Get("/{grade}/teachers", directoryHandler.ListTeachersForGrade)
		})

		r.Route("/teachers", func(r chi.Router) {
			r.Get("/", directoryHandler.ListTeachers)
			r.Get("/students", directoryHandler.ListStudentsForTeacher)
		})

		r.Get("/rooms", directoryHandler.ListRooms)
		r.Get("/parents", directoryHandler.ResolveParent)
		r.Get("/search", searchHandler.Search)

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", favoritesHandler.ListFavorites)
			r.Post("/students/{student_id}", favoritesHandler.AddStudent)
			r.Post("/parents", favoritesHandler.AddParent)
			r.Delete("/{favorite_id}", favoritesHandler.RemoveFavorite)
			r.Get("/contact-options", favoritesHandler.ContactOptions)
			r.Post("/group-link", favoritesHandler.GroupLink)
		})

		r.Get("/calendar/events", calendarHandler.ListEvents)

		r.Get("/geocoded-data", mapHandler.GeocodedData)
		r.Get("/geocode", mapHandler.Geocode)
		r.Route("/locations", func(r chi.Router) {
			r.Get("/", mapHandler.ListLocations)
			r.Post("/", mapHandler.CreateLocation)
			r.Delete("/{location_id}", mapHandler.DeleteLocation)
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	serverAddr := ":" + port
	fmt.Printf("Server starting on http://localhost:%s\n", port)
	log.Printf("Server listening on %s", serverAddr)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}
