package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/soundstack/api-music/internal/album"
	"github.com/soundstack/api-music/internal/artist"
	"github.com/soundstack/api-music/internal/auth"
	"github.com/soundstack/api-music/internal/genre"
	"github.com/soundstack/api-music/internal/media"
	"github.com/soundstack/api-music/internal/playlist"
	"github.com/soundstack/api-music/internal/rating"
	"github.com/soundstack/api-music/internal/tag"
	"github.com/soundstack/api-music/internal/track"
	"github.com/soundstack/api-music/internal/user"
	"github.com/soundstack/api-music/internal/utils/db"
)

func main() {
	_ = godotenv.Load()

	database, err := db.Connect()
	if err != nil {
		log.Fatal("[BOOT] could not connect to database: ", err)
	}

	if err := database.AutoMigrate(
		&user.User{},
		&auth.RefreshToken{},
		&artist.Artist{},
		&album.Album{},
		&track.Track{},
		&genre.Genre{},
		&tag.Tag{},
		&playlist.Playlist{},
		&media.Media{},
		&rating.Rating{},
	); err != nil {
		log.Fatal("[BOOT] migration failed: ", err)
	}

	refreshSvc := auth.NewRefreshService()

	userHandler := user.NewHandler(database, refreshSvc)
	artistHandler := artist.NewHandler(database)
	albumHandler := album.NewHandler(database)
	trackHandler := track.NewHandler(database)
	genreHandler := genre.NewHandler(database)
	tagHandler := tag.NewHandler(database)
	playlistHandler := playlist.NewHandler(database)
	mediaHandler := media.NewHandler(database)
	ratingHandler := rating.NewHandler(database)

	r := mux.NewRouter()

	// public routes
	r.HandleFunc("/api/login", userHandler.Login).Methods("POST")
	r.HandleFunc("/api/register", userHandler.Register).Methods("POST")
	r.HandleFunc("/api/token/refresh", auth.RefreshHTTPHandler(database, refreshSvc)).Methods("POST")

	// everything else requires a valid access token
	api := r.PathPrefix("/api").Subrouter()
	api.Use(auth.Middleware)

	api.HandleFunc("/users", userHandler.List).Methods("GET")
	api.HandleFunc("/users/{id}", userHandler.GetByID).Methods("GET")
	api.HandleFunc("/users/{id}", userHandler.Update).Methods("PUT")
	api.HandleFunc("/users/{id}", userHandler.Delete).Methods("DELETE")

	api.HandleFunc("/artists", artistHandler.Create).Methods("POST")
	api.HandleFunc("/artists", artistHandler.List).Methods("GET")
	api.HandleFunc("/artists/{id}", artistHandler.GetByID).Methods("GET")
	api.HandleFunc("/artists/{id}", artistHandler.Update).Methods("PUT")
	api.Handle("/artists/{id}", auth.RequireAdmin(http.HandlerFunc(artistHandler.Delete))).Methods("DELETE")
	api.HandleFunc("/artists/{id}/albums", albumHandler.ListByArtist).Methods("GET")

	api.HandleFunc("/albums", albumHandler.Create).Methods("POST")
	api.HandleFunc("/albums", albumHandler.List).Methods("GET")
	api.HandleFunc("/albums/{id}", albumHandler.GetByID).Methods("GET")
	api.HandleFunc("/albums/{id}", albumHandler.Update).Methods("PUT")
	api.HandleFunc("/albums/{id}", albumHandler.Delete).Methods("DELETE")
	api.HandleFunc("/albums/{id}/tracks", trackHandler.ListByAlbum).Methods("GET")
	api.HandleFunc("/albums/{id}/media", mediaHandler.ListByAlbum).Methods("GET")

	api.HandleFunc("/tracks", trackHandler.Create).Methods("POST")
	api.HandleFunc("/tracks", trackHandler.List).Methods("GET")
	api.HandleFunc("/tracks/{id}", trackHandler.GetByID).Methods("GET")
	api.HandleFunc("/tracks/{id}", trackHandler.Update).Methods("PUT")
	api.HandleFunc("/tracks/{id}", trackHandler.Delete).Methods("DELETE")
	api.HandleFunc("/tracks/{id}/tags/{tagId}", trackHandler.AddTag).Methods("POST")
	api.HandleFunc("/tracks/{id}/tags/{tagId}", trackHandler.RemoveTag).Methods("DELETE")
	api.HandleFunc("/tracks/{id}/media", mediaHandler.ListByTrack).Methods("GET")
	api.HandleFunc("/tracks/{id}/rating", ratingHandler.Rate).Methods("PUT")
	api.HandleFunc("/tracks/{id}/rating", ratingHandler.Unrate).Methods("DELETE")
	api.HandleFunc("/tracks/{id}/ratings", ratingHandler.ListByTrack).Methods("GET")
	api.HandleFunc("/tracks/{id}/ratings/stats", ratingHandler.Stats).Methods("GET")

	api.Handle("/genres", auth.RequireAdmin(http.HandlerFunc(genreHandler.Create))).Methods("POST")
	api.HandleFunc("/genres", genreHandler.List).Methods("GET")
	api.HandleFunc("/genres/{id}", genreHandler.GetByID).Methods("GET")
	api.Handle("/genres/{id}", auth.RequireAdmin(http.HandlerFunc(genreHandler.Update))).Methods("PUT")
	api.Handle("/genres/{id}", auth.RequireAdmin(http.HandlerFunc(genreHandler.Delete))).Methods("DELETE")

	api.HandleFunc("/tags", tagHandler.Create).Methods("POST")
	api.HandleFunc("/tags", tagHandler.List).Methods("GET")
	api.Handle("/tags/{id}", auth.RequireAdmin(http.HandlerFunc(tagHandler.Delete))).Methods("DELETE")

	api.HandleFunc("/playlists", playlistHandler.Create).Methods("POST")
	api.HandleFunc("/playlists", playlistHandler.List).Methods("GET")
	api.HandleFunc("/playlists/{id}", playlistHandler.GetByID).Methods("GET")
	api.HandleFunc("/playlists/{id}", playlistHandler.Rename).Methods("PUT")
	api.HandleFunc("/playlists/{id}", playlistHandler.Delete).Methods("DELETE")
	api.HandleFunc("/playlists/{id}/tracks/{trackId}", playlistHandler.AddTrack).Methods("POST")
	api.HandleFunc("/playlists/{id}/tracks/{trackId}", playlistHandler.RemoveTrack).Methods("DELETE")

	api.HandleFunc("/media", mediaHandler.Create).Methods("POST")
	api.HandleFunc("/media/{id}", mediaHandler.Delete).Methods("DELETE")

	sweeper := auth.NewSweeper(database, refreshSvc)
	if err := sweeper.Start(); err != nil {
		log.Fatal("[BOOT] could not start token sweeper: ", err)
	}

	origins := strings.Split(os.Getenv("CORS_ORIGINS"), ",")
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("[BOOT] listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, c.Handler(r)))
}
