package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/brightwood-pta/directorybackend/config"
	"github.com/brightwood-pta/directorybackend/geocode"
	"github.com/brightwood-pta/directorybackend/models"
	"github.com/brightwood-pta/directorybackend/repository"
)

// MapHandler serves the carpool map's supporting data: the pre-computed
// geocoded address file, on-demand geocoding against the cache, and custom
// map locations.
type MapHandler struct {
	Cfg          config.Config
	Geocoder     *geocode.Client
	LocationRepo repository.LocationRepositoryInterface
}

// GeocodedData serves the offline-batch geocoded address lookup file as-is.
func (mh *MapHandler) GeocodedData(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(mh.Cfg.GeocodedDataPath)
	if err != nil {
		if os.IsNotExist(err) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Geocoded data file not found"})
			return
		}
		log.Printf("Error reading geocoded data file %s: %v", mh.Cfg.GeocodedDataPath, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to read geocoded data"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing geocoded data response: %v", err)
	}
}

// Geocode resolves ?address= to a position, cache-first.
func (mh *MapHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	if strings.TrimSpace(address) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing required query parameter: address"})
		return
	}

	writeJSON(w, http.StatusOK, mh.Geocoder.Resolve(r.Context(), address))
}

func (mh *MapHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := mh.LocationRepo.ListAll()
	if err != nil {
		log.Printf("Error listing custom locations: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve locations"})
		return
	}
	if locations == nil {
		locations = []models.CustomLocation{}
	}
	writeJSON(w, http.StatusOK, locations)
}

func (mh *MapHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string  `json:"name"`
		Address string  `json:"address"`
		Lat     float64 `json:"lat"`
		Lng     float64 `json:"lng"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Address) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing required fields: name, address"})
		return
	}

	// fill in a position when the caller didn't supply one
	if req.Lat == 0 && req.Lng == 0 {
		pos := mh.Geocoder.Resolve(r.Context(), req.Address)
		req.Lat, req.Lng = pos.Latitude, pos.Longitude
	}

	location := &models.CustomLocation{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Lat,
		Longitude: req.Lng,
	}
	if err := mh.LocationRepo.Create(location); err != nil {
		log.Printf("Error creating custom location '%s': %v", req.Name, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to create location"})
		return
	}

	writeJSON(w, http.StatusCreated, location)
}

func (mh *MapHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	locationID := chi.URLParam(r, "location_id")

	err := mh.LocationRepo.Delete(locationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Location not found"})
		} else {
			log.Printf("Error deleting custom location %s: %v", locationID, err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to delete location"})
		}
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}
