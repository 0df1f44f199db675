package handlers

import (
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"time"

	"agri-advice/internal/domain/apperr"
	"agri-advice/internal/domain/dto"
	"agri-advice/internal/infra/logger"
	"agri-advice/internal/infra/provider"
	"agri-advice/internal/util"
)

var arrivalDatePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// mockParams is the fallback filter catalogue served when the price dataset
// is unreachable or no API key is configured.
var mockParams = dto.ValidParams{
	Commodities: []string{"Wheat", "Rice", "Maize", "Cauliflower"},
	States:      []string{"Karnataka", "Tamil Nadu", "Maharashtra", "Andhra Pradesh"},
	Markets:     []string{"Bangalore", "Chennai", "Mumbai", "Hyderabad"},
	Varieties:   []string{"Local", "Hybrid", "Desi"},
}

type ExternalHandlers struct {
	Logger    *logger.Logger
	Weather   provider.IWeatherProvider
	Prices    provider.IPricesProvider
	PlantID   provider.IPlantIDProvider
	UploadDir string
}

func NewExternalHandlers(log *logger.Logger, weather provider.IWeatherProvider, prices provider.IPricesProvider, plantID provider.IPlantIDProvider, uploadDir string) *ExternalHandlers {
	return &ExternalHandlers{Logger: log, Weather: weather, Prices: prices, PlantID: plantID, UploadDir: uploadDir}
}

// GetWeather serves current weather for a city or coordinate pair, in metric
// units for direct display.
func (h *ExternalHandlers) GetWeather(w http.ResponseWriter, r *http.Request) {
	query := dto.WeatherQuery{
		City:  r.URL.Query().Get("city"),
		Lat:   r.URL.Query().Get("lat"),
		Lon:   r.URL.Query().Get("lon"),
		Units: "metric",
	}
	if query.City == "" && (query.Lat == "" || query.Lon == "") {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "City or latitude/longitude parameters are required"})
		return
	}

	data, err := h.Weather.Current(r.Context(), query)
	if err != nil {
		if apperr.StatusOf(err) == http.StatusNotFound {
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "Location not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch weather data"})
		return
	}
	writeJSON(w, http.StatusOK, data)
}

// GetPrices serves mandi prices filtered by commodity, state and market,
// falling back to mock data when the dataset is unavailable.
func (h *ExternalHandlers) GetPrices(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := dto.PriceQuery{
		Commodity:   util.Capitalize(params.Get("commodity")),
		State:       util.Capitalize(params.Get("state")),
		Market:      util.Capitalize(params.Get("market")),
		Variety:     util.Capitalize(params.Get("variety")),
		ArrivalDate: params.Get("arrival_date"),
		Offset:      parseQueryInt(r, "offset", 0),
		Limit:       parseQueryInt(r, "limit", 10),
	}

	if query.Commodity == "" || query.State == "" || query.Market == "" {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Commodity, state, and market are required"})
		return
	}
	if query.ArrivalDate != "" && !arrivalDatePattern.MatchString(query.ArrivalDate) {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Arrival date must be in DD/MM/YYYY format"})
		return
	}

	if !h.Prices.Enabled() {
		h.Logger.Warn("Prices dataset key not configured, returning mock data")
		writeJSON(w, http.StatusOK, mockPricePage(query))
		return
	}

	page, err := h.Prices.Records(r.Context(), query)
	if err != nil || len(page.Records) == 0 {
		if err != nil {
			h.Logger.Warn(fmt.Sprintf("Prices lookup failed, returning mock data: %v", err))
		}
		writeJSON(w, http.StatusOK, mockPricePage(query))
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// GetValidParams lists the distinct commodities, states, markets and
// varieties known to the price dataset.
func (h *ExternalHandlers) GetValidParams(w http.ResponseWriter, r *http.Request) {
	if !h.Prices.Enabled() {
		writeJSON(w, http.StatusOK, mockParams)
		return
	}

	records, err := h.Prices.AllRecords(r.Context(), nil)
	if err != nil || len(records) == 0 {
		if err != nil {
			h.Logger.Warn(fmt.Sprintf("Valid params lookup failed, returning mock data: %v", err))
		}
		writeJSON(w, http.StatusOK, mockParams)
		return
	}

	writeJSON(w, http.StatusOK, dto.ValidParams{
		Commodities: distinct(records, func(rec dto.PriceRecord) string { return rec.Commodity }),
		States:      distinct(records, func(rec dto.PriceRecord) string { return rec.State }),
		Markets:     distinct(records, func(rec dto.PriceRecord) string { return rec.Market }),
		Varieties:   distinct(records, func(rec dto.PriceRecord) string { return rec.Variety }),
	})
}

// GetValidMarkets lists the markets trading a commodity in a state.
func (h *ExternalHandlers) GetValidMarkets(w http.ResponseWriter, r *http.Request) {
	state := util.Capitalize(r.URL.Query().Get("state"))
	commodity := util.Capitalize(r.URL.Query().Get("commodity"))
	if state == "" || commodity == "" {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "State and commodity are required"})
		return
	}

	if !h.Prices.Enabled() {
		writeJSON(w, http.StatusOK, map[string][]string{"markets": mockParams.Markets})
		return
	}

	records, err := h.Prices.AllRecords(r.Context(), map[string]string{"state": state, "commodity": commodity})
	if err != nil || len(records) == 0 {
		if err != nil {
			h.Logger.Warn(fmt.Sprintf("Valid markets lookup failed, returning mock data: %v", err))
		}
		writeJSON(w, http.StatusOK, map[string][]string{"markets": mockParams.Markets})
		return
	}

	markets := distinct(records, func(rec dto.PriceRecord) string { return rec.Market })
	writeJSON(w, http.StatusOK, map[string][]string{"markets": markets})
}

// IdentifyPlant proxies an uploaded photo to the plant identification
// provider. The temporary upload is removed on every exit path.
func (h *ExternalHandlers) IdentifyPlant(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Photo file is required"})
		return
	}
	defer file.Close()

	photoPath, err := util.SaveUpload(h.UploadDir, file, header.Filename)
	if err != nil {
		h.Logger.Error(fmt.Sprintf("Failed to store photo upload: %v", err))
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to store photo upload"})
		return
	}
	defer func() {
		if err := util.RemoveUpload(photoPath); err != nil {
			h.Logger.Warn(fmt.Sprintf("Failed to remove upload %s: %v", photoPath, err))
		}
	}()

	result, err := h.PlantID.Identify(r.Context(), photoPath)
	if err != nil {
		h.Logger.Error(fmt.Sprintf("Plant identification failed: %v", err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func mockPricePage(query dto.PriceQuery) dto.PricePage {
	variety := query.Variety
	if variety == "" {
		variety = "Local"
	}
	arrivalDate := query.ArrivalDate
	if arrivalDate == "" {
		arrivalDate = time.Now().Format("02/01/2006")
	}

	return dto.PricePage{
		Records: []dto.PriceRecord{{
			Commodity:   query.Commodity,
			State:       query.State,
			Market:      query.Market,
			Variety:     variety,
			ArrivalDate: arrivalDate,
			MinPrice:    "1000",
			MaxPrice:    "1500",
			ModalPrice:  "1250",
		}},
		Total:  1,
		Offset: query.Offset,
		Limit:  query.Limit,
	}
}

func distinct(records []dto.PriceRecord, extract func(dto.PriceRecord) string) []string {
	seen := map[string]bool{}
	values := []string{}
	for _, record := range records {
		value := util.Capitalize(extract(record))
		if value != "" && !seen[value] {
			seen[value] = true
			values = append(values, value)
		}
	}
	sort.Strings(values)
	return values
}
