package api

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/saptarship2002/Mineral-Dashboard-ACPET/internal/engine"
	"github.com/saptarship2002/Mineral-Dashboard-ACPET/internal/models"
)

// Handler serves the dashboard API. It starts with no engine (data loads in
// the background) and answers 503 until SetEngine or SetLoadError is called.
type Handler struct {
	mu      sync.RWMutex
	engine  *engine.Engine
	loadErr error

	homeCountry      string
	homeCountryColor string
}

func NewHandler(homeCountry, homeCountryColor string) *Handler {
	return &Handler{
		homeCountry:      homeCountry,
		homeCountryColor: homeCountryColor,
	}
}

// SetEngine makes the API fully ready.
func (h *Handler) SetEngine(e *engine.Engine) {
	h.mu.Lock()
	h.engine = e
	h.loadErr = nil
	h.mu.Unlock()
}

// SetLoadError puts the API into a persistent error state. The process
// stays up and reports the failure instead of crashing.
func (h *Handler) SetLoadError(err error) {
	h.mu.Lock()
	h.loadErr = err
	h.mu.Unlock()
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/health", h.GetHealth)
	api.GET("/catalog", h.GetCatalog)
	api.GET("/map", h.GetMapView)
}

func (h *Handler) snapshot() (*engine.Engine, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.engine, h.loadErr
}

// ready resolves the current engine, or replies 503 (loading / load error)
// and returns nil.
func (h *Handler) ready(c echo.Context) (*engine.Engine, error) {
	eng, loadErr := h.snapshot()
	if loadErr != nil {
		return nil, c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "error",
			"error":  loadErr.Error(),
		})
	}
	if eng == nil {
		return nil, c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "loading",
		})
	}
	return eng, nil
}

// --- HANDLERS ---

func (h *Handler) GetHealth(c echo.Context) error {
	eng, loadErr := h.snapshot()
	switch {
	case loadErr != nil:
		return c.JSON(http.StatusOK, map[string]string{"status": "error", "error": loadErr.Error()})
	case eng == nil:
		return c.JSON(http.StatusOK, map[string]string{"status": "loading"})
	default:
		return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
	}
}

// GetCatalog feeds the three selectors and the year slider.
func (h *Handler) GetCatalog(c echo.Context) error {
	eng, err := h.ready(c)
	if eng == nil {
		return err
	}

	cat := eng.Catalog()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"minerals":           cat.Minerals,
		"indicators":         cat.Indicators,
		"years":              cat.Years,
		"mineral_all":        models.MineralAll,
		"data_types":         []models.DataType{models.DataTypeProduction, models.DataTypeImport, models.DataTypeCombined},
		"home_country":       h.homeCountry,
		"home_country_color": h.homeCountryColor,
	})
}

// GetMapView evaluates one view request. A non-empty indicator param takes
// precedence and mineral/dataType are not consulted at all.
func (h *Handler) GetMapView(c echo.Context) error {
	eng, err := h.ready(c)
	if eng == nil {
		return err
	}

	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "year must be an integer")
	}

	var req models.ViewRequest
	if indicator := c.QueryParam("indicator"); indicator != "" {
		req = models.IndicatorView(year, indicator)
	} else {
		mineral := c.QueryParam("mineral")
		if mineral == "" {
			mineral = models.MineralAll
		}
		dataType := models.DataType(c.QueryParam("dataType"))
		if dataType == "" {
			dataType = models.DataTypeCombined
		}
		switch dataType {
		case models.DataTypeProduction, models.DataTypeImport, models.DataTypeCombined:
		default:
			return echo.NewHTTPError(http.StatusBadRequest, "dataType must be Production, Import or Combined")
		}
		req = models.MineralView(year, mineral, dataType)
	}

	res, err := eng.View(req)
	if err != nil {
		if errors.Is(err, engine.ErrUnknownIndicator) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// The renderer highlights the home country only when it is on the layer
	highlight := false
	for _, e := range res.Entries {
		if e.Country == h.homeCountry {
			highlight = true
			break
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"result":             res,
		"home_country":       h.homeCountry,
		"home_country_color": h.homeCountryColor,
		"highlight_home":     highlight,
	})
}
