package api

import (
	"net/http"

	"github.com/gehtsoft-usa/go_shotcalc"
	"github.com/gehtsoft-usa/go_shotcalc/bmath/unit"
	"github.com/gehtsoft-usa/go_shotcalc/internal/input"
)

type shotSizeOption struct {
	Name     string  `json:"name"`
	Diameter float64 `json:"diameter"`
}

type materialOption struct {
	Name    string  `json:"name"`
	Density float64 `json:"density"`
}

type altitudeOption struct {
	Name                string  `json:"name"`
	Feet                float64 `json:"feet"`
	StandardTemperature float64 `json:"standard_temperature"`
}

type optionsResponse struct {
	ShotSizes []shotSizeOption       `json:"shot_sizes"`
	Materials []materialOption       `json:"materials"`
	Altitudes []altitudeOption       `json:"altitudes"`
	Limits    map[string]input.Range `json:"limits"`
	Defaults  map[string]string      `json:"defaults"`
}

// options handles GET /api/v1/options
func options(w http.ResponseWriter, r *http.Request) {
	var resp optionsResponse
	for _, s := range go_shotcalc.ShotSizes() {
		resp.ShotSizes = append(resp.ShotSizes, shotSizeOption{Name: s.String(), Diameter: s.Diameter().In(unit.DistanceInch)})
	}
	for _, m := range go_shotcalc.ShotMaterials() {
		resp.Materials = append(resp.Materials, materialOption{Name: m.String(), Density: m.Density()})
	}
	for _, alt := range go_shotcalc.AltitudeChoices() {
		resp.Altitudes = append(resp.Altitudes, altitudeOption{
			Name:                go_shotcalc.AltitudeChoiceName(alt),
			Feet:                alt.In(unit.DistanceFoot),
			StandardTemperature: go_shotcalc.StandardTemperatureAt(alt).In(unit.TemperatureFahrenheit),
		})
	}
	resp.Limits = input.Limits()
	resp.Defaults = settingsValues(input.New())

	writeJSON(w, http.StatusOK, resp)
}
