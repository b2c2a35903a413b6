package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"wirecalc/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errVoltsInvalid  = "invalid 'volts': expected a number"
	errLengthInvalid = "invalid 'length': expected a number"
	errAmpsInvalid   = "invalid 'amps': expected comma-separated numbers"
)

// @Summary      List wire gauges
// @Description  Resistance reference rows (Ω per 1000 ft for sae, Ω per km for iec)
// @Tags         wire
// @Produce      json
// @Param        system  query  string  true  "Unit system"  Enums(sae,iec)
// @Success      200  {object}  map[string]interface{}  "system, gauges"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/wire/gauges [get]
// @Security     BearerAuth
func (h *Handler) getGauges(c *gin.Context) {
	system := c.Query("system")
	rows, err := h.services.LossTables.Gauges(system)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"system": system, "gauges": rows})
}

// @Summary      Wire power-loss table
// @Description  Tabulates resistive loss per gauge across a current range. Omitting volts reuses the calculator's current voltage.
// @Tags         wire
// @Produce      json
// @Param        system     query  string  true   "Unit system"  Enums(sae,iec)
// @Param        conductor  query  string  true   "Construction"  Enums(solid,stranded)
// @Param        length     query  number  true   "One-way run length (ft for sae, m for iec)"  example(200)
// @Param        volts      query  number  false  "Applied voltage; falls back to the solver state"  example(120)
// @Param        amps       query  string  false  "Comma-separated currents, default 1,5,10,20,40,100"  example(1,5,10)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/wire/loss [get]
// @Security     BearerAuth
func (h *Handler) getLossTable(c *gin.Context) {
	p := service.LossParams{
		System:    c.Query("system"),
		Conductor: c.Query("conductor"),
	}

	var err error
	if qs := c.Query("volts"); qs != "" {
		if p.Volts, err = strconv.ParseFloat(qs, 64); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errVoltsInvalid})
			return
		}
	}
	if qs := c.Query("length"); qs != "" {
		if p.OneWayLength, err = strconv.ParseFloat(qs, 64); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errLengthInvalid})
			return
		}
	}
	if p.Currents, err = parseCurrents(c.Query("amps")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errAmpsInvalid})
		return
	}

	ctx := c.Request.Context()
	tbl, err := h.services.LossTables.Table(ctx, p)
	if err != nil {
		// Selection and state problems are client-correctable; log the
		// rest but keep the response shape uniform.
		if h.log != nil {
			h.log.Infow("wire_loss_table_rejected", "err", err, "system", p.System, "conductor", p.Conductor)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tbl)
}

// parseCurrents splits "1,5,10" into floats; empty input means defaults.
func parseCurrents(qs string) ([]float64, error) {
	if qs == "" {
		return nil, nil
	}
	parts := strings.Split(qs, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
