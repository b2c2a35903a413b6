package handlers

import (
	"errors"
	"net/http"

	"wirecalc/internal/electrical"
	"wirecalc/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK      = "ok"
	statusUpdated = "updated"
	statusReset   = "reset"

	errApplyInput      = "failed to apply input"
	errResetCalc       = "failed to reset calculator"
	errGetState        = "failed to load state"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// inputRejected reports whether the error is the user's fault rather than ours.
func inputRejected(err error) bool {
	return errors.Is(err, electrical.ErrUnknownField) || errors.Is(err, electrical.ErrBadNumber)
}

// Request DTO for a form edit. Value stays a string on purpose: the empty
// string means "clear the form" and must survive binding.
type inputRequest struct {
	Field string `json:"field" binding:"required"` // volts | amps | ohms | watts
	Value string `json:"value"`
}

// CalculatorInputRequest is an exported model for Swagger docs of the input payload.
type CalculatorInputRequest struct {
	// Field being edited. Allowed: volts, amps, ohms, watts
	Field string `json:"field" example:"volts"`
	// Raw value as typed; empty clears the whole form
	Value string `json:"value" example:"120"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Apply a calculator edit
// @Description  Stores the edited field, updates the authoritative pair and derives the other two quantities
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Param        body  body   CalculatorInputRequest  true  "Edit payload"
// @Success      200   {object}  map[string]interface{}  "status, state"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/calculator/input [post]
// @Security     BearerAuth
func (h *Handler) calculatorInput(c *gin.Context) {
	var req inputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	ctx := c.Request.Context()
	st, err := h.services.Calculator.Input(ctx, service.InputParams{
		Field: req.Field,
		Value: req.Value,
	})
	if err != nil {
		if inputRejected(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errApplyInput, "calculator_input_failed", err, "field", req.Field)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusUpdated, "state": st})
}

// @Summary      Reset the calculator
// @Tags         calculator
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/calculator/reset [post]
// @Security     BearerAuth
func (h *Handler) calculatorReset(c *gin.Context) {
	ctx := c.Request.Context()
	st, err := h.services.Calculator.Reset(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errResetCalc, "calculator_reset_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusReset, "state": st})
}

// @Summary      Get calculator state
// @Tags         calculator
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/calculator/state [get]
// @Security     BearerAuth
func (h *Handler) getState(c *gin.Context) {
	ctx := c.Request.Context()
	st, err := h.services.Monitoring.GetState(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "calculator_get_state_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}
