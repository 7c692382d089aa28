package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/semafind/distcalc/distance"
	"github.com/semafind/distcalc/httpapi/utils"
	"github.com/semafind/distcalc/pointio"
	"github.com/semafind/distcalc/selftest"
)

type DistCalcHandlers struct {
	distFn distance.DistFunc
}

func NewDistCalcHandlers(distFn distance.DistFunc) *DistCalcHandlers {
	return &DistCalcHandlers{distFn: distFn}
}

// ---------------------------

type DistanceRequest struct {
	A *distance.Point `json:"a"`
	B *distance.Point `json:"b"`
}

func (req DistanceRequest) Validate() error {
	if req.A == nil || req.B == nil {
		return errors.New("both points a and b are required")
	}
	return nil
}

type DistanceResponse struct {
	Distance  float64 `json:"distance"`
	Formatted string  `json:"formatted"`
}

func (h *DistCalcHandlers) Distance(c *gin.Context) {
	req, err := utils.DecodeValid[DistanceRequest](c.Request)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// ---------------------------
	dist := h.distFn(req.A.X, req.A.Y, req.B.X, req.B.Y)
	log.Debug().Interface("a", req.A).Interface("b", req.B).Float64("distance", dist).Msg("Distance")
	c.JSON(http.StatusOK, DistanceResponse{
		Distance:  dist,
		Formatted: pointio.FormatValue(dist),
	})
}

// ---------------------------

type SelfTestResponse struct {
	Passed  bool              `json:"passed"`
	Results []selftest.Result `json:"results"`
}

func (h *DistCalcHandlers) SelfTest(c *gin.Context) {
	report := selftest.Run(h.distFn, selftest.DefaultCases())
	report.Log()
	status := http.StatusOK
	if !report.Passed() {
		status = http.StatusInternalServerError
	}
	c.JSON(status, SelfTestResponse{Passed: report.Passed(), Results: report.Results})
}
