package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/muurk/deckcalc/internal/estimate"
	"github.com/muurk/deckcalc/internal/form"
	"github.com/muurk/deckcalc/internal/logging"
	"github.com/muurk/deckcalc/internal/version"
)

// PageTitle is the form page title
const PageTitle = "Floating Deck Calculator"

type handlers struct {
	calc    *estimate.Calculator
	limits  estimate.Limits
	origins []string
}

// pageData feeds templates/index.html
type pageData struct {
	Title  string
	Limits estimate.Limits

	Length      string
	Width       string
	Use2x6      bool
	LengthError string
	WidthError  string
	Error       string

	ShowResults bool
	Result      resultView
}

// resultView is an estimate formatted the way the form controller renders it
type resultView struct {
	DeckBoards           int
	DeckBoardsLinearFeet string
	BaseWood             int
	FramingInfo          string
	Screws               string
	Fasteners            []string
}

func newResultView(est *estimate.Estimate) resultView {
	v := resultView{
		DeckBoards:           est.DeckBoards,
		DeckBoardsLinearFeet: form.FormatNumber(est.DeckBoardsLinearFeet),
		BaseWood:             est.BaseWood,
		FramingInfo:          form.FramingInfo(est),
		Screws:               humanize.Comma(int64(est.Screws)),
	}
	for _, f := range est.Fasteners {
		if !form.IsPrimaryScrew(f.Name) {
			v.Fasteners = append(v.Fasteners, form.FormatFastener(f))
		}
	}
	return v
}

// formInput is an HTML form post. Checkbox values arrive as "on".
type formInput struct {
	Length string `form:"length"`
	Width  string `form:"width"`
	Use2x6 string `form:"use2x6"`
}

func (h *handlers) page() pageData {
	return pageData{
		Title:  PageTitle,
		Limits: h.limits,
		Result: resultView{DeckBoardsLinearFeet: "0", Screws: "0"},
	}
}

func (h *handlers) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.page())
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": version.Version,
		"commit":  version.Commit,
	})
}

func (h *handlers) calculate(c *gin.Context) {
	switch c.ContentType() {
	case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
		h.calculateForm(c)
	default:
		h.calculateJSON(c)
	}
}

func (h *handlers) calculateJSON(c *gin.Context) {
	var req estimate.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	est, err := h.calc.Calculate(req)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, est)
}

func (h *handlers) calculateForm(c *gin.Context) {
	var in formInput
	if err := c.ShouldBind(&in); err != nil {
		c.String(http.StatusBadRequest, "invalid form: %v", err)
		return
	}

	data := h.page()
	data.Length, data.Width = in.Length, in.Width
	data.Use2x6 = checkboxValue(in.Use2x6)

	length, ok := h.parseDimension(in.Length)
	if !ok {
		data.LengthError = form.ValidationMessage("length", h.limits.Min)
	}
	width, ok := h.parseDimension(in.Width)
	if !ok {
		data.WidthError = form.ValidationMessage("width", h.limits.Min)
	}
	if data.LengthError != "" || data.WidthError != "" {
		c.HTML(http.StatusBadRequest, "index.html", data)
		return
	}

	req := estimate.Request{Length: length, Width: width, Use2x6: &data.Use2x6}
	est, err := h.calc.Calculate(req)
	if err != nil {
		data.Error = err.Error()
		c.HTML(errorStatus(err), "index.html", data)
		return
	}

	data.ShowResults = true
	data.Result = newResultView(est)
	c.HTML(http.StatusOK, "index.html", data)
}

func (h *handlers) parseDimension(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < h.limits.Min {
		return 0, false
	}
	return v, true
}

func checkboxValue(s string) bool {
	if s == "on" {
		return true
	}
	b, _ := strconv.ParseBool(s)
	return b
}

func errorStatus(err error) int {
	if estimate.IsValidationError(err) {
		return http.StatusBadRequest
	}
	logging.Error("Calculation failed", zap.Error(err))
	return http.StatusInternalServerError
}
