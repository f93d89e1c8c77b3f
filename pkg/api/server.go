// Package api provides the REST API server for beatsmith
package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/james-see/beatsmith/pkg/command"
	"github.com/james-see/beatsmith/pkg/generator"
	"github.com/james-see/beatsmith/pkg/midiout"
	"github.com/james-see/beatsmith/pkg/music"
)

// @title Beatsmith API
// @version 1.0
// @description API for natural language beat generation and command parsing
// @host localhost:8080
// @BasePath /api/v1

// StartServer starts the API server on the specified port
func StartServer(port int) error {
	r := gin.Default()

	// CORS middleware
	r.Use(corsMiddleware())

	// Health check
	r.GET("/health", healthCheck)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.POST("/command", handleParseCommand)
		v1.POST("/generate", handleGenerate)
		v1.GET("/genres", listGenres)
		v1.GET("/scales", listScales)
	}

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r.Run(fmt.Sprintf(":%d", port))
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "beatsmith",
	})
}

// listGenres godoc
// @Summary List genre templates
// @Description Returns genre names with their tempo ranges
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]map[string]any
// @Router /api/v1/genres [get]
func listGenres(c *gin.Context) {
	genres := make([]map[string]any, 0)
	for _, name := range music.Genres() {
		t, _ := music.Genre(name)
		genres = append(genres, map[string]any{
			"name":       name,
			"tempo_min":  t.TempoMin,
			"tempo_max":  t.TempoMax,
			"scale":      t.Scale,
			"drum_style": t.DrumStyle,
			"bass_style": t.BassStyle,
			"complexity": t.Complexity,
		})
	}
	c.JSON(http.StatusOK, gin.H{"genres": genres})
}

// listScales godoc
// @Summary List available scales
// @Description Returns all scale names with their intervals
// @Tags info
// @Produce json
// @Success 200 {object} map[string]map[string][]int
// @Router /api/v1/scales [get]
func listScales(c *gin.Context) {
	scales := make(map[string][]int)
	for _, name := range music.ScaleNames() {
		intervals, _ := music.Scale(name)
		scales[name] = intervals
	}
	c.JSON(http.StatusOK, gin.H{"scales": scales})
}

type commandRequest struct {
	Text string `json:"text" binding:"required"`
}

// handleParseCommand godoc
// @Summary Parse a natural language command
// @Description Parses free text into a structured command
// @Tags command
// @Accept json
// @Produce json
// @Param request body commandRequest true "Command text"
// @Success 200 {object} command.Command
// @Failure 400 {object} map[string]string
// @Router /api/v1/command [post]
func handleParseCommand(c *gin.Context) {
	var req commandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing command text"})
		return
	}

	c.JSON(http.StatusOK, command.Parse(req.Text))
}

type generateRequest struct {
	Genre      string `json:"genre"`
	BPM        int    `json:"bpm"`
	Key        string `json:"key"`
	Bars       int    `json:"bars"`
	Include808 bool   `json:"include_808"`
	Seed       int64  `json:"seed"`
}

// handleGenerate godoc
// @Summary Generate a beat
// @Description Generates a beat and returns it as a standard MIDI file
// @Tags generate
// @Accept json
// @Produce audio/midi
// @Param request body generateRequest true "Generation parameters"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/generate [post]
func handleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid generation request"})
		return
	}

	var gen *generator.Generator
	if req.Seed != 0 {
		gen = generator.NewSeeded(req.Seed)
	} else {
		gen = generator.New(nil)
	}

	beat := gen.Generate(generator.Request{
		Genre:       req.Genre,
		BPM:         req.BPM,
		Key:         req.Key,
		Bars:        req.Bars,
		IncludeBass: req.Include808,
	})

	data, err := midiout.NewRenderer().RenderSMF(beat.PatternName(), beat.Combined, beat.BPM)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.mid", beat.PatternName()))
	c.Data(http.StatusOK, "audio/midi", data)
}
