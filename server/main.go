package main

import (
	"errors"
	"flag"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mwindels/magnet-solver/shared/field"
	"github.com/mwindels/magnet-solver/shared/geom"
	"github.com/mwindels/magnet-solver/shared/grid"
	"github.com/mwindels/magnet-solver/shared/scene"
)

// service holds the loaded scene and the handlers that evaluate it.
// A scene is read-only once loaded, so handlers share it freely.
type service struct {
	scene   *scene.Scene
	workers int
}

// sampleResponse is the JSON form of one field sample.
type sampleResponse struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Bx       float64 `json:"bx"`
	By       float64 `json:"by"`
	Singular bool    `json:"singular"`
}

// gridRequest is the JSON body of a bulk evaluation request.
// Min and Max carry no binding rules because the zero value is a legitimate
// bound; grid.New validates the extents instead.
type gridRequest struct {
	Min [2]float64 `json:"min"`
	Max [2]float64 `json:"max"`
	Nx  int        `json:"nx" binding:"required"`
	Ny  int        `json:"ny" binding:"required"`
}

// handleField evaluates the scene at a single query point.
func (s *service) handleField(c *gin.Context) {
	x, err := strconv.ParseFloat(c.Query("x"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter x must be a number"})
		return
	}
	y, err := strconv.ParseFloat(c.Query("y"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter y must be a number"})
		return
	}

	p := geom.Vector2{X: x, Y: y}
	sample, err := s.scene.Field(p)
	if err != nil {
		var domainErr *field.DomainError
		if errors.As(err, &domainErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, sampleResponse{X: p.X, Y: p.Y, Bx: sample.B.X, By: sample.B.Y, Singular: sample.Singular})
}

// handleGrid evaluates the scene over a whole grid of points.
func (s *service) handleGrid(c *gin.Context) {
	var req gridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := grid.New(geom.Vector2{X: req.Min[0], Y: req.Min[1]}, geom.Vector2{X: req.Max[0], Y: req.Max[1]}, req.Nx, req.Ny)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := g.MapParallel(c.Request.Context(), s.scene, s.workers)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	samples := make([]sampleResponse, len(res.Samples))
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			p, sample := g.Point(i, j), res.At(i, j)
			samples[j*g.Nx+i] = sampleResponse{X: p.X, Y: p.Y, Bx: sample.B.X, By: sample.B.Y, Singular: sample.Singular}
		}
	}

	c.JSON(http.StatusOK, gin.H{"nx": g.Nx, "ny": g.Ny, "samples": samples})
}

// requestLogger logs one structured line per served request.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request served",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

func main() {
	scenePath := flag.String("scene", "", "path to a YAML scene file")
	addr := flag.String("addr", ":8080", "address to listen on")
	workers := flag.Int("workers", 0, "worker goroutines per grid request (0 means one per CPU)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	if *scenePath == "" {
		log.Fatal("A scene file is required (-scene).")
	}
	loaded, err := scene.FromFile(*scenePath)
	if err != nil {
		log.Fatalf("Could not read in scene %q: %v.", *scenePath, err)
	}

	svc := &service{scene: loaded, workers: *workers}

	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery())
	router.GET("/field", svc.handleField)
	router.POST("/grid", svc.handleGrid)

	log.Infow("server listening", "addr", *addr, "scene", *scenePath, "magnets", loaded.Size())
	if err := router.Run(*addr); err != nil {
		log.Fatalf("Server stopped: %v.", err)
	}
}
