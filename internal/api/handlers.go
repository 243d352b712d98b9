package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"golang.org/x/net/html"

	"github.com/jonesrussell/goselector/internal/api/middleware"
	"github.com/jonesrussell/goselector/internal/dom"
	"github.com/jonesrussell/goselector/internal/selector"
)

// handleSelector generates a selector for the element(s) located by a
// standard CSS query inside the submitted document.
func (s *Server) handleSelector(c *gin.Context) {
	requestID := c.GetString(middleware.RequestIDKey)

	var req SelectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.metrics.RecordFailure()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), RequestID: requestID})
		return
	}
	if int64(len(req.HTML)) > s.config.Server.MaxDocumentBytes {
		s.metrics.RecordFailure()
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
			Error:     "document too large",
			RequestID: requestID,
		})
		return
	}

	// User-supplied queries are standard CSS and resolved with goquery; the
	// extended grammar the generators emit never passes through here.
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(req.HTML))
	if err != nil {
		s.metrics.RecordFailure()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to parse document", RequestID: requestID})
		return
	}
	found := gq.Find(req.Query)
	if found.Length() == 0 {
		s.metrics.RecordFailure()
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "query matched no elements", RequestID: requestID})
		return
	}

	var targets []*html.Node
	if req.All {
		targets = found.Nodes
	} else {
		targets = found.Nodes[:1]
	}

	gen, err := selector.New(dom.FromGoquery(gq), s.config.Selector.Options(), s.logger)
	if err != nil {
		s.metrics.RecordFailure()
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), RequestID: requestID})
		return
	}

	start := time.Now()
	explanation, err := gen.Explain(targets...)
	if err != nil {
		s.metrics.RecordFailure()
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), RequestID: requestID})
		return
	}
	s.metrics.RecordGeneration(time.Since(start), explanation.Degenerate)

	c.JSON(http.StatusOK, SelectorResponse{
		Selector:   explanation.Selector,
		Targets:    len(targets),
		Degenerate: explanation.Degenerate,
		RequestID:  requestID,
	})
}
