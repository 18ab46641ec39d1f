// Package server exposes previously generated reports over HTTP.
package server

import (
	"encoding/csv"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/framesight/metanet/internal/report"
)

// Server serves the CSV reports found in Dir. It never writes anything;
// report generation stays with the run command.
type Server struct {
	Dir string
}

func NewServer(dir string) *Server {
	return &Server{Dir: dir}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/reports", s.ListReports)
	r.GET("/reports/:name", s.GetReport)
	r.GET("/api/overlap", s.OverlapJSON)

	return r
}

var knownReports = []string{report.MappingsFile, report.TypingFile, report.OverlapFile}

func (s *Server) ListReports(c *gin.Context) {
	var out []gin.H
	for _, name := range knownReports {
		info, err := os.Stat(filepath.Join(s.Dir, name))
		if err != nil {
			continue
		}
		out = append(out, gin.H{"name": name, "size": info.Size()})
	}
	c.JSON(http.StatusOK, gin.H{"reports": out})
}

func (s *Server) GetReport(c *gin.Context) {
	name := c.Param("name")
	known := false
	for _, n := range knownReports {
		if n == name {
			known = true
			break
		}
	}
	if !known {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown report"})
		return
	}

	path := filepath.Join(s.Dir, name)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not generated yet"})
		return
	}
	c.FileAttachment(path, name)
}

// OverlapJSON renders the overlap report as JSON for quick inspection
// without downloading the CSV.
func (s *Server) OverlapJSON(c *gin.Context) {
	f, err := os.Open(filepath.Join(s.Dir, report.OverlapFile))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not generated yet"})
		return
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil || len(records) == 0 {
		log.Printf("Failed to read overlap report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read report"})
		return
	}

	header := records[0]
	var rows []gin.H
	for _, rec := range records[1:] {
		row := gin.H{}
		for i, col := range header {
			if i >= len(rec) {
				continue
			}
			if n, err := strconv.Atoi(rec[i]); err == nil && (col == "n_common_frame_elements" || col == "n_common_synset_labels") {
				row[col] = n
			} else {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}
